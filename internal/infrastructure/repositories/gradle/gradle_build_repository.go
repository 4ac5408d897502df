package gradle

import (
	"context"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// BuildRepository runs Gradle as an external process.
type BuildRepository struct{}

var _ repositories.BuildRepository = (*BuildRepository)(nil)

// NewBuildRepository creates a BuildRepository.
func NewBuildRepository() *BuildRepository {
	return &BuildRepository{}
}

// RunBuild runs "executable --quiet task args..." in directory.
func (r *BuildRepository) RunBuild(
	ctx context.Context,
	executable, directory, task string,
	args ...string,
) bool {
	cmdArgs := append([]string{"--quiet", task}, args...)
	cmd := exec.CommandContext(ctx, executable, cmdArgs...)
	cmd.Dir = directory

	output, err := cmd.CombinedOutput()
	logger.Debugf("[gradle] %s %v output:\n%s", executable, cmdArgs, string(output))
	if err != nil {
		logger.Debugf("[gradle] task %q failed in %s: %v", task, directory, err)
		return false
	}
	return true
}
