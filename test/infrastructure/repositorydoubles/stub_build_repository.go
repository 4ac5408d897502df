//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// StubBuildRepository implements repositories.BuildRepository with a fixed result.
type StubBuildRepository struct {
	Success bool
	Calls   []BuildCall
}

// BuildCall records a single invocation of RunBuild.
type BuildCall struct {
	Executable string
	Directory  string
	Task       string
	Args       []string
}

var _ repositories.BuildRepository = (*StubBuildRepository)(nil)

func (b *StubBuildRepository) RunBuild(
	_ context.Context,
	executable, directory, task string,
	args ...string,
) bool {
	b.Calls = append(b.Calls, BuildCall{Executable: executable, Directory: directory, Task: task, Args: args})
	return b.Success
}
