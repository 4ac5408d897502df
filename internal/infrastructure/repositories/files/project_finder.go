package files

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// ProjectFinder globs for build scripts below a root directory.
type ProjectFinder struct{}

var _ repositories.ProjectFinder = (*ProjectFinder)(nil)

// NewProjectFinder creates a ProjectFinder.
func NewProjectFinder() *ProjectFinder {
	return &ProjectFinder{}
}

// FindScripts returns every file named scriptName under root, sorted.
func (f *ProjectFinder) FindScripts(root, scriptName string) ([]string, error) {
	pattern := filepath.Join(root, "**", scriptName)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
