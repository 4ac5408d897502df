package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// WorkspaceRepository reads the worktree status of the Git repository holding a file.
type WorkspaceRepository struct{}

var _ repositories.WorkspaceRepository = (*WorkspaceRepository)(nil)

// NewWorkspaceRepository creates a WorkspaceRepository.
func NewWorkspaceRepository() *WorkspaceRepository {
	return &WorkspaceRepository{}
}

// HasUncommittedChanges reports whether path is modified, staged or untracked.
func (r *WorkspaceRepository) HasUncommittedChanges(path string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(filepath.Dir(absPath), &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		logger.Debugf("[git] %s is not inside a repository", absPath)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	root, err := filepath.EvalSymlinks(worktree.Filesystem.Root())
	if err != nil {
		return false, fmt.Errorf("failed to resolve worktree root: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", absPath, err)
	}
	rel, err := filepath.Rel(root, resolved)
	if err != nil {
		return false, fmt.Errorf("failed to locate %s in worktree: %w", absPath, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}

	fileStatus, found := status[filepath.ToSlash(rel)]
	if !found {
		return false, nil
	}
	return fileStatus.Worktree != gogit.Unmodified || fileStatus.Staging != gogit.Unmodified, nil
}
