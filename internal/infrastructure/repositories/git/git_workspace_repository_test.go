//go:build unit

package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlesync/internal/infrastructure/repositories/git"
)

// committedRepository initializes a repository holding a committed build.gradle.
func committedRepository(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build.gradle"), []byte("apply plugin: 'java'\n"), 0o600))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("build.gradle")
	require.NoError(t, err)
	_, err = worktree.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestWorkspaceRepositoryHasUncommittedChanges(t *testing.T) {
	t.Parallel()

	t.Run("should report a committed file as clean", func(t *testing.T) {
		t.Parallel()

		// given
		dir := committedRepository(t)
		repo := git.NewWorkspaceRepository()

		// when
		modified, err := repo.HasUncommittedChanges(filepath.Join(dir, "build.gradle"))

		// then
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("should report a modified file", func(t *testing.T) {
		t.Parallel()

		// given
		dir := committedRepository(t)
		path := filepath.Join(dir, "build.gradle")
		require.NoError(t, os.WriteFile(path, []byte("apply plugin: 'war'\n"), 0o600))
		repo := git.NewWorkspaceRepository()

		// when
		modified, err := repo.HasUncommittedChanges(path)

		// then
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("should report an untracked file in a subdirectory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := committedRepository(t)
		path := filepath.Join(dir, "lib", "build.gradle")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		repo := git.NewWorkspaceRepository()

		// when
		modified, err := repo.HasUncommittedChanges(path)

		// then
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("should treat files outside a repository as clean", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "build.gradle")
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		repo := git.NewWorkspaceRepository()

		// when
		modified, err := repo.HasUncommittedChanges(path)

		// then
		require.NoError(t, err)
		assert.False(t, modified)
	})
}
