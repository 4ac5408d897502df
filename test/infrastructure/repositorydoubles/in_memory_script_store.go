//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// InMemoryScriptStore implements repositories.ScriptStore over a map keyed by location.
type InMemoryScriptStore struct {
	Files  map[string]string
	Writes []string // locations written, in order
}

var _ repositories.ScriptStore = (*InMemoryScriptStore)(nil)

// NewInMemoryScriptStore creates a store holding files.
func NewInMemoryScriptStore(files map[string]string) *InMemoryScriptStore {
	if files == nil {
		files = make(map[string]string)
	}
	return &InMemoryScriptStore{Files: files}
}

func (s *InMemoryScriptStore) Read(_ context.Context, location string) ([]byte, error) {
	content, ok := s.Files[location]
	if !ok {
		return nil, fmt.Errorf("%s: %w", location, os.ErrNotExist)
	}
	return []byte(content), nil
}

func (s *InMemoryScriptStore) Write(_ context.Context, location string, content []byte) error {
	s.Files[location] = string(content)
	s.Writes = append(s.Writes, location)
	return nil
}

func (s *InMemoryScriptStore) Exists(_ context.Context, location string) (bool, error) {
	_, ok := s.Files[location]
	return ok, nil
}

// StubProjectFinder implements repositories.ProjectFinder by filtering a fixed list.
type StubProjectFinder struct {
	Scripts []string
}

var _ repositories.ProjectFinder = (*StubProjectFinder)(nil)

func (f *StubProjectFinder) FindScripts(root, scriptName string) ([]string, error) {
	var matches []string
	for _, script := range f.Scripts {
		if strings.HasPrefix(script, root) && filepath.Base(script) == scriptName {
			matches = append(matches, script)
		}
	}
	return matches, nil
}

// StubWorkspaceRepository implements repositories.WorkspaceRepository with fixed answers.
type StubWorkspaceRepository struct {
	Modified bool
	Err      error
	Checked  []string
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (w *StubWorkspaceRepository) HasUncommittedChanges(path string) (bool, error) {
	w.Checked = append(w.Checked, path)
	return w.Modified, w.Err
}
