package files

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"

	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

const scriptFileMode = 0o644

// ScriptStore reads and writes build files through an abstract file service, so
// locations may be local paths or any URL scheme the service supports.
type ScriptStore struct {
	fs afs.Service
}

var _ repositories.ScriptStore = (*ScriptStore)(nil)

// NewScriptStore creates a ScriptStore backed by afs.New().
func NewScriptStore() *ScriptStore {
	return &ScriptStore{fs: afs.New()}
}

func (s *ScriptStore) Read(ctx context.Context, location string) ([]byte, error) {
	content, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return content, nil
}

func (s *ScriptStore) Write(ctx context.Context, location string, content []byte) error {
	if err := s.fs.Upload(ctx, location, scriptFileMode, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", location, err)
	}
	return nil
}

func (s *ScriptStore) Exists(ctx context.Context, location string) (bool, error) {
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", location, err)
	}
	return exists, nil
}
