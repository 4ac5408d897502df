package repositories

import "context"

// ScriptStore reads and writes build files by location (path or URL).
type ScriptStore interface {
	Read(ctx context.Context, location string) ([]byte, error)
	Write(ctx context.Context, location string, content []byte) error
	Exists(ctx context.Context, location string) (bool, error)
}

// ProjectFinder discovers the build scripts below a root directory.
type ProjectFinder interface {
	FindScripts(root, scriptName string) ([]string, error)
}
