package repositories

import "github.com/rios0rios0/gradlesync/internal/domain/entities"

// ChangeSetRepository decodes one change-set file format.
type ChangeSetRepository interface {
	// Name returns the format identifier (e.g. "yaml", "hcl").
	Name() string

	// Extensions returns the file extensions handled, with the leading dot.
	Extensions() []string

	Parse(data []byte, filename string) (*entities.ChangeSet, error)
}
