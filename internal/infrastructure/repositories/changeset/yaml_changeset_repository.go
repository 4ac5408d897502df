package changeset

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// YAMLRepository decodes change sets written in YAML.
type YAMLRepository struct{}

var _ repositories.ChangeSetRepository = (*YAMLRepository)(nil)

// NewYAMLRepository creates a YAMLRepository.
func NewYAMLRepository() *YAMLRepository {
	return &YAMLRepository{}
}

func (r *YAMLRepository) Name() string { return "yaml" }

func (r *YAMLRepository) Extensions() []string { return []string{".yaml", ".yml"} }

// Parse decodes data, rejecting keys the change set does not define.
func (r *YAMLRepository) Parse(data []byte, filename string) (*entities.ChangeSet, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var changes entities.ChangeSet
	if err := decoder.Decode(&changes); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	return &changes, nil
}
