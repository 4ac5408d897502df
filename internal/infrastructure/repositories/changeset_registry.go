package repositories

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// ChangeSetRegistry selects a change-set parser by file extension.
type ChangeSetRegistry struct {
	parsers     map[string]domainRepos.ChangeSetRepository
	byExtension map[string]domainRepos.ChangeSetRepository
}

// NewChangeSetRegistry creates an empty change-set registry.
func NewChangeSetRegistry() *ChangeSetRegistry {
	return &ChangeSetRegistry{
		parsers:     make(map[string]domainRepos.ChangeSetRepository),
		byExtension: make(map[string]domainRepos.ChangeSetRepository),
	}
}

// Register adds a parser under its name and every extension it handles.
func (r *ChangeSetRegistry) Register(p domainRepos.ChangeSetRepository) {
	r.parsers[p.Name()] = p
	for _, ext := range p.Extensions() {
		r.byExtension[strings.ToLower(ext)] = p
	}
}

// Get returns the parser with the given name, or nil if not registered.
func (r *ChangeSetRegistry) Get(name string) domainRepos.ChangeSetRepository {
	return r.parsers[name]
}

// ForFile returns the parser handling filename's extension.
func (r *ChangeSetRegistry) ForFile(filename string) (domainRepos.ChangeSetRepository, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if p, ok := r.byExtension[ext]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unsupported change set format %q (supported: %s)", ext, strings.Join(r.Names(), ", "))
}

// Names returns the sorted list of registered parser names.
func (r *ChangeSetRegistry) Names() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
