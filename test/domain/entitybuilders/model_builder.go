//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"maps"
	"slices"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
)

// ModelBuilder helps create direct-side build models with a fluent interface.
type ModelBuilder struct {
	*testkit.BaseBuilder
	group        string
	name         string
	version      string
	packaging    string
	archiveName  string
	dependencies []entities.Dependency
	managed      []entities.Dependency
	plugins      []entities.Plugin
	repositories []entities.Repository
	properties   map[string]string
	tasks        []*entities.Task
}

// NewModelBuilder creates a new model builder with sensible defaults.
func NewModelBuilder() *ModelBuilder {
	return &ModelBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		group:       "org.example",
		name:        "app",
		version:     "1.0.0",
		packaging:   entities.DefaultPackaging,
		archiveName: "app-1.0.0",
		properties:  map[string]string{},
	}
}

// WithGroup sets the group.
func (b *ModelBuilder) WithGroup(group string) *ModelBuilder {
	b.group = group
	return b
}

// WithVersion sets the version.
func (b *ModelBuilder) WithVersion(version string) *ModelBuilder {
	b.version = version
	return b
}

// WithPackaging sets the packaging.
func (b *ModelBuilder) WithPackaging(packaging string) *ModelBuilder {
	b.packaging = packaging
	return b
}

// WithArchiveName sets the archive name.
func (b *ModelBuilder) WithArchiveName(archiveName string) *ModelBuilder {
	b.archiveName = archiveName
	return b
}

// WithDependency adds a direct dependency.
func (b *ModelBuilder) WithDependency(dep entities.Dependency) *ModelBuilder {
	b.dependencies = append(b.dependencies, dep)
	return b
}

// WithManagedDependency adds a managed dependency.
func (b *ModelBuilder) WithManagedDependency(dep entities.Dependency) *ModelBuilder {
	b.managed = append(b.managed, dep)
	return b
}

// WithPlugin adds a plugin by short name or class.
func (b *ModelBuilder) WithPlugin(id string) *ModelBuilder {
	b.plugins = append(b.plugins, entities.PluginFromID(id))
	return b
}

// WithRepository adds a repository by URL.
func (b *ModelBuilder) WithRepository(url string) *ModelBuilder {
	b.repositories = append(b.repositories, entities.NewRepositoryBuilder().WithURL(url).Build())
	return b
}

// WithProperty sets a project property.
func (b *ModelBuilder) WithProperty(key, value string) *ModelBuilder {
	b.properties[key] = value
	return b
}

// WithTask adds a task.
func (b *ModelBuilder) WithTask(task *entities.Task) *ModelBuilder {
	b.tasks = append(b.tasks, task)
	return b
}

// Build creates the model (satisfies testkit.Builder interface).
func (b *ModelBuilder) Build() interface{} {
	return b.BuildModel()
}

// BuildModel creates the model with a concrete return type.
func (b *ModelBuilder) BuildModel() *entities.BuildModel {
	return entities.NewModelBuilder().
		WithGroup(b.group).
		WithName(b.name).
		WithVersion(b.version).
		WithPackaging(b.packaging).
		WithArchiveName(b.archiveName).
		WithDependencies(b.dependencies).
		WithManagedDependencies(b.managed).
		WithPlugins(b.plugins).
		WithRepositories(b.repositories).
		WithProperties(b.properties).
		WithTasks(b.tasks).
		Build()
}

// Reset clears the builder state, allowing it to be reused.
func (b *ModelBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.group = "org.example"
	b.name = "app"
	b.version = "1.0.0"
	b.packaging = entities.DefaultPackaging
	b.archiveName = "app-1.0.0"
	b.dependencies = nil
	b.managed = nil
	b.plugins = nil
	b.repositories = nil
	b.properties = map[string]string{}
	b.tasks = nil
	return b
}

// Clone creates a deep copy of the ModelBuilder.
func (b *ModelBuilder) Clone() testkit.Builder {
	return &ModelBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		group:        b.group,
		name:         b.name,
		version:      b.version,
		packaging:    b.packaging,
		archiveName:  b.archiveName,
		dependencies: slices.Clone(b.dependencies),
		managed:      slices.Clone(b.managed),
		plugins:      slices.Clone(b.plugins),
		repositories: slices.Clone(b.repositories),
		properties:   maps.Clone(b.properties),
		tasks:        slices.Clone(b.tasks),
	}
}
