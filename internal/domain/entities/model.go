package entities

import (
	"maps"
	"slices"
)

// BuildModel is the read-only aggregate of a Gradle project. Each category has a
// direct list (declared in the script) and an effective list (resolved by Gradle).
// Only the direct lists and the scalar fields are written back to the script.
type BuildModel struct {
	group               string
	name                string
	version             string
	packaging           string
	archiveName         string
	archivePath         string
	sourceCompatibility string
	targetCompatibility string
	projectPath         string
	rootProjectPath     string

	tasks               []*Task
	dependencies        []Dependency
	managedDependencies []Dependency
	plugins             []Plugin
	repositories        []Repository
	sourceSets          []SourceSet
	properties          map[string]string

	effectiveTasks               []*Task
	effectiveDependencies        []Dependency
	effectiveManagedDependencies []Dependency
	effectivePlugins             []Plugin
	effectiveRepositories        []Repository
	effectiveSourceSets          []SourceSet
	effectiveProperties          map[string]string
}

func (m *BuildModel) Group() string { return m.group }
func (m *BuildModel) Name() string { return m.name }
func (m *BuildModel) Version() string { return m.version }
func (m *BuildModel) Packaging() string { return m.packaging }
func (m *BuildModel) ArchiveName() string { return m.archiveName }
func (m *BuildModel) ArchivePath() string { return m.archivePath }
func (m *BuildModel) SourceCompatibility() string { return m.sourceCompatibility }
func (m *BuildModel) TargetCompatibility() string { return m.targetCompatibility }
func (m *BuildModel) ProjectPath() string { return m.projectPath }
func (m *BuildModel) RootProjectPath() string { return m.rootProjectPath }

func (m *BuildModel) Tasks() []*Task { return slices.Clone(m.tasks) }
func (m *BuildModel) Dependencies() []Dependency { return slices.Clone(m.dependencies) }
func (m *BuildModel) ManagedDependencies() []Dependency { return slices.Clone(m.managedDependencies) }
func (m *BuildModel) Plugins() []Plugin { return slices.Clone(m.plugins) }
func (m *BuildModel) Repositories() []Repository { return slices.Clone(m.repositories) }
func (m *BuildModel) SourceSets() []SourceSet { return slices.Clone(m.sourceSets) }
func (m *BuildModel) Properties() map[string]string { return cloneProperties(m.properties) }

func (m *BuildModel) EffectiveTasks() []*Task { return slices.Clone(m.effectiveTasks) }
func (m *BuildModel) EffectiveDependencies() []Dependency { return slices.Clone(m.effectiveDependencies) }
func (m *BuildModel) EffectiveManagedDependencies() []Dependency {
	return slices.Clone(m.effectiveManagedDependencies)
}
func (m *BuildModel) EffectivePlugins() []Plugin { return slices.Clone(m.effectivePlugins) }
func (m *BuildModel) EffectiveRepositories() []Repository { return slices.Clone(m.effectiveRepositories) }
func (m *BuildModel) EffectiveSourceSets() []SourceSet { return slices.Clone(m.effectiveSourceSets) }
func (m *BuildModel) EffectiveProperties() map[string]string {
	return cloneProperties(m.effectiveProperties)
}

func (m *BuildModel) HasDependency(dep Dependency) bool {
	return containsFunc(m.dependencies, dep, Dependency.Equal)
}

func (m *BuildModel) HasEffectiveDependency(dep Dependency) bool {
	return containsFunc(m.effectiveDependencies, dep, Dependency.Equal)
}

func (m *BuildModel) HasManagedDependency(dep Dependency) bool {
	return containsFunc(m.managedDependencies, dep, Dependency.Equal)
}

func (m *BuildModel) HasEffectiveManagedDependency(dep Dependency) bool {
	return containsFunc(m.effectiveManagedDependencies, dep, Dependency.Equal)
}

func (m *BuildModel) HasPlugin(plugin Plugin) bool {
	return containsFunc(m.plugins, plugin, Plugin.Equal)
}

func (m *BuildModel) HasEffectivePlugin(plugin Plugin) bool {
	return containsFunc(m.effectivePlugins, plugin, Plugin.Equal)
}

func (m *BuildModel) HasRepository(repo Repository) bool {
	return containsFunc(m.repositories, repo, Repository.Equal)
}

func (m *BuildModel) HasEffectiveRepository(repo Repository) bool {
	return containsFunc(m.effectiveRepositories, repo, Repository.Equal)
}

// HasEffectiveTask matches tasks by name.
func (m *BuildModel) HasEffectiveTask(name string) bool {
	return slices.ContainsFunc(m.effectiveTasks, func(task *Task) bool { return task.name == name })
}

func containsFunc[T any](list []T, item T, equal func(T, T) bool) bool {
	return slices.ContainsFunc(list, func(candidate T) bool { return equal(candidate, item) })
}

// ModelBuilder is the mutable form of BuildModel. Every setter copies its argument.
type ModelBuilder struct {
	model BuildModel
}

func NewModelBuilder() *ModelBuilder {
	return &ModelBuilder{model: BuildModel{
		properties:          map[string]string{},
		effectiveProperties: map[string]string{},
	}}
}

// NewModelBuilderFrom returns a builder holding a copy of model.
func NewModelBuilderFrom(model *BuildModel) *ModelBuilder {
	b := &ModelBuilder{model: *model}
	b.model.copyCollections()
	return b
}

func (m *BuildModel) copyCollections() {
	m.tasks = slices.Clone(m.tasks)
	m.dependencies = slices.Clone(m.dependencies)
	m.managedDependencies = slices.Clone(m.managedDependencies)
	m.plugins = slices.Clone(m.plugins)
	m.repositories = slices.Clone(m.repositories)
	m.sourceSets = slices.Clone(m.sourceSets)
	m.properties = cloneProperties(m.properties)
	m.effectiveTasks = slices.Clone(m.effectiveTasks)
	m.effectiveDependencies = slices.Clone(m.effectiveDependencies)
	m.effectiveManagedDependencies = slices.Clone(m.effectiveManagedDependencies)
	m.effectivePlugins = slices.Clone(m.effectivePlugins)
	m.effectiveRepositories = slices.Clone(m.effectiveRepositories)
	m.effectiveSourceSets = slices.Clone(m.effectiveSourceSets)
	m.effectiveProperties = cloneProperties(m.effectiveProperties)
}

func cloneProperties(properties map[string]string) map[string]string {
	if properties == nil {
		return map[string]string{}
	}
	return maps.Clone(properties)
}

// Current exposes the builder state through the read contract without copying.
func (b *ModelBuilder) Current() *BuildModel { return &b.model }

func (b *ModelBuilder) WithGroup(group string) *ModelBuilder {
	b.model.group = group
	return b
}

func (b *ModelBuilder) WithName(name string) *ModelBuilder {
	b.model.name = name
	return b
}

func (b *ModelBuilder) WithVersion(version string) *ModelBuilder {
	b.model.version = version
	return b
}

func (b *ModelBuilder) WithPackaging(packaging string) *ModelBuilder {
	b.model.packaging = packaging
	return b
}

func (b *ModelBuilder) WithArchiveName(archiveName string) *ModelBuilder {
	b.model.archiveName = archiveName
	return b
}

func (b *ModelBuilder) WithArchivePath(archivePath string) *ModelBuilder {
	b.model.archivePath = archivePath
	return b
}

func (b *ModelBuilder) WithSourceCompatibility(level string) *ModelBuilder {
	b.model.sourceCompatibility = level
	return b
}

func (b *ModelBuilder) WithTargetCompatibility(level string) *ModelBuilder {
	b.model.targetCompatibility = level
	return b
}

func (b *ModelBuilder) WithProjectPath(path string) *ModelBuilder {
	b.model.projectPath = path
	return b
}

func (b *ModelBuilder) WithRootProjectPath(path string) *ModelBuilder {
	b.model.rootProjectPath = path
	return b
}

func (b *ModelBuilder) WithTasks(tasks []*Task) *ModelBuilder {
	b.model.tasks = slices.Clone(tasks)
	return b
}

func (b *ModelBuilder) WithDependencies(deps []Dependency) *ModelBuilder {
	b.model.dependencies = slices.Clone(deps)
	return b
}

func (b *ModelBuilder) WithManagedDependencies(deps []Dependency) *ModelBuilder {
	b.model.managedDependencies = slices.Clone(deps)
	return b
}

func (b *ModelBuilder) WithPlugins(plugins []Plugin) *ModelBuilder {
	b.model.plugins = slices.Clone(plugins)
	return b
}

func (b *ModelBuilder) WithRepositories(repos []Repository) *ModelBuilder {
	b.model.repositories = slices.Clone(repos)
	return b
}

func (b *ModelBuilder) WithSourceSets(sets []SourceSet) *ModelBuilder {
	b.model.sourceSets = slices.Clone(sets)
	return b
}

func (b *ModelBuilder) WithProperties(properties map[string]string) *ModelBuilder {
	b.model.properties = cloneProperties(properties)
	return b
}

func (b *ModelBuilder) WithEffectiveTasks(tasks []*Task) *ModelBuilder {
	b.model.effectiveTasks = slices.Clone(tasks)
	return b
}

func (b *ModelBuilder) WithEffectiveDependencies(deps []Dependency) *ModelBuilder {
	b.model.effectiveDependencies = slices.Clone(deps)
	return b
}

func (b *ModelBuilder) WithEffectiveManagedDependencies(deps []Dependency) *ModelBuilder {
	b.model.effectiveManagedDependencies = slices.Clone(deps)
	return b
}

func (b *ModelBuilder) WithEffectivePlugins(plugins []Plugin) *ModelBuilder {
	b.model.effectivePlugins = slices.Clone(plugins)
	return b
}

func (b *ModelBuilder) WithEffectiveRepositories(repos []Repository) *ModelBuilder {
	b.model.effectiveRepositories = slices.Clone(repos)
	return b
}

func (b *ModelBuilder) WithEffectiveSourceSets(sets []SourceSet) *ModelBuilder {
	b.model.effectiveSourceSets = slices.Clone(sets)
	return b
}

func (b *ModelBuilder) WithEffectiveProperties(properties map[string]string) *ModelBuilder {
	b.model.effectiveProperties = cloneProperties(properties)
	return b
}

// Build returns a snapshot that does not alias the builder.
func (b *ModelBuilder) Build() *BuildModel {
	model := b.model
	model.copyCollections()
	return &model
}
