package entities

import (
	"fmt"
	"slices"
	"strings"
)

// ChangeSet is a declarative delta applied on top of a loaded model.
// Empty scalar fields leave the corresponding model value untouched.
type ChangeSet struct {
	Group               string `yaml:"group"`
	Version             string `yaml:"version"`
	ArchiveName         string `yaml:"archiveName"`
	Packaging           string `yaml:"packaging"`
	SourceCompatibility string `yaml:"sourceCompatibility"`
	TargetCompatibility string `yaml:"targetCompatibility"`

	AddDependencies           []DependencySpec `yaml:"addDependencies"`
	RemoveDependencies        []DependencySpec `yaml:"removeDependencies"`
	AddManagedDependencies    []DependencySpec `yaml:"addManagedDependencies"`
	RemoveManagedDependencies []DependencySpec `yaml:"removeManagedDependencies"`

	AddPlugins    []string `yaml:"addPlugins"`
	RemovePlugins []string `yaml:"removePlugins"`

	AddRepositories    []RepositorySpec `yaml:"addRepositories"`
	RemoveRepositories []string         `yaml:"removeRepositories"`

	SetProperties    map[string]string `yaml:"setProperties"`
	RemoveProperties []string          `yaml:"removeProperties"`

	Tasks []TaskSpec `yaml:"tasks"`
}

// DependencySpec declares a dependency in a change set.
type DependencySpec struct {
	Configuration string   `yaml:"configuration"`
	Coordinate    string   `yaml:"coordinate"`
	Exclusions    []string `yaml:"exclusions"` // group:name
}

// RepositorySpec declares a repository in a change set.
type RepositorySpec struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Dependency converts the spec. A spec without configuration and version is a
// shorthand (direct) declaration.
func (s DependencySpec) Dependency() (Dependency, error) {
	dep, err := ParseDependency(s.Configuration, s.Coordinate)
	if err != nil {
		return Dependency{}, err
	}

	builder := NewDependencyBuilderFrom(dep)
	if s.Configuration == "" && dep.Version() == "" {
		builder.WithConfiguration(ConfigurationDirect)
	}

	exclusions := make([]Dependency, 0, len(s.Exclusions))
	for _, exclusion := range s.Exclusions {
		group, name, ok := strings.Cut(exclusion, ":")
		if !ok || group == "" || name == "" {
			return Dependency{}, fmt.Errorf("%w: exclusion %q of %q", ErrInvalidCoordinate, exclusion, s.Coordinate)
		}
		exclusions = append(exclusions, NewDependencyBuilder().WithGroup(group).WithName(name).Build())
	}
	if len(exclusions) > 0 {
		builder.WithExcludedDependencies(exclusions)
	}
	return builder.Build(), nil
}

// matches tells whether dep is selected by the spec: group and name must be equal,
// version and configuration only when the spec sets them.
func (s DependencySpec) matches(wanted, candidate Dependency) bool {
	if wanted.group != candidate.group || wanted.name != candidate.name {
		return false
	}
	if wanted.version != "" && wanted.version != candidate.version {
		return false
	}
	return s.Configuration == "" || s.Configuration == candidate.configurationName
}

// Apply returns a new model with the change set applied to a copy of model's direct side.
func (c *ChangeSet) Apply(model *BuildModel) (*BuildModel, error) {
	builder := NewModelBuilderFrom(model)
	c.applyScalars(builder)

	deps, err := applyDependencySpecs(model.Dependencies(), c.AddDependencies, c.RemoveDependencies)
	if err != nil {
		return nil, fmt.Errorf("dependencies: %w", err)
	}
	builder.WithDependencies(deps)

	managed, err := applyDependencySpecs(
		model.ManagedDependencies(), c.AddManagedDependencies, c.RemoveManagedDependencies,
	)
	if err != nil {
		return nil, fmt.Errorf("managed dependencies: %w", err)
	}
	builder.WithManagedDependencies(managed)

	builder.WithPlugins(c.applyPlugins(model.Plugins()))
	builder.WithRepositories(c.applyRepositories(model.Repositories()))
	builder.WithProperties(c.applyProperties(model.Properties()))

	tasks, err := c.applyTasks(model)
	if err != nil {
		return nil, fmt.Errorf("tasks: %w", err)
	}
	builder.WithTasks(tasks)

	return builder.Build(), nil
}

func (c *ChangeSet) applyScalars(builder *ModelBuilder) {
	if c.Group != "" {
		builder.WithGroup(c.Group)
	}
	if c.Version != "" {
		builder.WithVersion(c.Version)
	}
	if c.ArchiveName != "" {
		builder.WithArchiveName(c.ArchiveName)
	}
	if c.Packaging != "" {
		builder.WithPackaging(c.Packaging)
	}
	if c.SourceCompatibility != "" {
		builder.WithSourceCompatibility(c.SourceCompatibility)
	}
	if c.TargetCompatibility != "" {
		builder.WithTargetCompatibility(c.TargetCompatibility)
	}
}

// applyDependencySpecs removes the matching entries first, then adds. An added
// dependency replaces an existing one with the same group, name and configuration.
func applyDependencySpecs(current []Dependency, add, remove []DependencySpec) ([]Dependency, error) {
	for _, spec := range remove {
		dep, err := spec.Dependency()
		if err != nil {
			return nil, err
		}
		current = slices.DeleteFunc(current, func(existing Dependency) bool {
			return spec.matches(dep, existing)
		})
	}

	for _, spec := range add {
		dep, err := spec.Dependency()
		if err != nil {
			return nil, err
		}
		idx := slices.IndexFunc(current, func(existing Dependency) bool {
			return existing.group == dep.group && existing.name == dep.name &&
				existing.configurationName == dep.configurationName
		})
		if idx >= 0 {
			current[idx] = dep
			continue
		}
		current = append(current, dep)
	}
	return current, nil
}

func (c *ChangeSet) applyPlugins(current []Plugin) []Plugin {
	for _, id := range c.RemovePlugins {
		removed := PluginFromID(id)
		current = slices.DeleteFunc(current, removed.Equal)
	}
	for _, id := range c.AddPlugins {
		added := PluginFromID(id)
		if !slices.ContainsFunc(current, added.Equal) {
			current = append(current, added)
		}
	}
	return current
}

// PluginFromID accepts either a short name or a fully qualified class.
func PluginFromID(id string) Plugin {
	if strings.Contains(id, ".") {
		return NewPluginBuilder().WithClazz(id).Build()
	}
	return NewPluginBuilder().WithShortName(id).Build()
}

func (c *ChangeSet) applyRepositories(current []Repository) []Repository {
	for _, url := range c.RemoveRepositories {
		removed := NewRepositoryBuilder().WithURL(url).Build()
		current = slices.DeleteFunc(current, removed.Equal)
	}
	for _, spec := range c.AddRepositories {
		added := NewRepositoryBuilder().WithName(spec.Name).WithURL(spec.URL).Build()
		if !slices.ContainsFunc(current, added.Equal) {
			current = append(current, added)
		}
	}
	return current
}

func (c *ChangeSet) applyProperties(current map[string]string) map[string]string {
	for _, key := range c.RemoveProperties {
		delete(current, key)
	}
	for key, value := range c.SetProperties {
		current[key] = value
	}
	return current
}

// applyTasks resolves the declared tasks against each other and against the
// model's effective tasks, replacing direct tasks of the same name.
func (c *ChangeSet) applyTasks(model *BuildModel) ([]*Task, error) {
	current := model.Tasks()
	if len(c.Tasks) == 0 {
		return current, nil
	}

	known := append(model.EffectiveTasks(), current...)
	resolved, err := ResolveTasks(c.Tasks, known...)
	if err != nil {
		return nil, err
	}

	for _, task := range resolved {
		idx := slices.IndexFunc(current, func(existing *Task) bool { return existing.name == task.name })
		if idx >= 0 {
			current[idx] = task
			continue
		}
		current = append(current, task)
	}
	return current, nil
}
