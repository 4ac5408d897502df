package entities

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultPackaging is the packaging assumed when a dependency does not declare one.
const DefaultPackaging = "jar"

// Dependency is an immutable dependency declaration. Use DependencyBuilder to create one.
type Dependency struct {
	group             string
	name              string
	version           string
	classifier        string
	packaging         string
	configuration     DependencyConfiguration
	configurationName string
	exclusions        []Dependency
}

func (d Dependency) Group() string { return d.group }
func (d Dependency) Name() string { return d.name }
func (d Dependency) Version() string { return d.version }
func (d Dependency) Classifier() string { return d.classifier }
func (d Dependency) Packaging() string { return d.packaging }

func (d Dependency) Configuration() DependencyConfiguration { return d.configuration }

// ConfigurationName returns the raw configuration name, which is kept even when
// Configuration is ConfigurationOther.
func (d Dependency) ConfigurationName() string { return d.configurationName }

// ExcludedDependencies returns a copy of the group+name exclusions.
func (d Dependency) ExcludedDependencies() []Dependency {
	return slices.Clone(d.exclusions)
}

// Coordinate returns the canonical group:name:version[:classifier][@packaging] string.
func (d Dependency) Coordinate() string {
	var sb strings.Builder
	sb.WriteString(d.group)
	sb.WriteByte(':')
	sb.WriteString(d.name)
	sb.WriteByte(':')
	sb.WriteString(d.version)
	if d.classifier != "" {
		sb.WriteByte(':')
		sb.WriteString(d.classifier)
	}
	if d.packaging != "" && d.packaging != DefaultPackaging {
		sb.WriteByte('@')
		sb.WriteString(d.packaging)
	}
	return sb.String()
}

// Equal compares every field, configuration and exclusions included.
func (d Dependency) Equal(other Dependency) bool {
	return d.group == other.group &&
		d.name == other.name &&
		d.version == other.version &&
		d.classifier == other.classifier &&
		d.packaging == other.packaging &&
		d.configuration == other.configuration &&
		d.configurationName == other.configurationName &&
		slices.EqualFunc(d.exclusions, other.exclusions, Dependency.Equal)
}

func (d Dependency) String() string {
	if d.configurationName == "" {
		return d.Coordinate()
	}
	return d.configurationName + " " + d.Coordinate()
}

// DependencyBuilder is the mutable form of Dependency.
type DependencyBuilder struct {
	dep Dependency
}

// NewDependencyBuilder returns a builder with default packaging and ConfigurationOther.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{dep: Dependency{
		packaging:     DefaultPackaging,
		configuration: ConfigurationOther,
	}}
}

// NewDependencyBuilderFrom returns a builder holding a copy of dep.
func NewDependencyBuilderFrom(dep Dependency) *DependencyBuilder {
	dep.exclusions = slices.Clone(dep.exclusions)
	return &DependencyBuilder{dep: dep}
}

// ParseDependency builds a dependency from group:name[:version[:classifier]][@packaging].
func ParseDependency(configurationName, coordinate string) (Dependency, error) {
	builder := NewDependencyBuilder().WithConfigurationName(configurationName)

	rest := strings.TrimSpace(coordinate)
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		builder.WithPackaging(rest[at+1:])
		rest = rest[:at]
	}

	parts := strings.Split(rest, ":")
	if len(parts) < 2 || len(parts) > 4 || parts[0] == "" || parts[1] == "" { //nolint:mnd // group:name[:version[:classifier]]
		return Dependency{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, coordinate)
	}

	builder.WithGroup(parts[0]).WithName(parts[1])
	if len(parts) > 2 { //nolint:mnd // version present
		builder.WithVersion(parts[2])
	}
	if len(parts) > 3 { //nolint:mnd // classifier present
		builder.WithClassifier(parts[3])
	}
	return builder.Build(), nil
}

func (b *DependencyBuilder) WithGroup(group string) *DependencyBuilder {
	b.dep.group = group
	return b
}

func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.dep.name = name
	return b
}

func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.dep.version = version
	return b
}

func (b *DependencyBuilder) WithClassifier(classifier string) *DependencyBuilder {
	b.dep.classifier = classifier
	return b
}

func (b *DependencyBuilder) WithPackaging(packaging string) *DependencyBuilder {
	b.dep.packaging = packaging
	return b
}

// WithConfiguration sets the configuration and its name together.
func (b *DependencyBuilder) WithConfiguration(config DependencyConfiguration) *DependencyBuilder {
	b.dep.configuration = config
	b.dep.configurationName = config.Name()
	return b
}

// WithConfigurationName sets the raw name and derives the configuration from it.
func (b *DependencyBuilder) WithConfigurationName(name string) *DependencyBuilder {
	b.dep.configuration = ConfigurationFromName(name)
	b.dep.configurationName = name
	return b
}

// WithExcludedDependencies replaces the exclusions with a copy of deps.
func (b *DependencyBuilder) WithExcludedDependencies(deps []Dependency) *DependencyBuilder {
	b.dep.exclusions = slices.Clone(deps)
	return b
}

// Build returns an immutable snapshot; later builder calls do not affect it.
func (b *DependencyBuilder) Build() Dependency {
	dep := b.dep
	dep.exclusions = slices.Clone(b.dep.exclusions)
	return dep
}
