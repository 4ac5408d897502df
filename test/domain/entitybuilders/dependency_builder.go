//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	group         string
	name          string
	version       string
	classifier    string
	packaging     string
	configuration string
	exclusions    []entities.Dependency
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		group:         "org.example",
		name:          "library",
		version:       "1.0.0",
		packaging:     entities.DefaultPackaging,
		configuration: "compile",
	}
}

// WithGroup sets the group.
func (b *DependencyBuilder) WithGroup(group string) *DependencyBuilder {
	b.group = group
	return b
}

// WithName sets the artifact name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithVersion sets the version.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.version = version
	return b
}

// WithClassifier sets the classifier.
func (b *DependencyBuilder) WithClassifier(classifier string) *DependencyBuilder {
	b.classifier = classifier
	return b
}

// WithPackaging sets the packaging.
func (b *DependencyBuilder) WithPackaging(packaging string) *DependencyBuilder {
	b.packaging = packaging
	return b
}

// WithConfiguration sets the configuration name.
func (b *DependencyBuilder) WithConfiguration(configuration string) *DependencyBuilder {
	b.configuration = configuration
	return b
}

// WithExclusion adds an excluded group:name.
func (b *DependencyBuilder) WithExclusion(group, name string) *DependencyBuilder {
	b.exclusions = append(b.exclusions, entities.NewDependencyBuilder().WithGroup(group).WithName(name).Build())
	return b
}

// AsDirect turns the dependency into a group+name shorthand declaration.
func (b *DependencyBuilder) AsDirect() *DependencyBuilder {
	b.version = ""
	b.configuration = "direct"
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.NewDependencyBuilder().
		WithGroup(b.group).
		WithName(b.name).
		WithVersion(b.version).
		WithClassifier(b.classifier).
		WithPackaging(b.packaging).
		WithConfigurationName(b.configuration).
		WithExcludedDependencies(b.exclusions).
		Build()
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.group = "org.example"
	b.name = "library"
	b.version = "1.0.0"
	b.classifier = ""
	b.packaging = entities.DefaultPackaging
	b.configuration = "compile"
	b.exclusions = nil
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		group:         b.group,
		name:          b.name,
		version:       b.version,
		classifier:    b.classifier,
		packaging:     b.packaging,
		configuration: b.configuration,
		exclusions:    append([]entities.Dependency(nil), b.exclusions...),
	}
}
