package entities

import "slices"

// SourceDirectory is a single source root path.
type SourceDirectory struct {
	path string
}

func NewSourceDirectory(path string) SourceDirectory { return SourceDirectory{path: path} }

func (d SourceDirectory) Path() string { return d.path }

func (d SourceDirectory) String() string { return "srcDir '" + d.path + "'" }

// SourceSet groups the language and resource directories of one source set.
type SourceSet struct {
	name                string
	javaDirectories     []SourceDirectory
	resourceDirectories []SourceDirectory
}

func (s SourceSet) Name() string { return s.name }

func (s SourceSet) JavaDirectories() []SourceDirectory { return slices.Clone(s.javaDirectories) }

func (s SourceSet) ResourceDirectories() []SourceDirectory {
	return slices.Clone(s.resourceDirectories)
}

func (s SourceSet) Equal(other SourceSet) bool {
	return s.name == other.name &&
		slices.Equal(s.javaDirectories, other.javaDirectories) &&
		slices.Equal(s.resourceDirectories, other.resourceDirectories)
}

// SourceSetBuilder is the mutable form of SourceSet.
type SourceSetBuilder struct {
	set SourceSet
}

func NewSourceSetBuilder() *SourceSetBuilder { return &SourceSetBuilder{} }

func NewSourceSetBuilderFrom(set SourceSet) *SourceSetBuilder {
	return NewSourceSetBuilder().
		WithName(set.name).
		WithJavaDirectories(set.javaDirectories).
		WithResourceDirectories(set.resourceDirectories)
}

func (b *SourceSetBuilder) WithName(name string) *SourceSetBuilder {
	b.set.name = name
	return b
}

func (b *SourceSetBuilder) WithJavaDirectories(dirs []SourceDirectory) *SourceSetBuilder {
	b.set.javaDirectories = slices.Clone(dirs)
	return b
}

func (b *SourceSetBuilder) WithResourceDirectories(dirs []SourceDirectory) *SourceSetBuilder {
	b.set.resourceDirectories = slices.Clone(dirs)
	return b
}

func (b *SourceSetBuilder) Build() SourceSet {
	return SourceSet{
		name:                b.set.name,
		javaDirectories:     slices.Clone(b.set.javaDirectories),
		resourceDirectories: slices.Clone(b.set.resourceDirectories),
	}
}
