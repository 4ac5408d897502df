package entities

// PluginType describes a well-known Gradle plugin.
type PluginType struct {
	Clazz     string
	ShortName string
	// Packaging is the archive type the plugin produces, empty when it produces none.
	Packaging string
}

//nolint:gochecknoglobals // static lookup table
var pluginTypes = []PluginType{
	{Clazz: "org.gradle.api.plugins.JavaPlugin", ShortName: "java", Packaging: "jar"},
	{Clazz: "org.gradle.api.plugins.GroovyPlugin", ShortName: "groovy", Packaging: "jar"},
	{Clazz: "org.gradle.api.plugins.scala.ScalaPlugin", ShortName: "scala", Packaging: "jar"},
	{Clazz: "org.gradle.api.plugins.WarPlugin", ShortName: "war", Packaging: "war"},
	{Clazz: "org.gradle.plugins.ear.EarPlugin", ShortName: "ear", Packaging: "ear"},
	{Clazz: "org.gradle.api.plugins.ApplicationPlugin", ShortName: "application"},
	{Clazz: "org.gradle.api.plugins.MavenPlugin", ShortName: "maven"},
	{Clazz: "org.gradle.plugins.ide.eclipse.EclipsePlugin", ShortName: "eclipse"},
	{Clazz: "org.gradle.plugins.ide.idea.IdeaPlugin", ShortName: "idea"},
}

// PluginTypes returns a copy of the known plugin table.
func PluginTypes() []PluginType {
	types := make([]PluginType, len(pluginTypes))
	copy(types, pluginTypes)
	return types
}

// PluginTypeForPackaging returns the first known plugin providing packaging.
func PluginTypeForPackaging(packaging string) (PluginType, bool) {
	if packaging == "" {
		return PluginType{}, false
	}
	for _, pluginType := range pluginTypes {
		if pluginType.Packaging == packaging {
			return pluginType, true
		}
	}
	return PluginType{}, false
}

// ID returns the short name when the plugin has one, otherwise its class.
// This is the form written into "apply plugin:" declarations.
func (t PluginType) ID() string {
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Clazz
}

func pluginTypeByName(name string) (PluginType, bool) {
	for _, pluginType := range pluginTypes {
		if pluginType.ShortName == name || pluginType.Clazz == name {
			return pluginType, true
		}
	}
	return PluginType{}, false
}

// Plugin is an applied plugin, identified by its fully qualified class.
type Plugin struct {
	clazz     string
	shortName string
}

func (p Plugin) Clazz() string { return p.clazz }
func (p Plugin) ShortName() string { return p.shortName }

// ID is the identity used for equality: the class when known, otherwise the short name.
func (p Plugin) ID() string {
	if p.clazz != "" {
		return p.clazz
	}
	return p.shortName
}

func (p Plugin) Equal(other Plugin) bool { return p.ID() == other.ID() }

func (p Plugin) String() string { return p.ID() }

// PluginBuilder is the mutable form of Plugin.
type PluginBuilder struct {
	plugin Plugin
}

func NewPluginBuilder() *PluginBuilder { return &PluginBuilder{} }

func NewPluginBuilderFrom(plugin Plugin) *PluginBuilder { return &PluginBuilder{plugin: plugin} }

// WithClazz sets the class and fills the short name for known plugins.
func (b *PluginBuilder) WithClazz(clazz string) *PluginBuilder {
	b.plugin.clazz = clazz
	if pluginType, ok := pluginTypeByName(clazz); ok && b.plugin.shortName == "" {
		b.plugin.shortName = pluginType.ShortName
	}
	return b
}

// WithShortName sets the short name and fills the class for known plugins.
func (b *PluginBuilder) WithShortName(shortName string) *PluginBuilder {
	b.plugin.shortName = shortName
	if pluginType, ok := pluginTypeByName(shortName); ok && b.plugin.clazz == "" {
		b.plugin.clazz = pluginType.Clazz
	}
	return b
}

func (b *PluginBuilder) Build() Plugin { return b.plugin }
