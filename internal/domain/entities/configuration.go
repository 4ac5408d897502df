package entities

// DependencyConfiguration is a Gradle dependency configuration (visibility scope).
type DependencyConfiguration int

const (
	ConfigurationCompile DependencyConfiguration = iota
	ConfigurationRuntime
	ConfigurationTestCompile
	ConfigurationTestRuntime
	// ConfigurationImport simulates the Maven import scope; only managed dependencies use it.
	ConfigurationImport
	// ConfigurationDirect marks a shorthand declaration without version and configuration.
	ConfigurationDirect
	// ConfigurationOther is any configuration name not known to this table.
	ConfigurationOther
)

type configurationInfo struct {
	name       string
	mavenScope string
	extendedBy []DependencyConfiguration
}

// configurations is built once and only read afterwards.
//
//nolint:gochecknoglobals // static lookup table
var configurations = map[DependencyConfiguration]configurationInfo{
	ConfigurationCompile: {
		name:       "compile",
		mavenScope: "compile",
		extendedBy: []DependencyConfiguration{ConfigurationRuntime, ConfigurationTestCompile},
	},
	ConfigurationRuntime: {
		name:       "runtime",
		mavenScope: "runtime",
		extendedBy: []DependencyConfiguration{ConfigurationOther, ConfigurationTestRuntime},
	},
	ConfigurationTestCompile: {
		name:       "testCompile",
		mavenScope: "test",
		extendedBy: []DependencyConfiguration{ConfigurationOther, ConfigurationTestRuntime},
	},
	ConfigurationTestRuntime: {
		name:       "testRuntime",
		mavenScope: "test",
		extendedBy: []DependencyConfiguration{ConfigurationOther},
	},
	ConfigurationImport: {name: "import", mavenScope: "import"},
	ConfigurationDirect: {name: "direct"},
	ConfigurationOther:  {},
}

//nolint:gochecknoglobals // static lookup table
var configurationsByName = map[string]DependencyConfiguration{
	"compile":     ConfigurationCompile,
	"runtime":     ConfigurationRuntime,
	"testCompile": ConfigurationTestCompile,
	"testRuntime": ConfigurationTestRuntime,
	"import":      ConfigurationImport,
	"direct":      ConfigurationDirect,
}

//nolint:gochecknoglobals // static lookup table
var configurationsByMavenScope = map[string]DependencyConfiguration{
	"compile":  ConfigurationCompile,
	"provided": ConfigurationCompile,
	"runtime":  ConfigurationRuntime,
	"test":     ConfigurationTestCompile,
	"system":   ConfigurationCompile,
	"import":   ConfigurationImport,
}

// ConfigurationFromName returns the configuration with the given Gradle name,
// or ConfigurationOther when the name is unknown.
func ConfigurationFromName(name string) DependencyConfiguration {
	if config, ok := configurationsByName[name]; ok {
		return config
	}
	return ConfigurationOther
}

// ConfigurationFromMavenScope returns the configuration matching a Maven scope,
// or ConfigurationOther when the scope is unknown.
func ConfigurationFromMavenScope(scope string) DependencyConfiguration {
	if config, ok := configurationsByMavenScope[scope]; ok {
		return config
	}
	return ConfigurationOther
}

// Name returns the identifier used in build scripts. ConfigurationOther has an empty name.
func (c DependencyConfiguration) Name() string {
	return configurations[c].name
}

// MavenScope translates the configuration to a Maven scope.
func (c DependencyConfiguration) MavenScope() string {
	return configurations[c].mavenScope
}

// Overrides tells whether a declaration under c already covers a declaration under candidate,
// that is whether candidate is reachable from c through the extended-by relation.
func (c DependencyConfiguration) Overrides(candidate DependencyConfiguration) bool {
	if c == candidate {
		return true
	}
	for _, extending := range configurations[c].extendedBy {
		if extending.Overrides(candidate) {
			return true
		}
	}
	return false
}

func (c DependencyConfiguration) String() string {
	if name := c.Name(); name != "" {
		return name
	}
	return "other"
}
