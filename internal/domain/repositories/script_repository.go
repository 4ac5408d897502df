package repositories

import "github.com/rios0rios0/gradlesync/internal/domain/entities"

// ProjectPropertyPrefix marks a key as a project (extra) property in the script.
const ProjectPropertyPrefix = "ext."

// ScriptRepository reads declarations from build script text and applies structured
// edits to it. Every write method takes the current script and returns the updated one,
// leaving text outside the edited declaration untouched.
type ScriptRepository interface {
	GetDependencies(script string) []entities.Dependency
	// GetDirectDependencies returns the shorthand declarations (group and name only).
	GetDirectDependencies(script string) []entities.Dependency
	GetManagedDependencies(script string) []entities.Dependency
	GetPlugins(script string) []entities.Plugin
	GetRepositories(script string) []entities.Repository
	// GetDirectProperties returns the project properties, keys without ProjectPropertyPrefix.
	GetDirectProperties(script string) map[string]string

	SetProperty(script, key, value string) (string, error)
	RemoveProperty(script, key string) (string, error)
	SetArchiveName(script, name string) (string, error)

	InsertPlugin(script, id string) (string, error)
	RemovePlugin(script, id string) (string, error)

	InsertDependency(script string, dep entities.Dependency) (string, error)
	RemoveDependency(script string, dep entities.Dependency) (string, error)
	InsertDirectDependency(script, group, name string) (string, error)
	RemoveDirectDependency(script, group, name string) (string, error)
	InsertManagedDependency(script string, dep entities.Dependency) (string, error)
	RemoveManagedDependency(script string, dep entities.Dependency) (string, error)

	InsertRepository(script, url string) (string, error)
	RemoveRepository(script, url string) (string, error)

	// InsertTask adds a task declaration; inserting a task that already exists is a no-op.
	InsertTask(script, name string, dependsOn []string, typ, code string) (string, error)
}
