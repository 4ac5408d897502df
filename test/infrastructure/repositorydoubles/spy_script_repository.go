//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// ErrSpyFailure is returned by SpyScriptRepository for the method named in FailOn.
var ErrSpyFailure = errors.New("spy failure")

// SpyScriptRepository implements repositories.ScriptRepository as a configurable spy.
// Read methods return the configured declarations; every write method records
// a call such as "InsertPlugin(war)" and appends it to the script on its own line.
type SpyScriptRepository struct {
	// --- read results ---
	Dependencies        []entities.Dependency
	DirectDependencies  []entities.Dependency
	ManagedDependencies []entities.Dependency
	Plugins             []entities.Plugin
	Repositories        []entities.Repository
	Properties          map[string]string

	// --- writes ---
	FailOn string // method name that returns ErrSpyFailure
	Calls  []string
}

var _ repositories.ScriptRepository = (*SpyScriptRepository)(nil)

func (s *SpyScriptRepository) record(script, method string, args ...string) (string, error) {
	call := fmt.Sprintf("%s(%s)", method, strings.Join(args, ", "))
	s.Calls = append(s.Calls, call)
	if s.FailOn == method {
		return "", ErrSpyFailure
	}
	return script + "\n" + call, nil
}

func (s *SpyScriptRepository) GetDependencies(string) []entities.Dependency { return s.Dependencies }

func (s *SpyScriptRepository) GetDirectDependencies(string) []entities.Dependency {
	return s.DirectDependencies
}

func (s *SpyScriptRepository) GetManagedDependencies(string) []entities.Dependency {
	return s.ManagedDependencies
}

func (s *SpyScriptRepository) GetPlugins(string) []entities.Plugin { return s.Plugins }

func (s *SpyScriptRepository) GetRepositories(string) []entities.Repository { return s.Repositories }

func (s *SpyScriptRepository) GetDirectProperties(string) map[string]string {
	properties := make(map[string]string, len(s.Properties))
	for key, value := range s.Properties {
		properties[key] = value
	}
	return properties
}

func (s *SpyScriptRepository) SetProperty(script, key, value string) (string, error) {
	return s.record(script, "SetProperty", key, value)
}

func (s *SpyScriptRepository) RemoveProperty(script, key string) (string, error) {
	return s.record(script, "RemoveProperty", key)
}

func (s *SpyScriptRepository) SetArchiveName(script, name string) (string, error) {
	return s.record(script, "SetArchiveName", name)
}

func (s *SpyScriptRepository) InsertPlugin(script, id string) (string, error) {
	return s.record(script, "InsertPlugin", id)
}

func (s *SpyScriptRepository) RemovePlugin(script, id string) (string, error) {
	return s.record(script, "RemovePlugin", id)
}

func (s *SpyScriptRepository) InsertDependency(script string, dep entities.Dependency) (string, error) {
	return s.record(script, "InsertDependency", dep.ConfigurationName(), dep.Coordinate())
}

func (s *SpyScriptRepository) RemoveDependency(script string, dep entities.Dependency) (string, error) {
	return s.record(script, "RemoveDependency", dep.ConfigurationName(), dep.Coordinate())
}

func (s *SpyScriptRepository) InsertDirectDependency(script, group, name string) (string, error) {
	return s.record(script, "InsertDirectDependency", group, name)
}

func (s *SpyScriptRepository) RemoveDirectDependency(script, group, name string) (string, error) {
	return s.record(script, "RemoveDirectDependency", group, name)
}

func (s *SpyScriptRepository) InsertManagedDependency(script string, dep entities.Dependency) (string, error) {
	return s.record(script, "InsertManagedDependency", dep.ConfigurationName(), dep.Coordinate())
}

func (s *SpyScriptRepository) RemoveManagedDependency(script string, dep entities.Dependency) (string, error) {
	return s.record(script, "RemoveManagedDependency", dep.ConfigurationName(), dep.Coordinate())
}

func (s *SpyScriptRepository) InsertRepository(script, url string) (string, error) {
	return s.record(script, "InsertRepository", url)
}

func (s *SpyScriptRepository) RemoveRepository(script, url string) (string, error) {
	return s.record(script, "RemoveRepository", url)
}

func (s *SpyScriptRepository) InsertTask(
	script, name string,
	dependsOn []string,
	typ, code string,
) (string, error) {
	return s.record(script, "InsertTask", name, "["+strings.Join(dependsOn, " ")+"]", typ, code)
}
