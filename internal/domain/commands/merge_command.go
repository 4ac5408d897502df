package commands

import (
	"fmt"
	"maps"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// ModelMerger writes the direct-side differences between two models back into a script.
type ModelMerger struct {
	script repositories.ScriptRepository
}

// NewModelMerger creates a merger applying its edits through script.
func NewModelMerger(script repositories.ScriptRepository) *ModelMerger {
	return &ModelMerger{script: script}
}

// scriptEdit is one step of a merge: it receives the script and returns it updated.
type scriptEdit func(source string) (string, error)

// Merge returns source updated with the differences from oldModel to newModel.
// Categories are applied in a fixed order on a working copy; when any edit fails
// the error is returned and none of the edits reach the caller.
func (it *ModelMerger) Merge(source string, oldModel, newModel *entities.BuildModel) (string, error) {
	steps := []struct {
		category string
		edit     scriptEdit
	}{
		{"scalars", func(s string) (string, error) { return it.mergeScalars(s, oldModel, newModel) }},
		{"tasks", func(s string) (string, error) { return it.addTasks(s, newModel.Tasks()) }},
		{"dependencies", func(s string) (string, error) {
			return it.mergeDependencies(s, oldModel.Dependencies(), newModel.Dependencies())
		}},
		{"managed dependencies", func(s string) (string, error) {
			return it.mergeManagedDependencies(s, oldModel.ManagedDependencies(), newModel.ManagedDependencies())
		}},
		{"plugins", func(s string) (string, error) {
			return it.mergePlugins(s, oldModel.Plugins(), newModel.Plugins())
		}},
		{"repositories", func(s string) (string, error) {
			return it.mergeRepositories(s, oldModel.Repositories(), newModel.Repositories())
		}},
		{"properties", func(s string) (string, error) {
			return it.mergeProperties(s, oldModel.Properties(), newModel.Properties())
		}},
	}

	updated := source
	for _, step := range steps {
		var err error
		if updated, err = step.edit(updated); err != nil {
			return "", fmt.Errorf("failed to merge %s: %w", step.category, err)
		}
	}
	return updated, nil
}

func (it *ModelMerger) mergeScalars(source string, oldModel, newModel *entities.BuildModel) (string, error) {
	var err error
	if newModel.Group() != oldModel.Group() {
		logger.Debugf("Setting group to %q", newModel.Group())
		if source, err = it.script.SetProperty(source, "group", newModel.Group()); err != nil {
			return "", err
		}
	}
	if newModel.Version() != oldModel.Version() {
		logger.Debugf("Setting version to %q", newModel.Version())
		if source, err = it.script.SetProperty(source, "version", newModel.Version()); err != nil {
			return "", err
		}
	}
	if newModel.ArchiveName() != oldModel.ArchiveName() {
		logger.Debugf("Setting archive name to %q", newModel.ArchiveName())
		if source, err = it.script.SetArchiveName(source, newModel.ArchiveName()); err != nil {
			return "", err
		}
	}
	if newModel.Packaging() != oldModel.Packaging() {
		if source, err = it.setPackaging(source, newModel.Packaging()); err != nil {
			return "", err
		}
	}
	if newModel.SourceCompatibility() != oldModel.SourceCompatibility() {
		logger.Debugf("Setting source compatibility to %q", newModel.SourceCompatibility())
		if source, err = it.script.SetProperty(source, "sourceCompatibility", newModel.SourceCompatibility()); err != nil {
			return "", err
		}
	}
	if newModel.TargetCompatibility() != oldModel.TargetCompatibility() {
		logger.Debugf("Setting target compatibility to %q", newModel.TargetCompatibility())
		if source, err = it.script.SetProperty(source, "targetCompatibility", newModel.TargetCompatibility()); err != nil {
			return "", err
		}
	}
	return source, nil
}

// setPackaging applies the plugin producing packaging; Gradle has no packaging field.
func (it *ModelMerger) setPackaging(source, packaging string) (string, error) {
	pluginType, ok := entities.PluginTypeForPackaging(packaging)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPackaging, packaging)
	}
	logger.Debugf("Applying plugin %q for %s packaging", pluginType.ID(), packaging)
	return it.script.InsertPlugin(source, pluginType.ID())
}

func (it *ModelMerger) addTasks(source string, tasks []*entities.Task) (string, error) {
	var err error
	for _, task := range tasks {
		logger.Debugf("Inserting task %q", task.Name())
		source, err = it.script.InsertTask(source, task.Name(), task.DependsOnNames(), task.Type(), task.Code())
		if err != nil {
			return "", err
		}
	}
	return source, nil
}

// isFullDeclaration tells whether dep needs a configuration-and-version declaration
// rather than the group+name shorthand.
func isFullDeclaration(dep entities.Dependency) bool {
	return dep.Version() != "" && dep.ConfigurationName() != ""
}

func (it *ModelMerger) mergeDependencies(source string, oldDeps, newDeps []entities.Dependency) (string, error) {
	var err error
	for _, dep := range subtract(newDeps, oldDeps, entities.Dependency.Equal) {
		logger.Debugf("Inserting dependency %s", dep)
		if isFullDeclaration(dep) {
			source, err = it.script.InsertDependency(source, dep)
		} else {
			source, err = it.script.InsertDirectDependency(source, dep.Group(), dep.Name())
		}
		if err != nil {
			return "", err
		}
	}
	for _, dep := range subtract(oldDeps, newDeps, entities.Dependency.Equal) {
		logger.Debugf("Removing dependency %s", dep)
		if isFullDeclaration(dep) {
			source, err = it.script.RemoveDependency(source, dep)
		} else {
			source, err = it.script.RemoveDirectDependency(source, dep.Group(), dep.Name())
		}
		if err != nil {
			return "", err
		}
	}
	return source, nil
}

func (it *ModelMerger) mergeManagedDependencies(
	source string,
	oldDeps, newDeps []entities.Dependency,
) (string, error) {
	var err error
	for _, dep := range subtract(newDeps, oldDeps, entities.Dependency.Equal) {
		logger.Debugf("Inserting managed dependency %s", dep)
		if source, err = it.script.InsertManagedDependency(source, dep); err != nil {
			return "", err
		}
	}
	for _, dep := range subtract(oldDeps, newDeps, entities.Dependency.Equal) {
		logger.Debugf("Removing managed dependency %s", dep)
		if source, err = it.script.RemoveManagedDependency(source, dep); err != nil {
			return "", err
		}
	}
	return source, nil
}

// pluginDeclaration is the identifier written to the script for plugin.
func pluginDeclaration(plugin entities.Plugin) string {
	if plugin.ShortName() != "" {
		return plugin.ShortName()
	}
	return plugin.Clazz()
}

func (it *ModelMerger) mergePlugins(source string, oldPlugins, newPlugins []entities.Plugin) (string, error) {
	var err error
	for _, plugin := range subtract(newPlugins, oldPlugins, entities.Plugin.Equal) {
		logger.Debugf("Inserting plugin %s", plugin)
		if source, err = it.script.InsertPlugin(source, pluginDeclaration(plugin)); err != nil {
			return "", err
		}
	}
	for _, plugin := range subtract(oldPlugins, newPlugins, entities.Plugin.Equal) {
		logger.Debugf("Removing plugin %s", plugin)
		if source, err = it.script.RemovePlugin(source, pluginDeclaration(plugin)); err != nil {
			return "", err
		}
	}
	return source, nil
}

func (it *ModelMerger) mergeRepositories(source string, oldRepos, newRepos []entities.Repository) (string, error) {
	var err error
	for _, repo := range subtract(newRepos, oldRepos, entities.Repository.Equal) {
		logger.Debugf("Inserting repository %s", repo)
		if source, err = it.script.InsertRepository(source, repo.URL()); err != nil {
			return "", err
		}
	}
	for _, repo := range subtract(oldRepos, newRepos, entities.Repository.Equal) {
		logger.Debugf("Removing repository %s", repo)
		if source, err = it.script.RemoveRepository(source, repo.URL()); err != nil {
			return "", err
		}
	}
	return source, nil
}

// mergeProperties removes the keys that changed or disappeared, then writes the
// keys that are new or changed. Keys are visited in sorted order.
func (it *ModelMerger) mergeProperties(source string, oldProps, newProps map[string]string) (string, error) {
	var err error
	removed := subtractProperties(oldProps, newProps)
	for _, key := range slices.Sorted(maps.Keys(removed)) {
		if _, kept := newProps[key]; kept {
			continue
		}
		logger.Debugf("Removing property %q", key)
		if source, err = it.script.RemoveProperty(source, repositories.ProjectPropertyPrefix+key); err != nil {
			return "", err
		}
	}

	added := subtractProperties(newProps, oldProps)
	for _, key := range slices.Sorted(maps.Keys(added)) {
		logger.Debugf("Setting property %q to %q", key, added[key])
		if source, err = it.script.SetProperty(source, repositories.ProjectPropertyPrefix+key, added[key]); err != nil {
			return "", err
		}
	}
	return source, nil
}

// subtract returns the elements of first with no equal element in second.
func subtract[T any](first, second []T, equal func(T, T) bool) []T {
	var result []T
	for _, item := range first {
		if !slices.ContainsFunc(second, func(other T) bool { return equal(item, other) }) {
			result = append(result, item)
		}
	}
	return result
}

// subtractProperties returns the entries of first that second lacks or holds with another value.
func subtractProperties(first, second map[string]string) map[string]string {
	result := make(map[string]string, len(first))
	for key, value := range first {
		if other, ok := second[key]; !ok || other != value {
			result[key] = value
		}
	}
	return result
}
