package commands

import (
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// ModelLoader builds a BuildModel from a build script and the effective build tree.
type ModelLoader struct {
	script repositories.ScriptRepository
}

// NewModelLoader creates a loader reading script declarations through script.
func NewModelLoader(script repositories.ScriptRepository) *ModelLoader {
	return &ModelLoader{script: script}
}

// LoadDirect loads only the script side of the model.
func (it *ModelLoader) LoadDirect(script string) *entities.BuildModel {
	builder := entities.NewModelBuilder()
	it.loadDirect(builder, script)
	return builder.Build()
}

// Load loads both the effective model from document and the direct model from script.
// A required element missing from document fails the load with ErrMissingElement.
func (it *ModelLoader) Load(script string, document repositories.TreeNode) (*entities.BuildModel, error) {
	project, err := newTreeReader(document, "").single("project")
	if err != nil {
		return nil, err
	}

	builder := entities.NewModelBuilder()
	if loadErr := loadEffective(builder, project); loadErr != nil {
		return nil, loadErr
	}
	it.loadDirect(builder, script)

	model := builder.Build()
	logger.Debugf(
		"Loaded model %s:%s:%s (%d direct / %d effective dependencies)",
		model.Group(), model.Name(), model.Version(),
		len(model.Dependencies()), len(model.EffectiveDependencies()),
	)
	return model, nil
}

func (it *ModelLoader) loadDirect(builder *entities.ModelBuilder, script string) {
	deps := it.script.GetDependencies(script)
	deps = append(deps, it.script.GetDirectDependencies(script)...)

	builder.
		WithDependencies(deps).
		WithManagedDependencies(it.script.GetManagedDependencies(script)).
		WithPlugins(it.script.GetPlugins(script)).
		WithRepositories(it.script.GetRepositories(script)).
		WithProperties(it.script.GetDirectProperties(script))
}

func loadEffective(builder *entities.ModelBuilder, project treeReader) error {
	if err := loadScalars(builder, project); err != nil {
		return err
	}

	tasks, err := tasksFromNode(project)
	if err != nil {
		return err
	}
	deps, err := depsFromNode(project)
	if err != nil {
		return err
	}
	managed, err := managedDepsFromNode(project)
	if err != nil {
		return err
	}
	plugins, err := pluginsFromNode(project)
	if err != nil {
		return err
	}
	repos, err := reposFromNode(project)
	if err != nil {
		return err
	}
	sourceSets, err := sourceSetsFromNode(project)
	if err != nil {
		return err
	}
	properties, err := propertiesFromNode(project)
	if err != nil {
		return err
	}

	builder.
		WithEffectiveTasks(tasks).
		WithEffectiveDependencies(deps).
		WithEffectiveManagedDependencies(managed).
		WithEffectivePlugins(plugins).
		WithEffectiveRepositories(repos).
		WithEffectiveSourceSets(sourceSets).
		WithEffectiveProperties(properties)
	return nil
}

func loadScalars(builder *entities.ModelBuilder, project treeReader) error {
	fields := []struct {
		element string
		set     func(string) *entities.ModelBuilder
	}{
		{"group", builder.WithGroup},
		{"name", builder.WithName},
		{"version", builder.WithVersion},
		{"packaging", builder.WithPackaging},
		{"archivePath", builder.WithArchivePath},
		{"sourceCompatibility", builder.WithSourceCompatibility},
		{"targetCompatibility", builder.WithTargetCompatibility},
		{"projectPath", builder.WithProjectPath},
		{"rootProjectDirectory", builder.WithRootProjectPath},
	}

	for _, field := range fields {
		value, err := project.text(field.element)
		if err != nil {
			return err
		}
		field.set(value)
	}

	builder.WithArchiveName(archiveNameFromPath(builder.Current().ArchivePath()))
	return nil
}

// archiveNameFromPath returns the file name of archivePath without its extension.
func archiveNameFromPath(archivePath string) string {
	if archivePath == "" {
		return ""
	}
	name := archivePath[strings.LastIndexAny(archivePath, `/\`)+1:]
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		name = name[:dot]
	}
	return name
}

// tasksFromNode collects every task first and links dependencies afterwards,
// since a task may depend on one listed later.
func tasksFromNode(project treeReader) ([]*entities.Task, error) {
	taskNodes, err := project.items("tasks", "task")
	if err != nil {
		return nil, err
	}

	specs := make([]entities.TaskSpec, 0, len(taskNodes))
	for _, taskNode := range taskNodes {
		name, nameErr := taskNode.text("name")
		if nameErr != nil {
			return nil, nameErr
		}

		spec := entities.TaskSpec{Name: name, Type: taskNode.optionalText("type")}
		if dependsOn, ok := taskNode.optional("dependsOn"); ok {
			for _, depNode := range dependsOn.children("task") {
				spec.DependsOn = append(spec.DependsOn, depNode.trimmed())
			}
		}
		specs = append(specs, spec)
	}

	return entities.ResolveTasks(specs)
}

// depsFromNode keeps one dependency per coordinate: a repeated coordinate replaces
// the stored one only when its configuration overrides the stored configuration.
func depsFromNode(project treeReader) ([]entities.Dependency, error) {
	depNodes, err := project.items("dependencies", "dependency")
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, len(depNodes))
	best := make(map[string]entities.Dependency, len(depNodes))
	for _, depNode := range depNodes {
		dep, depErr := depFromNode(depNode)
		if depErr != nil {
			return nil, depErr
		}

		coordinate := dep.Coordinate()
		stored, seen := best[coordinate]
		switch {
		case !seen:
			order = append(order, coordinate)
			best[coordinate] = dep
		case dep.Configuration().Overrides(stored.Configuration()):
			best[coordinate] = dep
		}
	}

	deps := make([]entities.Dependency, 0, len(order))
	for _, coordinate := range order {
		deps = append(deps, best[coordinate])
	}
	return deps, nil
}

func managedDepsFromNode(project treeReader) ([]entities.Dependency, error) {
	depNodes, err := project.items("managedDependencies", "dependency")
	if err != nil {
		return nil, err
	}

	deps := make([]entities.Dependency, 0, len(depNodes))
	for _, depNode := range depNodes {
		dep, depErr := depFromNode(depNode)
		if depErr != nil {
			return nil, depErr
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func depFromNode(depNode treeReader) (entities.Dependency, error) {
	values := make(map[string]string, 4) //nolint:mnd // group, name, version, configuration
	for _, element := range []string{"group", "name", "version", "configuration"} {
		value, err := depNode.text(element)
		if err != nil {
			return entities.Dependency{}, err
		}
		values[element] = value
	}

	builder := entities.NewDependencyBuilder().
		WithGroup(values["group"]).
		WithName(values["name"]).
		WithVersion(values["version"]).
		WithConfigurationName(values["configuration"])

	if artifacts, ok := depNode.optional("artifacts"); ok {
		if artifact, found := artifacts.optional("artifact"); found {
			if classifier := artifact.optionalText("classifier"); classifier != "" {
				builder.WithClassifier(classifier)
			}
			if packaging := artifact.optionalText("type"); packaging != "" {
				builder.WithPackaging(packaging)
			}
		}
	}

	exclusions, err := exclusionsFromNode(depNode)
	if err != nil {
		return entities.Dependency{}, err
	}
	if len(exclusions) > 0 {
		builder.WithExcludedDependencies(exclusions)
	}

	return builder.Build(), nil
}

func exclusionsFromNode(depNode treeReader) ([]entities.Dependency, error) {
	rules, ok := depNode.optional("excludeRules")
	if !ok {
		return nil, nil
	}

	var exclusions []entities.Dependency
	for _, rule := range rules.children("excludeRule") {
		group, err := rule.text("group")
		if err != nil {
			return nil, err
		}
		module, err := rule.text("module")
		if err != nil {
			return nil, err
		}
		exclusions = append(exclusions, entities.NewDependencyBuilder().WithGroup(group).WithName(module).Build())
	}
	return exclusions, nil
}

func pluginsFromNode(project treeReader) ([]entities.Plugin, error) {
	pluginNodes, err := project.items("plugins", "plugin")
	if err != nil {
		return nil, err
	}

	plugins := make([]entities.Plugin, 0, len(pluginNodes))
	for _, pluginNode := range pluginNodes {
		clazz, classErr := pluginNode.text("class")
		if classErr != nil {
			return nil, classErr
		}
		plugins = append(plugins, entities.NewPluginBuilder().WithClazz(clazz).Build())
	}
	return plugins, nil
}

func reposFromNode(project treeReader) ([]entities.Repository, error) {
	repoNodes, err := project.items("repositories", "repository")
	if err != nil {
		return nil, err
	}

	repos := make([]entities.Repository, 0, len(repoNodes))
	for _, repoNode := range repoNodes {
		name, nameErr := repoNode.text("name")
		if nameErr != nil {
			return nil, nameErr
		}
		url, urlErr := repoNode.text("url")
		if urlErr != nil {
			return nil, urlErr
		}
		repos = append(repos, entities.NewRepositoryBuilder().WithName(name).WithURL(url).Build())
	}
	return repos, nil
}

func sourceSetsFromNode(project treeReader) ([]entities.SourceSet, error) {
	setNodes, err := project.items("sourceSets", "sourceSet")
	if err != nil {
		return nil, err
	}

	sets := make([]entities.SourceSet, 0, len(setNodes))
	for _, setNode := range setNodes {
		name, nameErr := setNode.text("name")
		if nameErr != nil {
			return nil, nameErr
		}
		javaDirs, javaErr := directoriesFromNode(setNode, "java")
		if javaErr != nil {
			return nil, javaErr
		}
		resourceDirs, resourceErr := directoriesFromNode(setNode, "resources")
		if resourceErr != nil {
			return nil, resourceErr
		}
		sets = append(sets, entities.NewSourceSetBuilder().
			WithName(name).
			WithJavaDirectories(javaDirs).
			WithResourceDirectories(resourceDirs).
			Build())
	}
	return sets, nil
}

func directoriesFromNode(setNode treeReader, role string) ([]entities.SourceDirectory, error) {
	dirNodes, err := setNode.items(role, "directory")
	if err != nil {
		return nil, err
	}

	dirs := make([]entities.SourceDirectory, 0, len(dirNodes))
	for _, dirNode := range dirNodes {
		dirs = append(dirs, entities.NewSourceDirectory(dirNode.trimmed()))
	}
	return dirs, nil
}

func propertiesFromNode(project treeReader) (map[string]string, error) {
	propertyNodes, err := project.items("properties", "property")
	if err != nil {
		return nil, err
	}

	properties := make(map[string]string, len(propertyNodes))
	for _, propertyNode := range propertyNodes {
		key, keyErr := propertyNode.text("key")
		if keyErr != nil {
			return nil, keyErr
		}
		value, valueErr := propertyNode.text("value")
		if valueErr != nil {
			return nil, valueErr
		}
		properties[key] = value
	}
	return properties, nil
}
