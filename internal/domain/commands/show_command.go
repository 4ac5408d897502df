package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// Show is the interface for the show command.
type Show interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ShowOptions) error
}

// ShowOptions holds runtime options for the show command.
type ShowOptions struct {
	Dir        string
	OutputPath string // Existing effective output; empty runs the build
	Direct     bool   // Only the script side, no build
	Recursive  bool   // Every project below Dir, script side only
	Out        io.Writer
}

// ShowCommand prints the model of one or more projects as YAML.
type ShowCommand struct {
	projects *ProjectLoader
	finder   repositories.ProjectFinder
}

// NewShowCommand creates a new ShowCommand.
func NewShowCommand(projects *ProjectLoader, finder repositories.ProjectFinder) *ShowCommand {
	return &ShowCommand{projects: projects, finder: finder}
}

// Execute loads and renders the requested projects.
func (it *ShowCommand) Execute(ctx context.Context, settings *entities.Settings, opts ShowOptions) error {
	encoder := yaml.NewEncoder(opts.Out)
	defer encoder.Close()

	if opts.Recursive {
		scripts, err := it.finder.FindScripts(opts.Dir, settings.ScriptName)
		if err != nil {
			return fmt.Errorf("failed to discover projects in %s: %w", opts.Dir, err)
		}
		logger.Infof("Found %d project(s) in %s", len(scripts), opts.Dir)

		for _, script := range scripts {
			project, loadErr := it.projects.LoadDirect(ctx, settings, filepath.Dir(script))
			if loadErr != nil {
				return loadErr
			}
			if encodeErr := encoder.Encode(newModelView(project)); encodeErr != nil {
				return encodeErr
			}
		}
		return nil
	}

	var (
		project *LoadedProject
		err     error
	)
	if opts.Direct {
		project, err = it.projects.LoadDirect(ctx, settings, opts.Dir)
	} else {
		project, err = it.projects.Load(ctx, settings, opts.Dir, opts.OutputPath)
	}
	if err != nil {
		return err
	}
	return encoder.Encode(newModelView(project))
}

type modelView struct {
	Script              string              `yaml:"script"`
	Group               string              `yaml:"group,omitempty"`
	Name                string              `yaml:"name,omitempty"`
	Version             string              `yaml:"version,omitempty"`
	Packaging           string              `yaml:"packaging,omitempty"`
	ArchiveName         string              `yaml:"archiveName,omitempty"`
	SourceCompatibility string              `yaml:"sourceCompatibility,omitempty"`
	TargetCompatibility string              `yaml:"targetCompatibility,omitempty"`
	ProjectPath         string              `yaml:"projectPath,omitempty"`
	Direct              categoryView        `yaml:"direct"`
	Effective           *categoryView       `yaml:"effective,omitempty"`
	SourceSets          []sourceSetView     `yaml:"sourceSets,omitempty"`
	Tasks               map[string][]string `yaml:"tasks,omitempty"`
}

type categoryView struct {
	Dependencies        []string          `yaml:"dependencies,omitempty"`
	ManagedDependencies []string          `yaml:"managedDependencies,omitempty"`
	Plugins             []string          `yaml:"plugins,omitempty"`
	Repositories        []string          `yaml:"repositories,omitempty"`
	Properties          map[string]string `yaml:"properties,omitempty"`
}

type sourceSetView struct {
	Name      string   `yaml:"name"`
	Java      []string `yaml:"java,omitempty"`
	Resources []string `yaml:"resources,omitempty"`
}

func newModelView(project *LoadedProject) modelView {
	model := project.Model
	view := modelView{
		Script:              project.ScriptPath,
		Group:               model.Group(),
		Name:                model.Name(),
		Version:             model.Version(),
		Packaging:           model.Packaging(),
		ArchiveName:         model.ArchiveName(),
		SourceCompatibility: model.SourceCompatibility(),
		TargetCompatibility: model.TargetCompatibility(),
		ProjectPath:         model.ProjectPath(),
		Direct: newCategoryView(
			model.Dependencies(), model.ManagedDependencies(),
			model.Plugins(), model.Repositories(), model.Properties(),
		),
	}

	if !project.Effective {
		return view
	}

	effective := newCategoryView(
		model.EffectiveDependencies(), model.EffectiveManagedDependencies(),
		model.EffectivePlugins(), model.EffectiveRepositories(), model.EffectiveProperties(),
	)
	view.Effective = &effective

	for _, set := range model.EffectiveSourceSets() {
		view.SourceSets = append(view.SourceSets, sourceSetView{
			Name:      set.Name(),
			Java:      directoryPaths(set.JavaDirectories()),
			Resources: directoryPaths(set.ResourceDirectories()),
		})
	}

	view.Tasks = make(map[string][]string)
	for _, task := range model.EffectiveTasks() {
		view.Tasks[task.Name()] = task.DependsOnNames()
	}
	return view
}

func newCategoryView(
	deps, managed []entities.Dependency,
	plugins []entities.Plugin,
	repos []entities.Repository,
	properties map[string]string,
) categoryView {
	view := categoryView{Properties: properties}
	for _, dep := range deps {
		view.Dependencies = append(view.Dependencies, dep.String())
	}
	for _, dep := range managed {
		view.ManagedDependencies = append(view.ManagedDependencies, dep.String())
	}
	for _, plugin := range plugins {
		view.Plugins = append(view.Plugins, plugin.ID())
	}
	for _, repo := range repos {
		view.Repositories = append(view.Repositories, repo.URL())
	}
	return view
}

func directoryPaths(dirs []entities.SourceDirectory) []string {
	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, dir.Path())
	}
	return paths
}
