package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// LoadedProject is a build script together with the model loaded from it.
type LoadedProject struct {
	ScriptPath string
	Script     string
	Model      *entities.BuildModel
	Effective  bool // Model includes the effective side
}

// ProjectLoader reads a project's script and effective output and loads its model.
type ProjectLoader struct {
	store  repositories.ScriptStore
	trees  repositories.EffectiveTreeRepository
	builds repositories.BuildRepository
	loader *ModelLoader
}

// NewProjectLoader creates a ProjectLoader.
func NewProjectLoader(
	store repositories.ScriptStore,
	trees repositories.EffectiveTreeRepository,
	builds repositories.BuildRepository,
	loader *ModelLoader,
) *ProjectLoader {
	return &ProjectLoader{store: store, trees: trees, builds: builds, loader: loader}
}

// LoadDirect reads the script of the project in dir and loads its direct model.
func (it *ProjectLoader) LoadDirect(
	ctx context.Context,
	settings *entities.Settings,
	dir string,
) (*LoadedProject, error) {
	scriptPath, script, err := it.readScript(ctx, settings, dir)
	if err != nil {
		return nil, err
	}
	return &LoadedProject{ScriptPath: scriptPath, Script: script, Model: it.loader.LoadDirect(script)}, nil
}

// Load reads the script and the effective output of the project in dir. When
// outputPath is empty the output is produced by running the configured build task.
func (it *ProjectLoader) Load(
	ctx context.Context,
	settings *entities.Settings,
	dir, outputPath string,
) (*LoadedProject, error) {
	scriptPath, script, err := it.readScript(ctx, settings, dir)
	if err != nil {
		return nil, err
	}

	if outputPath == "" {
		logger.Infof("Running %q to evaluate %s", settings.OutputTask, scriptPath)
		if !it.builds.RunBuild(ctx, settings.Gradle, dir, settings.OutputTask, settings.BuildArgs...) {
			return nil, fmt.Errorf("%w: task %q in %s", ErrBuildFailed, settings.OutputTask, dir)
		}
		outputPath = filepath.Join(dir, settings.OutputFile)
	}

	output, err := it.store.Read(ctx, outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read effective output %q: %w", outputPath, err)
	}

	document, err := it.trees.Parse(output)
	if err != nil {
		return nil, fmt.Errorf("failed to parse effective output %q: %w", outputPath, err)
	}

	model, err := it.loader.Load(script, document)
	if err != nil {
		return nil, fmt.Errorf("failed to load model of %s: %w", dir, err)
	}
	return &LoadedProject{ScriptPath: scriptPath, Script: script, Model: model, Effective: true}, nil
}

func (it *ProjectLoader) readScript(
	ctx context.Context,
	settings *entities.Settings,
	dir string,
) (string, string, error) {
	scriptPath := filepath.Join(dir, settings.ScriptName)
	exists, err := it.store.Exists(ctx, scriptPath)
	if err != nil {
		return "", "", err
	}
	if !exists {
		return "", "", fmt.Errorf("%w: %s", ErrScriptNotFound, scriptPath)
	}

	data, err := it.store.Read(ctx, scriptPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read build script %q: %w", scriptPath, err)
	}
	return scriptPath, string(data), nil
}
