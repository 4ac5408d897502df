package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gradlesync/internal/infrastructure/repositories"
)

// Sync is the interface for the sync command.
type Sync interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SyncOptions) error
}

// SyncOptions holds runtime options for the sync command.
type SyncOptions struct {
	Dir         string
	ChangesPath string
	OutputPath  string // Existing effective output; empty runs the build
	DryRun      bool   // Print the updated script instead of writing it
	Force       bool   // Write even when the script has uncommitted changes
	Out         io.Writer
}

// SyncCommand applies a change set to a project and writes the minimal script edits back.
type SyncCommand struct {
	projects   *ProjectLoader
	merger     *ModelMerger
	store      repositories.ScriptStore
	workspace  repositories.WorkspaceRepository
	changeSets *infraRepos.ChangeSetRegistry
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	projects *ProjectLoader,
	merger *ModelMerger,
	store repositories.ScriptStore,
	workspace repositories.WorkspaceRepository,
	changeSets *infraRepos.ChangeSetRegistry,
) *SyncCommand {
	return &SyncCommand{
		projects:   projects,
		merger:     merger,
		store:      store,
		workspace:  workspace,
		changeSets: changeSets,
	}
}

// Execute loads the project, applies the change set and merges the result into the script.
func (it *SyncCommand) Execute(ctx context.Context, settings *entities.Settings, opts SyncOptions) error {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	changes, err := it.readChangeSet(ctx, opts.ChangesPath)
	if err != nil {
		return err
	}

	project, err := it.projects.Load(ctx, settings, dir, opts.OutputPath)
	if err != nil {
		return err
	}

	desired, err := changes.Apply(project.Model)
	if err != nil {
		return fmt.Errorf("failed to apply change set %q: %w", opts.ChangesPath, err)
	}
	if downgrades := warnDowngrades(project.Model, desired); downgrades > 0 {
		logger.Warnf("Change set lowers %d version(s)", downgrades)
	}

	updated, err := it.merger.Merge(project.Script, project.Model, desired)
	if err != nil {
		return err
	}

	if updated == project.Script {
		logger.Info("Build script is already up to date, nothing to do.")
		return nil
	}

	if opts.DryRun {
		logger.Infof("[dry-run] Would update %s", project.ScriptPath)
		_, writeErr := io.WriteString(opts.Out, updated)
		return writeErr
	}

	if !opts.Force {
		modified, statusErr := it.workspace.HasUncommittedChanges(project.ScriptPath)
		if statusErr != nil {
			return fmt.Errorf("failed to check workspace status: %w", statusErr)
		}
		if modified {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrWorkspaceModified, project.ScriptPath)
		}
	}

	if writeErr := it.store.Write(ctx, project.ScriptPath, []byte(updated)); writeErr != nil {
		return fmt.Errorf("failed to write build script %q: %w", project.ScriptPath, writeErr)
	}
	logger.Infof("Updated %s", project.ScriptPath)
	return nil
}

func (it *SyncCommand) readChangeSet(ctx context.Context, path string) (*entities.ChangeSet, error) {
	if path == "" {
		return nil, errors.New("a change set file is required")
	}

	parser, err := it.changeSets.ForFile(path)
	if err != nil {
		return nil, err
	}

	data, err := it.store.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read change set %q: %w", path, err)
	}

	changes, err := parser.Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse change set %q: %w", path, err)
	}
	logger.Debugf("Parsed %s change set %s", parser.Name(), path)
	return changes, nil
}
