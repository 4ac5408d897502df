package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlesync/internal/domain/commands"
	"github.com/rios0rios0/gradlesync/internal/domain/entities"
)

// SyncController handles the "sync" subcommand.
type SyncController struct {
	command commands.Sync
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync [path]",
		Short: "Apply a change set to a Gradle build script",
		Long: `Load the build model of the Gradle project in path (default "."),
apply the change set given with --changes and write the resulting
declarations back into the build script.

Only the declarations that differ are edited; comments and formatting
of the rest of the script are preserved. The change set may be written
in YAML (.yaml, .yml) or HCL (.hcl).`,
	}
}

// Execute runs the synchronization.
func (it *SyncController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	changesPath, _ := cmd.Flags().GetString("changes")
	outputPath, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	if err = it.command.Execute(ctx, settings, commands.SyncOptions{
		Dir:         projectDir(args),
		ChangesPath: changesPath,
		OutputPath:  outputPath,
		DryRun:      dryRun,
		Force:       force,
		Out:         cmd.OutOrStdout(),
	}); err != nil {
		logger.Errorf("Sync failed: %v", err)
	}
}

// AddFlags adds the sync-specific flags to the given Cobra command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("changes", "", "Change set file to apply (YAML or HCL)")
	cmd.Flags().StringP("output", "o", "", "Read the effective model from this file instead of running the build")
	cmd.Flags().BoolP("force", "f", false, "Overwrite the build script even if it has uncommitted changes")
	_ = cmd.MarkFlagRequired("changes")
}
