package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlesync/internal/domain/commands"
	"github.com/rios0rios0/gradlesync/internal/domain/entities"
)

// ShowController handles the "show" subcommand.
type ShowController struct {
	command commands.Show
}

// NewShowController creates a new ShowController.
func NewShowController(command commands.Show) *ShowController {
	return &ShowController{command: command}
}

// GetBind returns the Cobra command metadata for the show controller.
func (it *ShowController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "show [path]",
		Short: "Print the build model of a Gradle project",
		Long: `Load the build model of the Gradle project in path (default ".")
and print it as YAML.

By default the configured output task is run to obtain the effective model.
Use --output to read an existing effective output file instead, or --direct
to print only what the build script declares.`,
	}
}

// Execute loads and prints the model.
func (it *ShowController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	outputPath, _ := cmd.Flags().GetString("output")
	direct, _ := cmd.Flags().GetBool("direct")
	recursive, _ := cmd.Flags().GetBool("recursive")

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	if err = it.command.Execute(ctx, settings, commands.ShowOptions{
		Dir:        projectDir(args),
		OutputPath: outputPath,
		Direct:     direct,
		Recursive:  recursive,
		Out:        cmd.OutOrStdout(),
	}); err != nil {
		logger.Errorf("Show failed: %v", err)
	}
}

// AddFlags adds the show-specific flags to the given Cobra command.
func (it *ShowController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Read the effective model from this file instead of running the build")
	cmd.Flags().Bool("direct", false, "Print only the declarations of the build script")
	cmd.Flags().BoolP("recursive", "r", false, "Print the declarations of every project below path")
}
