package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
)

func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return entities.LoadSettings(configPath)
}

func projectDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
