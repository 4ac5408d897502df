package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultScriptName   = "build.gradle"
	defaultOutputTask   = "forgeOutput"
	defaultOutputFile   = "build/forge-output.xml"
	defaultGradleBinary = "gradle"
)

// Settings is the gradlesync configuration.
type Settings struct {
	ScriptName string   `yaml:"script_name"` // Build script file name inside a project
	OutputTask string   `yaml:"output_task"` // Task that writes the effective model XML
	OutputFile string   `yaml:"output_file"` // Where that task writes it, relative to the project
	Gradle     string   `yaml:"gradle"`      // Gradle executable
	BuildArgs  []string `yaml:"build_args"`  // Extra arguments for every build run
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	settings := &Settings{
		ScriptName: defaultScriptName,
		OutputTask: defaultOutputTask,
		OutputFile: defaultOutputFile,
		Gradle:     defaultGradleBinary,
	}
	if home := os.Getenv("GRADLE_HOME"); home != "" {
		settings.Gradle = filepath.Join(home, "bin", defaultGradleBinary)
	}
	return settings
}

// NewSettings reads a configuration file, falling back to defaults for every
// unset field and expanding ${ENV_VAR} references.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var loaded Settings
	if unmarshalErr := yaml.Unmarshal(data, &loaded); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings := DefaultSettings()
	if loaded.ScriptName != "" {
		settings.ScriptName = expandEnv(loaded.ScriptName)
	}
	if loaded.OutputTask != "" {
		settings.OutputTask = expandEnv(loaded.OutputTask)
	}
	if loaded.OutputFile != "" {
		settings.OutputFile = expandEnv(loaded.OutputFile)
	}
	if loaded.Gradle != "" {
		settings.Gradle = expandEnv(loaded.Gradle)
	}
	for _, arg := range loaded.BuildArgs {
		settings.BuildArgs = append(settings.BuildArgs, expandEnv(arg))
	}
	return settings, nil
}

// LoadSettings loads the given file, the auto-detected one, or defaults when none exists.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		return NewSettings(path)
	}
	found, err := FindConfigFile()
	if err != nil {
		logger.Debug("No config file found, using defaults")
		return DefaultSettings(), nil //nolint:nilerr // a missing config file is not an error
	}
	logger.Infof("Using config file: %s", found)
	return NewSettings(found)
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{".", ".config", "configs"}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".gradlesync.yaml",
		".gradlesync.yml",
		"gradlesync.yaml",
		"gradlesync.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
