//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlesync/internal/domain/entities"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should fall back to defaults for unset fields", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "gradlesync.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output_task: effectiveModel\n"), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "effectiveModel", settings.OutputTask)
		assert.Equal(t, "build.gradle", settings.ScriptName)
		assert.Equal(t, "build/forge-output.xml", settings.OutputFile)
	})

	t.Run("should expand environment variables", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("GRADLESYNC_TEST_ARG", "--offline")
		path := filepath.Join(t.TempDir(), "gradlesync.yaml")
		content := "build_args:\n  - ${GRADLESYNC_TEST_ARG}\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"--offline"}, settings.BuildArgs)
	})

	t.Run("should use the gradle installation from GRADLE_HOME", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("GRADLE_HOME", "/opt/gradle")

		// when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, filepath.Join("/opt/gradle", "bin", "gradle"), settings.Gradle)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})

	t.Run("should fail on invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "gradlesync.yaml")
		require.NoError(t, os.WriteFile(path, []byte("build_args: [unterminated"), 0o600))

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})
}
