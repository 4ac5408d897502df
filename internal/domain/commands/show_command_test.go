//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlesync/internal/domain/commands"
)

func TestShowCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should print the direct and effective model", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newProjectFixture("")
		cmd := commands.NewShowCommand(fixture.projects(), fixture.finder)
		var out bytes.Buffer

		// when
		err := cmd.Execute(context.Background(), fixture.settings, commands.ShowOptions{Dir: projectDir, Out: &out})

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "script: /work/app/build.gradle")
		assert.Contains(t, out.String(), "compile com.google.guava:guava:19.0")
		assert.Contains(t, out.String(), "effective:")
		assert.Contains(t, out.String(), "archiveName: app-1.0.0")
		assert.Len(t, fixture.builds.Calls, 1)
	})

	t.Run("should print only the script side without building", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newProjectFixture("")
		cmd := commands.NewShowCommand(fixture.projects(), fixture.finder)
		var out bytes.Buffer

		// when
		err := cmd.Execute(context.Background(), fixture.settings, commands.ShowOptions{
			Dir:    projectDir,
			Direct: true,
			Out:    &out,
		})

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "org.gradle.api.plugins.JavaPlugin")
		assert.Contains(t, out.String(), "https://repo1.maven.org/maven2/")
		assert.NotContains(t, out.String(), "effective:")
		assert.Empty(t, fixture.builds.Calls)
	})

	t.Run("should print every discovered project", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newProjectFixture("")
		fixture.store.Files["/work/lib/build.gradle"] = "dependencies {\n    compile 'org.example:lib:1.0'\n}\n"
		fixture.finder.Scripts = []string{scriptPath, "/work/lib/build.gradle"}
		cmd := commands.NewShowCommand(fixture.projects(), fixture.finder)
		var out bytes.Buffer

		// when
		err := cmd.Execute(context.Background(), fixture.settings, commands.ShowOptions{
			Dir:       "/work",
			Recursive: true,
			Out:       &out,
		})

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "script: /work/app/build.gradle")
		assert.Contains(t, out.String(), "script: /work/lib/build.gradle")
		assert.Contains(t, out.String(), "compile org.example:lib:1.0")
		assert.Empty(t, fixture.builds.Calls)
	})
}
