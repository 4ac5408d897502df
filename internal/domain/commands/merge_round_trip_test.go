//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlesync/internal/domain/commands"
	"github.com/rios0rios0/gradlesync/internal/domain/entities"
	"github.com/rios0rios0/gradlesync/internal/infrastructure/repositories/gradle"
)

func TestModelMergerRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("should keep a dependency whose exclusions were added", func(t *testing.T) {
		t.Parallel()

		// given
		smi := gradle.NewScriptRepository()
		loader := commands.NewModelLoader(smi)
		merger := commands.NewModelMerger(smi)
		script := "dependencies {\n    compile 'com.acme:lib:1.0'\n}\n"
		oldModel := loader.LoadDirect(script)
		require.Len(t, oldModel.Dependencies(), 1)
		exclusion := entities.NewDependencyBuilder().WithGroup("x").WithName("y").Build()
		excluded := entities.NewDependencyBuilderFrom(oldModel.Dependencies()[0]).
			WithExcludedDependencies([]entities.Dependency{exclusion}).
			Build()
		newModel := entities.NewModelBuilderFrom(oldModel).WithDependencies([]entities.Dependency{excluded}).Build()

		// when
		updated, err := merger.Merge(script, oldModel, newModel)

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"dependencies {\n    compile('com.acme:lib:1.0') {\n        exclude group: 'x', module: 'y'\n    }\n}\n",
			updated,
		)
		reloaded := loader.LoadDirect(updated)
		require.Len(t, reloaded.Dependencies(), 1)
		assert.True(t, reloaded.Dependencies()[0].Equal(excluded))
		again, err := merger.Merge(updated, reloaded, newModel)
		require.NoError(t, err)
		assert.Equal(t, updated, again)
	})

	t.Run("should drop exclusions removed from a dependency", func(t *testing.T) {
		t.Parallel()

		// given
		smi := gradle.NewScriptRepository()
		loader := commands.NewModelLoader(smi)
		merger := commands.NewModelMerger(smi)
		script := "dependencies {\n    compile('com.acme:lib:1.0') {\n        exclude group: 'x', module: 'y'\n    }\n}\n"
		oldModel := loader.LoadDirect(script)
		require.Len(t, oldModel.Dependencies(), 1)
		plain := entities.NewDependencyBuilderFrom(oldModel.Dependencies()[0]).
			WithExcludedDependencies(nil).
			Build()
		newModel := entities.NewModelBuilderFrom(oldModel).WithDependencies([]entities.Dependency{plain}).Build()

		// when
		updated, err := merger.Merge(script, oldModel, newModel)

		// then
		require.NoError(t, err)
		assert.Equal(t, "dependencies {\n    compile 'com.acme:lib:1.0'\n}\n", updated)
		assert.Empty(t, loader.LoadDirect(updated).Dependencies()[0].ExcludedDependencies())
	})

	t.Run("should replace a dependency whose version changed", func(t *testing.T) {
		t.Parallel()

		// given
		smi := gradle.NewScriptRepository()
		loader := commands.NewModelLoader(smi)
		merger := commands.NewModelMerger(smi)
		script := "apply plugin: 'java'\n\ndependencies {\n" +
			"    compile 'com.google.guava:guava:19.0'\n" +
			"    testCompile 'junit:junit:4.12'\n" +
			"}\n"
		oldModel := loader.LoadDirect(script)
		require.Len(t, oldModel.Dependencies(), 2)
		upgraded := entities.NewDependencyBuilderFrom(oldModel.Dependencies()[0]).WithVersion("20.0").Build()
		desired := []entities.Dependency{upgraded, oldModel.Dependencies()[1]}
		newModel := entities.NewModelBuilderFrom(oldModel).WithDependencies(desired).Build()

		// when
		updated, err := merger.Merge(script, oldModel, newModel)

		// then
		require.NoError(t, err)
		assert.Contains(t, updated, "    compile 'com.google.guava:guava:20.0'\n")
		assert.NotContains(t, updated, "19.0")
		reloaded := loader.LoadDirect(updated)
		require.Len(t, reloaded.Dependencies(), 2)
		for _, dep := range desired {
			assert.True(t, reloaded.HasDependency(dep), dep.String())
		}
		again, err := merger.Merge(updated, reloaded, newModel)
		require.NoError(t, err)
		assert.Equal(t, updated, again)
	})

	t.Run("should apply the war plugin once for war packaging", func(t *testing.T) {
		t.Parallel()

		// given
		smi := gradle.NewScriptRepository()
		loader := commands.NewModelLoader(smi)
		merger := commands.NewModelMerger(smi)
		script := "plugins {\n    id 'java'\n}\n\nversion = '1.0'\n"
		oldModel := loader.LoadDirect(script)
		newModel := entities.NewModelBuilderFrom(oldModel).WithPackaging("war").Build()

		// when
		updated, err := merger.Merge(script, oldModel, newModel)

		// then
		require.NoError(t, err)
		assert.Equal(t, "plugins {\n    id 'java'\n}\n\napply plugin: 'war'\n\nversion = '1.0'\n", updated)
		reloaded := loader.LoadDirect(updated)
		assert.True(t, reloaded.HasPlugin(entities.PluginFromID("war")))
		again, err := merger.Merge(updated, reloaded, entities.NewModelBuilderFrom(reloaded).WithPackaging("war").Build())
		require.NoError(t, err)
		assert.Equal(t, updated, again)
	})
}
