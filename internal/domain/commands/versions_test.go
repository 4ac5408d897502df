//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gradlesync/internal/domain/commands"
	"github.com/rios0rios0/gradlesync/test/domain/entitybuilders"
)

func TestIsOlderVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  string
		next     string
		expected bool
	}{
		{name: "should detect a lower patch version", current: "1.2.3", next: "1.2.2", expected: true},
		{name: "should accept a v prefix", current: "v2.0.0", next: "1.9.9", expected: true},
		{name: "should not flag an upgrade", current: "1.0.0", next: "1.1.0", expected: false},
		{name: "should not flag equal versions", current: "1.0", next: "1.0", expected: false},
		{name: "should ignore non semver versions", current: "19.0", next: "Final", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := commands.IsOlderVersion(tt.current, tt.next)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWarnDowngrades(t *testing.T) {
	t.Parallel()

	t.Run("should count project and dependency downgrades", func(t *testing.T) {
		t.Parallel()

		// given
		oldModel := entitybuilders.NewModelBuilder().
			WithVersion("2.0.0").
			WithDependency(entitybuilders.NewDependencyBuilder().WithVersion("1.5.0").BuildDependency()).
			WithDependency(entitybuilders.NewDependencyBuilder().WithName("other").WithVersion("1.0.0").BuildDependency()).
			BuildModel()
		newModel := entitybuilders.NewModelBuilder().
			WithVersion("1.0.0").
			WithDependency(entitybuilders.NewDependencyBuilder().WithVersion("1.4.0").BuildDependency()).
			WithDependency(entitybuilders.NewDependencyBuilder().WithName("other").WithVersion("1.1.0").BuildDependency()).
			BuildModel()

		// when
		count := commands.WarnDowngrades(oldModel, newModel)

		// then
		assert.Equal(t, 2, count)
	})
}
