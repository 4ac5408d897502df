//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gradlesync/internal/domain/commands"
	"github.com/rios0rios0/gradlesync/internal/domain/entities"
)

// StubShowCommand is a stub implementation of commands.Show.
type StubShowCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ShowOptions
}

var _ commands.Show = (*StubShowCommand)(nil)

func (s *StubShowCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ShowOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
