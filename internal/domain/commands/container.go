package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the reconciliation core and its project loader
	for _, constructor := range []interface{}{
		NewModelLoader,
		NewModelMerger,
		NewProjectLoader,
		NewShowCommand,
		NewSyncCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ShowCommand) Show {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SyncCommand) Sync {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
