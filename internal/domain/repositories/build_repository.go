package repositories

import "context"

// BuildRepository runs an external build.
type BuildRepository interface {
	// RunBuild blocks until executable finishes running task in directory and
	// reports whether it succeeded. The process output is not forwarded.
	RunBuild(ctx context.Context, executable, directory, task string, args ...string) bool
}
