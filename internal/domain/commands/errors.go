package commands

import "errors"

var (
	// ErrMissingElement is returned when a required node of the effective tree is absent.
	ErrMissingElement = errors.New("missing element in effective build output")

	// ErrUnknownPackaging is returned when no known plugin provides the requested packaging.
	ErrUnknownPackaging = errors.New("no plugin provides packaging")

	// ErrBuildFailed is returned when the build producing the effective output fails.
	ErrBuildFailed = errors.New("build failed")

	// ErrScriptNotFound is returned when the project directory has no build script.
	ErrScriptNotFound = errors.New("build script not found")

	// ErrWorkspaceModified is returned when the script has uncommitted changes.
	ErrWorkspaceModified = errors.New("build script has uncommitted changes")
)
