package entities

import "errors"

var (
	// ErrInvalidCoordinate is returned when a dependency coordinate cannot be parsed.
	ErrInvalidCoordinate = errors.New("invalid dependency coordinate")

	// ErrUnresolvedTaskDependency is returned when a task depends on a task that does not exist.
	ErrUnresolvedTaskDependency = errors.New("unresolved task dependency")
)
