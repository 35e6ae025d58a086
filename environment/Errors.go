package environment

import "errors"

var (
	// ErrInvalidConfig is returned when an environment cannot be built
	// from its configuration
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidAction is returned for an action outside the action set
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidState is returned when a query is made for a cell that
	// is not a free state
	ErrInvalidState = errors.New("invalid state")
)
