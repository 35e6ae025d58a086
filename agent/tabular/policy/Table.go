// Package policy implements tabular policies
package policy

import (
	"fmt"

	"github.com/samuelfneumann/frozenlake/environment"
)

// Table is a deterministic policy mapping each free state to an action
type Table map[environment.Coordinate]environment.Action

// SelectAction returns the action the Table assigns to s
func (t Table) SelectAction(s environment.Coordinate) (environment.Action,
	error) {
	a, ok := t[s]
	if !ok {
		return 0, fmt.Errorf("selectAction: %w: no action for %v",
			environment.ErrInvalidState, s)
	}
	return a, nil
}

// Covers returns an error if the Table does not assign an action to
// every state of space
func (t Table) Covers(space environment.Space) error {
	for _, s := range space.States() {
		if _, ok := t[s]; !ok {
			return fmt.Errorf("covers: no action for state %v", s)
		}
	}
	return nil
}
