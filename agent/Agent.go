// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/frozenlake/environment"
	"github.com/samuelfneumann/frozenlake/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// table the Policy reads.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action
// values are updated.
type Learner interface {
	// Step performs a single update to the learner
	Step() error

	// Observe records that an action lead to some timestep
	Observe(action environment.Action, nextObs timestep.TimeStep) error

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep) error
}

// Policy represents a policy that an agent can have.
//
// A Policy is only defined on free states. Selecting an action for any
// other cell returns an error wrapping environment.ErrInvalidState.
type Policy interface {
	SelectAction(s environment.Coordinate) (environment.Action, error)
}
