// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"github.com/samuelfneumann/frozenlake/environment"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType denotes why an episode ended
type EndType int

const (
	Running EndType = iota
	TerminalStateReached
	Cutoff
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Cutoff:
		return "Cutoff"
	default:
		return "Running"
	}
}

// TimeStep packages together a single timestep in an environment.
// Reward is the reward received on arriving at Observation.
type TimeStep struct {
	StepType
	Reward      float64
	Discount    float64
	Observation environment.Coordinate
	Number      int
	EndType
}

// New returns a new TimeStep
func New(t StepType, r, d float64, o environment.Coordinate,
	n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, Discount: d, Observation: o,
		Number: n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment.
// A first step on a terminal start cell is also last.
func (t *TimeStep) Last() bool {
	return t.StepType == Last || t.EndType != Running
}

// SetEnd marks the TimeStep as the end of its episode
func (t *TimeStep) SetEnd(e EndType) {
	t.EndType = e
	if t.StepType != First {
		t.StepType = Last
	}
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"At: %v  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Observation,
		t.Number)
}
