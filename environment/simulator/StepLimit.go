package simulator

import "github.com/samuelfneumann/frozenlake/timestep"

// StepLimit ends episodes at a specific timestep limit
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit. A limit of 0 or
// less never ends an episode.
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended End() marks the timestep as cut off.
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if s.episodeSteps > 0 && t.Number >= s.episodeSteps {
		t.SetEnd(timestep.Cutoff)
		return true
	}
	return false
}
