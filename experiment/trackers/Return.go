package trackers

import (
	"fmt"

	ts "github.com/samuelfneumann/frozenlake/timestep"
)

// Return tracks the episodic return in an experiment. When an
// environment returns a TimeStep, this Tracker will extract the reward
// and accumulate the return for each episode in the experiment.
//
// Note: An episode must finish for this Tracker to record its return.
type Return struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn() *Return {
	return &Return{lastTimeStep: -1}
}

// Track tracks the rewards seen on a timestep. By calling this method
// on every timestep, the Tracker will store all rewards seen in the
// episode, and save the cumulative reward for that episode as the
// episodic return. When a new episode starts, this method will
// automatically detect this and start accumulating the rewards for this
// new episode separately from the rewards seen on previous episodes.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return) Track(step ts.TimeStep) {
	// Ensure that Track is called on sequential timesteps
	if r.lastTimeStep+1 != step.Number {
		msg := fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number)
		panic(msg)
	}

	r.currentReturn += step.Reward
	if !step.Last() {
		r.lastTimeStep = step.Number
		return
	}

	// Episode has ended, save the return and begin tracking the
	// return for a new episode
	r.episodeReturns = append(r.episodeReturns, r.currentReturn)
	r.currentReturn = 0.0
	r.lastTimeStep = -1
}

// Returns returns the return of every finished episode
func (r *Return) Returns() []float64 {
	return r.episodeReturns
}
