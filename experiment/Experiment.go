// Package experiment implements functionality for running agents in
// environments and evaluating policies by rollouts
package experiment

import (
	"github.com/samuelfneumann/frozenlake/environment"
	ts "github.com/samuelfneumann/frozenlake/timestep"
)

// Environment is an episodic environment that hands out TimeSteps.
// *simulator.Simulator implements Environment.
type Environment interface {
	environment.Space

	// Reset returns the first TimeStep of a new episode
	Reset() ts.TimeStep

	// Step takes action a from the observation of t
	Step(t ts.TimeStep, a environment.Action) (ts.TimeStep, error)
}

// Experiment outlines structs that can run experiments. The Run()
// method will run all episodes until the episode limit is reached. The
// RunEpisode() function will run a single episode.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether the experiment finished
}
