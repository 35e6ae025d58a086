// Package simulator turns an environment.Model into an
// environment.Simulator by sampling successors from the model's
// transition distributions
package simulator

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/frozenlake/environment"
	"github.com/samuelfneumann/frozenlake/timestep"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulator samples transitions of a Model. It also runs episodes one
// TimeStep at a time through Reset and Step.
type Simulator struct {
	environment.Model
	source rand.Source
	limit  StepLimit
}

// New returns a new Simulator of model m using a random source seeded
// with seed
func New(m environment.Model, seed uint64) *Simulator {
	return &Simulator{
		Model:  m,
		source: rand.NewSource(seed),
	}
}

// WithStepLimit returns a copy of the Simulator, sharing its random
// source, whose episodes are cut off after steps steps. A limit of 0
// means episodes only end in terminal cells.
func (s *Simulator) WithStepLimit(steps int) *Simulator {
	return &Simulator{
		Model:  s.Model,
		source: s.source,
		limit:  NewStepLimit(steps),
	}
}

// Sample draws a successor of taking action a in state c, weighting
// each outcome by its probability
func (s *Simulator) Sample(c environment.Coordinate,
	a environment.Action) (environment.Coordinate, error) {
	dist, err := s.Transitions(c, a)
	if err != nil {
		return environment.Coordinate{}, fmt.Errorf("sample: %w", err)
	}

	if len(dist) == 1 {
		return dist[0].Successor, nil
	}

	cat := distuv.NewCategorical(dist.Probabilities(), s.source)
	return dist[int(cat.Rand())].Successor, nil
}

// Reset returns the first TimeStep of an episode. If the start cell is
// terminal, the first TimeStep is also the last and carries the
// terminal reward.
func (s *Simulator) Reset() timestep.TimeStep {
	start := s.Start()
	step := timestep.New(timestep.First, 0, s.Discount(), start, 0)

	if r, ok := s.Terminal(start); ok {
		step.Reward = r
		step.SetEnd(timestep.TerminalStateReached)
	}
	return step
}

// Step takes action a from the observation of t and returns the next
// TimeStep. The reward of the next TimeStep is the living reward, plus
// the terminal reward if the successor is terminal.
func (s *Simulator) Step(t timestep.TimeStep,
	a environment.Action) (timestep.TimeStep, error) {
	if t.Last() {
		return timestep.TimeStep{}, fmt.Errorf("step: episode already "+
			"ended at step %d", t.Number)
	}

	next, err := s.Sample(t.Observation, a)
	if err != nil {
		return timestep.TimeStep{}, fmt.Errorf("step: %w", err)
	}

	step := timestep.New(timestep.Mid, s.LivingReward(), s.Discount(), next,
		t.Number+1)
	if r, ok := s.Terminal(next); ok {
		step.Reward += r
		step.SetEnd(timestep.TerminalStateReached)
		return step, nil
	}

	s.limit.End(&step)
	return step, nil
}
