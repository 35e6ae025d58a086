package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/frozenlake/agent/tabular"
	"github.com/samuelfneumann/frozenlake/environment"
	"github.com/samuelfneumann/frozenlake/timestep"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm.
type QLearner struct {
	table        *tabular.QTable
	rewards      environment.Rewarder
	step         timestep.TimeStep
	action       environment.Action
	nextStep     timestep.TimeStep
	observed     bool
	learningRate float64
}

// NewQLearner creates a new QLearner struct
//
// table is the action-value table to learn, and r supplies the living
// reward and the terminal rewards used in update targets
func NewQLearner(table *tabular.QTable, r environment.Rewarder,
	learningRate float64) *QLearner {
	return &QLearner{
		table:        table,
		rewards:      r,
		learningRate: learningRate,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		return fmt.Errorf("observeFirst: timestep %d is not the first "+
			"in its episode", t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
	q.observed = false
	return nil
}

// Observe observes and records any timestep other than the first timestep
func (q *QLearner) Observe(action environment.Action,
	nextStep timestep.TimeStep) error {
	if err := action.Validate(); err != nil {
		return fmt.Errorf("observe: %w", err)
	}
	q.step = q.nextStep
	q.action = action
	q.nextStep = nextStep
	q.observed = true
	return nil
}

// Step updates the action value of the last observed transition:
//
//	Q(s, a) ← (1 - α) Q(s, a) + α (r + γ target)
//
// where r is the living reward and target is the terminal reward if
// the successor is terminal and max_a' Q(s', a') otherwise
func (q *QLearner) Step() error {
	if !q.observed {
		return fmt.Errorf("step: no transition observed since the last " +
			"update")
	}
	q.observed = false

	state, next := q.step.Observation, q.nextStep.Observation

	// Find the value of the successor
	target, terminal := q.rewards.Terminal(next)
	if !terminal {
		var err error
		if target, err = q.table.Max(next); err != nil {
			return fmt.Errorf("step: %w", err)
		}
	}
	target = q.rewards.LivingReward() + q.nextStep.Discount*target

	// Find the current estimate of the taken action
	current, err := q.table.At(state, q.action)
	if err != nil {
		return fmt.Errorf("step: %w", err)
	}

	updated := (1-q.learningRate)*current + q.learningRate*target
	return q.table.Set(state, q.action, updated)
}

// Table returns the learned action-value table
func (q *QLearner) Table() *tabular.QTable {
	return q.table
}
