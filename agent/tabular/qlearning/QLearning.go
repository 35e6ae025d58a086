// Package qlearning implements the tabular Q-Learning algorithm.
//
// Q-Learning learns action values from sampled transitions only; it
// never reads the transition probabilities of the environment. The
// agent behaves ε-greedily with respect to its current table.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/frozenlake/agent/tabular"
	"github.com/samuelfneumann/frozenlake/agent/tabular/policy"
	"github.com/samuelfneumann/frozenlake/environment"
	"github.com/samuelfneumann/frozenlake/experiment"
	"github.com/sirupsen/logrus"
)

// Environment is an episodic simulator that Q-Learning can learn in.
// *simulator.Simulator implements Environment.
type Environment interface {
	experiment.Environment
	environment.Rewarder
}

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	*QLearner
	*policy.EGreedy
}

// New creates a new QLearning agent with a zero-initialized table over
// the cells of env. seed seeds the behaviour policy and must differ
// from the seed of env's random source, otherwise action and successor
// draws are correlated.
func New(env Environment, c Config, seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	table := tabular.NewQTable(env)
	behaviour, err := policy.NewEGreedy(table, c.Epsilon, seed)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	learner := NewQLearner(table, env, c.LearningRate)

	return &QLearning{learner, behaviour}, nil
}

// Learn runs c.Episodes episodes of Q-Learning in env, every episode
// starting from the start cell of env, and returns the learned table.
// An episode whose start cell is terminal ends without any update.
// seed must differ from the seed of env's random source.
func Learn(env Environment, c Config, seed uint64) (*tabular.QTable, error) {
	q, err := New(env, c, seed)
	if err != nil {
		return nil, fmt.Errorf("learn: %w", err)
	}

	log := c.logger()
	e := experiment.NewOnline(env, q, c.Episodes, c.MaxEpisodeSteps)
	e.SetLogger(log)
	if c.Progress != nil {
		e.SetProgressBar(c.Progress)
	}
	if err := e.Run(); err != nil {
		return nil, fmt.Errorf("learn: %w", err)
	}

	log.WithFields(logrus.Fields{
		"episodes":      c.Episodes,
		"epsilon":       c.Epsilon,
		"learning rate": c.LearningRate,
	}).Info("q-learning finished")

	return q.Table(), nil
}
