// Package dp implements dynamic programming solvers for environments
// whose transition model is fully known
package dp

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/frozenlake/agent/tabular"
	"github.com/samuelfneumann/frozenlake/environment"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// ErrNotConverged is returned when value iteration reaches its sweep
// cap before the value function stops changing
var ErrNotConverged = errors.New("value iteration did not converge")

// ValueIteration computes the optimal state-value function of a Model
// by synchronous Bellman optimality backups.
//
// Every sweep computes all new values from the values of the previous
// sweep only, and the whole table is replaced once the sweep is done.
type ValueIteration struct {
	model     environment.Model
	config    Config
	log       logrus.FieldLogger
	residuals []float64
}

// NewValueIteration returns a new ValueIteration solver for m
func NewValueIteration(m environment.Model, c Config) (*ValueIteration,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newValueIteration: %w", err)
	}

	return &ValueIteration{
		model:  m,
		config: c,
		log:    c.logger(),
	}, nil
}

// Solve is a convenience function which runs value iteration on m to
// convergence and returns the resulting value function
func Solve(m environment.Model, c Config) (*tabular.Values, error) {
	vi, err := NewValueIteration(m, c)
	if err != nil {
		return nil, err
	}
	return vi.Solve()
}

// Residuals returns the largest absolute value change of each sweep of
// the last call to Solve
func (v *ValueIteration) Residuals() []float64 {
	return v.residuals
}

// Solve runs sweeps, starting from a zero value function, until no
// state value changes by more than the threshold in a sweep
func (v *ValueIteration) Solve() (*tabular.Values, error) {
	v.residuals = v.residuals[:0]
	values := tabular.NewValues(v.model)
	next := tabular.NewValues(v.model)

	for sweep := 1; sweep <= v.config.MaxSweeps; sweep++ {
		if err := v.sweep(values, next); err != nil {
			return nil, fmt.Errorf("solve: sweep %d: %w", sweep, err)
		}

		residual := next.MaxDiff(values)
		v.residuals = append(v.residuals, residual)
		values, next = next, values

		v.log.WithFields(logrus.Fields{
			"sweep":    sweep,
			"residual": residual,
		}).Debug("value iteration sweep")

		if residual <= v.config.Threshold {
			v.log.WithFields(logrus.Fields{
				"sweeps":   sweep,
				"residual": residual,
			}).Info("value iteration converged")
			return values, nil
		}
	}

	return nil, fmt.Errorf("solve: %w after %d sweeps (last change %v)",
		ErrNotConverged, v.config.MaxSweeps,
		v.residuals[len(v.residuals)-1])
}

// sweep writes the backup of every state under old into next
func (v *ValueIteration) sweep(old, next *tabular.Values) error {
	states := v.model.States()
	workers := v.config.Workers
	if workers <= 1 || len(states) < 2*workers {
		return v.backup(old, next, 0, len(states))
	}

	// Backups only read old and write disjoint entries of next
	var g errgroup.Group
	chunk := (len(states) + workers - 1) / workers
	for lo := 0; lo < len(states); lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > len(states) {
			hi = len(states)
		}
		g.Go(func() error {
			return v.backup(old, next, lo, hi)
		})
	}
	return g.Wait()
}

// backup performs the Bellman optimality backup of states [lo, hi)
func (v *ValueIteration) backup(old, next *tabular.Values, lo, hi int) error {
	states := v.model.States()
	for i := lo; i < hi; i++ {
		q, err := QValues(v.model, old, states[i])
		if err != nil {
			return err
		}
		next.SetIndex(i, floats.Max(q))
	}
	return nil
}
