package dp

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/frozenlake/agent/tabular"
	"github.com/samuelfneumann/frozenlake/agent/tabular/policy"
	"github.com/samuelfneumann/frozenlake/environment"
	"gonum.org/v1/gonum/floats"
)

// QValues returns the one-step lookahead action values of free state s
// under v, in canonical action order:
//
//	Q(s, a) = Σ_s' P(s' | s, a) [r + γ V(s')]
//
// where r is the living reward and V(s') is the terminal reward of
// goals and hazards.
func QValues(m environment.Model, v *tabular.Values,
	s environment.Coordinate) ([]float64, error) {
	living, discount := m.LivingReward(), m.Discount()
	successor := func(c environment.Coordinate) float64 {
		return living + discount*v.Successor(m, c)
	}

	q := make([]float64, environment.NumActions)
	for i, a := range environment.Actions {
		dist, err := m.Transitions(s, a)
		if err != nil {
			return nil, fmt.Errorf("qValues: %w", err)
		}
		q[i] = dist.Expect(successor)
	}
	return q, nil
}

// ExtractPolicy returns the policy that is greedy with respect to v.
// Ties go to the action that comes first in canonical order.
func ExtractPolicy(m environment.Model, v *tabular.Values) (policy.Table,
	error) {
	p := make(policy.Table, len(m.States()))
	for _, s := range m.States() {
		q, err := QValues(m, v, s)
		if err != nil {
			return nil, fmt.Errorf("extractPolicy: %w", err)
		}
		p[s] = environment.Actions[floats.MaxIdx(q)]
	}
	return p, nil
}

// BellmanResidual returns max_s |V(s) - max_a Q(s, a)|, the distance of
// v from satisfying the Bellman optimality equation
func BellmanResidual(m environment.Model, v *tabular.Values) (float64,
	error) {
	var residual float64
	for i, s := range m.States() {
		q, err := QValues(m, v, s)
		if err != nil {
			return 0, fmt.Errorf("bellmanResidual: %w", err)
		}
		residual = math.Max(residual, math.Abs(v.AtIndex(i)-floats.Max(q)))
	}
	return residual, nil
}
