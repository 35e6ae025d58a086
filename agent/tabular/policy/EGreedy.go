package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/frozenlake/agent/tabular"
	"github.com/samuelfneumann/frozenlake/environment"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a QTable
type EGreedy struct {
	table   *tabular.QTable
	epsilon float64
	seed    rand.Source // Seed for random number generation
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected. The policy reads
// table on every call, so updates to the table are reflected in the
// actions chosen.
func NewEGreedy(table *tabular.QTable, e float64, seed uint64) (*EGreedy,
	error) {
	if !(e >= 0 && e <= 1) {
		return nil, fmt.Errorf("newEGreedy: epsilon %v not in [0, 1]", e)
	}
	return &EGreedy{table, e, rand.NewSource(seed)}, nil
}

// Epsilon returns the exploration probability
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy) SelectAction(s environment.Coordinate) (environment.Action,
	error) {
	if _, ok := p.table.Space().StateIndex(s); !ok {
		return 0, fmt.Errorf("selectAction: %w: %v",
			environment.ErrInvalidState, s)
	}

	// Find the greedy action
	greedyAction, err := p.table.Greedy(s)
	if err != nil {
		return 0, fmt.Errorf("selectAction: %w", err)
	}
	if p.epsilon == 0 {
		return greedyAction, nil
	}

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(environment.NumActions)
	actionProbabilites := make([]float64, environment.NumActions)
	for i := range actionProbabilites {
		actionProbabilites[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilites[greedyAction] += 1.0 - p.epsilon

	// Construct a categorical distribution over actions using action
	// probabilities
	dist := distuv.NewCategorical(actionProbabilites, p.seed)

	// Sample an action given the action probabilites and return
	return environment.Actions[int(dist.Rand())], nil
}
