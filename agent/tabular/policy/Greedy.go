package policy

import "github.com/samuelfneumann/frozenlake/agent/tabular"

// NewGreedy creates a new Greedy policy over table
func NewGreedy(table *tabular.QTable) *EGreedy {
	p, _ := NewEGreedy(table, 0.0, 0)
	return p
}
