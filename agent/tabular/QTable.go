package tabular

import (
	"fmt"

	"github.com/samuelfneumann/frozenlake/environment"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// QTable is an action-value table with one row per cell of the grid
// and one column per action. Every cell has a row, terminal and blocked
// cells included, so that lookups never need to special case them.
type QTable struct {
	space   environment.Space
	weights *mat.Dense // rows = cells, cols = actions
}

// NewQTable returns a zero-initialized QTable over the cells of space
func NewQTable(space environment.Space) *QTable {
	return &QTable{
		space:   space,
		weights: mat.NewDense(space.NumCells(), environment.NumActions, nil),
	}
}

// Space returns the environment the table is defined over
func (q *QTable) Space() environment.Space {
	return q.space
}

// Weights returns the underlying matrix of action values
func (q *QTable) Weights() *mat.Dense {
	return q.weights
}

// At returns the action value of taking a in cell c
func (q *QTable) At(c environment.Coordinate, a environment.Action) (float64,
	error) {
	row, err := q.row(c, a)
	if err != nil {
		return 0, fmt.Errorf("at: %w", err)
	}
	return q.weights.At(row, int(a)), nil
}

// Set sets the action value of taking a in cell c
func (q *QTable) Set(c environment.Coordinate, a environment.Action,
	value float64) error {
	row, err := q.row(c, a)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	q.weights.Set(row, int(a), value)
	return nil
}

// Row returns a copy of the action values of cell c in canonical action
// order
func (q *QTable) Row(c environment.Coordinate) ([]float64, error) {
	row, err := q.row(c, environment.North)
	if err != nil {
		return nil, fmt.Errorf("row: %w", err)
	}
	return mat.Row(nil, row, q.weights), nil
}

// Max returns the largest action value of cell c
func (q *QTable) Max(c environment.Coordinate) (float64, error) {
	values, err := q.Row(c)
	if err != nil {
		return 0, fmt.Errorf("max: %w", err)
	}
	return floats.Max(values), nil
}

// Greedy returns the action with the largest value in cell c. Ties go
// to the action that comes first in canonical order.
func (q *QTable) Greedy(c environment.Coordinate) (environment.Action,
	error) {
	values, err := q.Row(c)
	if err != nil {
		return 0, fmt.Errorf("greedy: %w", err)
	}
	return environment.Actions[floats.MaxIdx(values)], nil
}

// Values returns the state-value function V(s) = max_a Q(s, a) over the
// free states of the table's space
func (q *QTable) Values() *Values {
	v := NewValues(q.space)
	for i, s := range q.space.States() {
		row, _ := q.space.CellIndex(s)
		v.SetIndex(i, floats.Max(q.weights.RawRowView(row)))
	}
	return v
}

func (q *QTable) row(c environment.Coordinate, a environment.Action) (int,
	error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	row, ok := q.space.CellIndex(c)
	if !ok {
		return 0, fmt.Errorf("%w: %v out of bounds",
			environment.ErrInvalidState, c)
	}
	return row, nil
}
