// Package tabular implements value functions and action-value tables
// stored one entry per cell of a grid environment
package tabular

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/frozenlake/environment"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Values is a state-value function. It holds one value per free state
// of an environment; terminal cells are never stored since their value
// is the fixed terminal reward.
type Values struct {
	space  environment.Space
	values *mat.VecDense
}

// NewValues returns a zero value function over the states of space
func NewValues(space environment.Space) *Values {
	return &Values{
		space:  space,
		values: mat.NewVecDense(max(len(space.States()), 1), nil),
	}
}

// Space returns the environment the values are defined over
func (v *Values) Space() environment.Space {
	return v.space
}

// Len returns the number of states
func (v *Values) Len() int {
	return len(v.space.States())
}

// At returns the value of free state s
func (v *Values) At(s environment.Coordinate) (float64, error) {
	i, ok := v.space.StateIndex(s)
	if !ok {
		return 0, fmt.Errorf("at: %w: %v", environment.ErrInvalidState, s)
	}
	return v.values.AtVec(i), nil
}

// Set sets the value of free state s
func (v *Values) Set(s environment.Coordinate, value float64) error {
	i, ok := v.space.StateIndex(s)
	if !ok {
		return fmt.Errorf("set: %w: %v", environment.ErrInvalidState, s)
	}
	v.values.SetVec(i, value)
	return nil
}

// AtIndex returns the value of the i'th state
func (v *Values) AtIndex(i int) float64 {
	return v.values.AtVec(i)
}

// SetIndex sets the value of the i'th state
func (v *Values) SetIndex(i int, value float64) {
	v.values.SetVec(i, value)
}

// Successor returns the value used when s is reached as a successor:
// the terminal reward for goals and hazards, the stored value for free
// states and 0 for anything else.
func (v *Values) Successor(r environment.Rewarder,
	s environment.Coordinate) float64 {
	if reward, ok := r.Terminal(s); ok {
		return reward
	}
	if i, ok := v.space.StateIndex(s); ok {
		return v.values.AtVec(i)
	}
	return 0
}

// Raw returns the values in state order. The returned slice aliases
// the Values.
func (v *Values) Raw() []float64 {
	return v.values.RawVector().Data[:v.Len()]
}

// MaxDiff returns the largest absolute difference between v and o,
// which must be defined over the same space
func (v *Values) MaxDiff(o *Values) float64 {
	if v.Len() == 0 {
		return 0
	}
	return floats.Distance(v.Raw(), o.Raw(), math.Inf(1))
}

// Clone returns a deep copy of v
func (v *Values) Clone() *Values {
	values := mat.VecDenseCopyOf(v.values)
	return &Values{v.space, values}
}

// Grid returns the values laid out on the grid, one row per y
// coordinate. Terminal cells hold their reward and blocked cells 0.
func (v *Values) Grid(r environment.Rewarder) *mat.Dense {
	width, height := v.space.Dims()
	grid := mat.NewDense(height, width, nil)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.Set(y, x, v.Successor(r, environment.Coordinate{X: x, Y: y}))
		}
	}
	return grid
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
