// Package frozenlake implements the frozen lake gridworld: a grid of
// free, blocked, goal and hazard cells on which every move succeeds
// only with some probability and otherwise slips sideways.
package frozenlake

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/frozenlake/environment"
)

// FrozenLake is the full model of a frozen lake. It is immutable after
// construction and may be shared by any number of solvers.
type FrozenLake struct {
	width, height int
	start         environment.Coordinate
	cells         []environment.Cell // row-major classification
	states        []environment.Coordinate
	stateIndex    []int // cell index -> state index, -1 if not free
	params        Params
}

// New creates a new FrozenLake from a Config
func New(c Config) (*FrozenLake, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	n := c.Width * c.Height
	f := &FrozenLake{
		width:      c.Width,
		height:     c.Height,
		start:      c.Start,
		cells:      make([]environment.Cell, n),
		stateIndex: make([]int, n),
		params:     c.Params,
	}

	for _, g := range c.Goals {
		f.cells[f.cToInd(g)] = environment.Goal
	}
	for _, h := range c.Hazards {
		f.cells[f.cToInd(h)] = environment.Hazard
	}
	for _, b := range c.Blocked {
		f.cells[f.cToInd(b)] = environment.Blocked
	}

	for i, cell := range f.cells {
		f.stateIndex[i] = -1
		if cell == environment.Free {
			f.stateIndex[i] = len(f.states)
			f.states = append(f.states, f.indToC(i))
		}
	}

	return f, nil
}

// Dims gets the width and height of the lake
func (f *FrozenLake) Dims() (width, height int) {
	return f.width, f.height
}

// Start returns the starting cell
func (f *FrozenLake) Start() environment.Coordinate {
	return f.start
}

// States returns the free cells in row-major order
func (f *FrozenLake) States() []environment.Coordinate {
	return f.states
}

// StateIndex returns the index of c in States()
func (f *FrozenLake) StateIndex(c environment.Coordinate) (int, bool) {
	if !c.In(f.width, f.height) {
		return -1, false
	}
	i := f.stateIndex[f.cToInd(c)]
	return i, i >= 0
}

// NumCells returns the number of cells in the lake
func (f *FrozenLake) NumCells() int {
	return len(f.cells)
}

// CellIndex returns the row-major index of c
func (f *FrozenLake) CellIndex(c environment.Coordinate) (int, bool) {
	if !c.In(f.width, f.height) {
		return -1, false
	}
	return f.cToInd(c), true
}

// Cell returns the classification of c
func (f *FrozenLake) Cell(c environment.Coordinate) (environment.Cell,
	error) {
	if !c.In(f.width, f.height) {
		return 0, fmt.Errorf("cell: %v out of bounds", c)
	}
	return f.cells[f.cToInd(c)], nil
}

// Params returns the numeric parameters of the lake
func (f *FrozenLake) Params() Params {
	return f.params
}

// Discount returns the discount factor γ
func (f *FrozenLake) Discount() float64 {
	return f.params.Discount
}

// LivingReward returns the reward received for every move
func (f *FrozenLake) LivingReward() float64 {
	return f.params.LivingReward
}

// Terminal returns the reward of c and true if c is a goal or hazard
func (f *FrozenLake) Terminal(c environment.Coordinate) (float64, bool) {
	if !c.In(f.width, f.height) {
		return 0, false
	}
	switch f.cells[f.cToInd(c)] {
	case environment.Goal:
		return f.params.GoalReward, true
	case environment.Hazard:
		return f.params.HazardReward, true
	}
	return 0, false
}

// Transitions returns the distribution over successors of taking
// action a in state s. The intended move succeeds with the success
// probability, and each of the two perpendicular moves happens with
// half of the remaining probability. Moves that would leave the lake
// or enter a blocked cell leave the agent in place instead.
func (f *FrozenLake) Transitions(s environment.Coordinate,
	a environment.Action) (environment.Distribution, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("transitions: %w", err)
	}
	if _, ok := f.StateIndex(s); !ok {
		return nil, fmt.Errorf("transitions: %w: %v is not a free state",
			environment.ErrInvalidState, s)
	}

	slip := (1 - f.params.SuccessProb) / 2
	perp := a.Perpendicular()
	moves := [3]struct {
		action environment.Action
		prob   float64
	}{
		{a, f.params.SuccessProb},
		{perp[0], slip},
		{perp[1], slip},
	}

	dist := make(environment.Distribution, 0, len(moves)+1)
	var stay float64
	for _, m := range moves {
		if m.prob <= 0 {
			continue
		}
		next := s.Add(m.action.Offset())
		if !f.passable(next) {
			stay += m.prob
			continue
		}
		dist = append(dist, environment.Outcome{Successor: next,
			Probability: m.prob})
	}

	if stay > 0 {
		dist = append(dist, environment.Outcome{Successor: s,
			Probability: stay})
	}
	return dist, nil
}

// passable returns whether c can be entered
func (f *FrozenLake) passable(c environment.Coordinate) bool {
	return c.In(f.width, f.height) &&
		f.cells[f.cToInd(c)] != environment.Blocked
}

func (f *FrozenLake) cToInd(c environment.Coordinate) int {
	return c.Y*f.width + c.X
}

func (f *FrozenLake) indToC(i int) environment.Coordinate {
	y := i / f.width
	return environment.Coordinate{X: i - y*f.width, Y: y}
}

func (f *FrozenLake) String() string {
	var goals, hazards []string
	for i, cell := range f.cells {
		switch cell {
		case environment.Goal:
			goals = append(goals, f.indToC(i).String())
		case environment.Hazard:
			hazards = append(hazards, f.indToC(i).String())
		}
	}

	str := "FrozenLake | Start: %v  |  Goals: [%v]  |  Hazards: [%v]  |  " +
		"Bounds: (%d, %d)"
	return fmt.Sprintf(str, f.start, strings.Join(goals, " "),
		strings.Join(hazards, " "), f.width, f.height)
}
