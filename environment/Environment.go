// Package environment outlines the interfaces and types needed to
// implement concrete grid environments with a known or sampled
// transition model
package environment

// Space describes the cells of a grid environment and which of them are
// states. States are the free cells: not blocked, not a goal and not a
// hazard.
type Space interface {
	// Dims returns the width and height of the grid
	Dims() (width, height int)

	// Start returns the cell every episode starts in
	Start() Coordinate

	// States returns the free states in row-major order. The returned
	// slice must not be modified.
	States() []Coordinate

	// StateIndex returns the index of c in States()
	StateIndex(c Coordinate) (int, bool)

	// NumCells returns the number of in-bounds cells
	NumCells() int

	// CellIndex returns the row-major index of an in-bounds cell
	CellIndex(c Coordinate) (int, bool)

	// Cell returns the classification of an in-bounds cell
	Cell(c Coordinate) (Cell, error)
}

// Rewarder implements the reward scheme of an environment
type Rewarder interface {
	Discount() float64
	LivingReward() float64

	// Terminal returns the fixed reward of c and true if c is a goal
	// or a hazard
	Terminal(c Coordinate) (float64, bool)
}

// Model is an environment whose transition probabilities are fully
// known. Model-based solvers such as value iteration need a Model.
type Model interface {
	Space
	Rewarder

	// Transitions returns the successor distribution of taking action
	// a in free state s
	Transitions(s Coordinate, a Action) (Distribution, error)
}

// Simulator is an environment that can only be sampled. Model-free
// learners use a Simulator.
type Simulator interface {
	Space
	Rewarder

	// Sample draws one successor of taking action a in free state s
	Sample(s Coordinate, a Action) (Coordinate, error)
}
