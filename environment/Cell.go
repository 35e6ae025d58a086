package environment

// Cell classifies a grid cell. Every in-bounds cell has exactly one
// class.
type Cell int

const (
	Free Cell = iota
	Blocked
	Goal
	Hazard
)

// IsTerminal returns whether the cell ends an episode
func (c Cell) IsTerminal() bool {
	return c == Goal || c == Hazard
}

func (c Cell) String() string {
	switch c {
	case Free:
		return "Free"
	case Blocked:
		return "Blocked"
	case Goal:
		return "Goal"
	case Hazard:
		return "Hazard"
	default:
		return "Unknown"
	}
}
