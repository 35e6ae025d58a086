package environment

import (
	"fmt"
	"strings"
)

// Action is one of the four compass moves. The declaration order is
// the canonical order used whenever actions are enumerated or ties are
// broken.
type Action int

const (
	North Action = iota
	South
	East
	West
)

// NumActions is the size of the action set
const NumActions = 4

// Actions lists every action in canonical order
var Actions = [NumActions]Action{North, South, East, West}

var offsets = [NumActions]Coordinate{
	North: {0, -1},
	South: {0, 1},
	East:  {1, 0},
	West:  {-1, 0},
}

var perpendiculars = [NumActions][2]Action{
	North: {East, West},
	South: {East, West},
	East:  {North, South},
	West:  {North, South},
}

var names = [NumActions]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

// Validate returns an error wrapping ErrInvalidAction if a is not one
// of the four actions
func (a Action) Validate() error {
	if a < North || a > West {
		return fmt.Errorf("%w: %d", ErrInvalidAction, int(a))
	}
	return nil
}

// Offset returns the one-step displacement of a. Offset panics if a is
// not valid.
func (a Action) Offset() Coordinate {
	return offsets[a]
}

// Perpendicular returns the two slip directions of a
func (a Action) Perpendicular() [2]Action {
	return perpendiculars[a]
}

func (a Action) String() string {
	if a.Validate() != nil {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return names[a]
}

// ParseAction parses either the full name of an action or its first
// letter, case insensitively
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range Actions {
		if s == names[a] || s == names[a][:1] {
			return a, nil
		}
	}
	return 0, fmt.Errorf("parseAction: %w: %q", ErrInvalidAction, s)
}
