package environment

import "fmt"

// Coordinate identifies a grid cell. x grows to the east and y grows to
// the south, so (0, 0) is the north-west corner.
type Coordinate struct {
	X int `json:"x" mapstructure:"x"`
	Y int `json:"y" mapstructure:"y"`
}

// Add returns the coordinate offset by o
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{c.X + o.X, c.Y + o.Y}
}

// In returns whether c lies in a grid of the given width and height
func (c Coordinate) In(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
