package frozenlake

import "github.com/samuelfneumann/frozenlake/environment"

// Eight returns the configuration of the classic 8x8 lake: a single
// goal walled in on two sides, with hazards along the top edge, the
// middle and the south-west corner.
func Eight() Config {
	c := func(x, y int) environment.Coordinate {
		return environment.Coordinate{X: x, Y: y}
	}

	return NewConfig(8, 8, c(0, 0),
		[]environment.Coordinate{c(3, 4)},
		[]environment.Coordinate{c(3, 3), c(2, 3), c(2, 4)},
		[]environment.Coordinate{
			c(4, 0), c(4, 1), c(3, 0), c(3, 1),
			c(6, 4), c(6, 5),
			c(0, 7), c(0, 6), c(1, 7),
		},
	)
}
