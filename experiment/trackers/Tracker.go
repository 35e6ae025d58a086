// Package trackers implements Trackers, which record data from the
// timesteps of an experiment
package trackers

import ts "github.com/samuelfneumann/frozenlake/timestep"

// Tracker keeps track of experiment data. An experiment sends every
// TimeStep it sees to its Trackers, in order.
type Tracker interface {
	Track(t ts.TimeStep)
}
