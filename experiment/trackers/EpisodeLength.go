package trackers

import ts "github.com/samuelfneumann/frozenlake/timestep"

// EpisodeLength tracks the lengths of episodes in an experiment.
// Note that an episode must finish for this Tracker to record its
// length.
type EpisodeLength struct {
	episodeLengths []int
}

// NewEpisodeLength returns a new EpisodeLength Tracker
func NewEpisodeLength() *EpisodeLength {
	return &EpisodeLength{}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode
func (e *EpisodeLength) Track(t ts.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, t.Number)
	}
}

// Lengths returns the number of steps of every finished episode
func (e *EpisodeLength) Lengths() []int {
	return e.episodeLengths
}
