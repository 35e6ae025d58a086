package trackers

import (
	"testing"

	"github.com/samuelfneumann/frozenlake/environment"
	ts "github.com/samuelfneumann/frozenlake/timestep"
)

func episode(rewards ...float64) []ts.TimeStep {
	steps := make([]ts.TimeStep, len(rewards))
	for i, r := range rewards {
		steps[i] = ts.New(ts.Mid, r, 0.9, environment.Coordinate{}, i)
	}
	steps[0].StepType = ts.First
	steps[len(steps)-1].SetEnd(ts.TerminalStateReached)
	return steps
}

func TestReturn(t *testing.T) {
	r := NewReturn()
	for _, step := range append(episode(0, -0.1, 1), episode(0, -1)...) {
		r.Track(step)
	}

	got := r.Returns()
	want := []float64{0.9, -1}
	if len(got) != len(want) {
		t.Fatalf("returns: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("return %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic tracking non-sequential timesteps")
		}
	}()

	steps := episode(0, 1, 2)
	r := NewReturn()
	r.Track(steps[0])
	r.Track(steps[2])
}

func TestEpisodeLength(t *testing.T) {
	e := NewEpisodeLength()
	for _, step := range append(episode(0, 0, 0, 1), episode(0, 1)...) {
		e.Track(step)
	}

	got := e.Lengths()
	if len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("lengths: got %v, want [3 1]", got)
	}
}
