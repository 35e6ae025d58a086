package simulator

import (
	"errors"
	"math"
	"testing"

	"github.com/samuelfneumann/frozenlake/environment"
	"github.com/samuelfneumann/frozenlake/environment/frozenlake"
	"github.com/samuelfneumann/frozenlake/timestep"
)

func coord(x, y int) environment.Coordinate {
	return environment.Coordinate{X: x, Y: y}
}

func newLake(t *testing.T, c frozenlake.Config) *frozenlake.FrozenLake {
	t.Helper()
	lake, err := frozenlake.New(c)
	if err != nil {
		t.Fatal(err)
	}
	return lake
}

func TestSampleFrequencies(t *testing.T) {
	lake := newLake(t, frozenlake.Eight())
	sim := New(lake, 42)

	state, action := coord(1, 0), environment.South
	dist, err := lake.Transitions(state, action)
	if err != nil {
		t.Fatal(err)
	}

	const samples = 100_000
	counts := make(map[environment.Coordinate]int)
	for i := 0; i < samples; i++ {
		next, err := sim.Sample(state, action)
		if err != nil {
			t.Fatal(err)
		}
		counts[next]++
	}

	total := 0
	for _, o := range dist {
		freq := float64(counts[o.Successor]) / samples
		if math.Abs(freq-o.Probability) > 0.01 {
			t.Errorf("successor %v: frequency %v, want %v", o.Successor, freq,
				o.Probability)
		}
		total += counts[o.Successor]
	}
	if total != samples {
		t.Errorf("sampled %d successors outside the distribution",
			samples-total)
	}
}

func TestSampleSeeded(t *testing.T) {
	lake := newLake(t, frozenlake.Eight())
	a, b := New(lake, 7), New(lake, 7)

	for i := 0; i < 100; i++ {
		x, _ := a.Sample(coord(2, 2), environment.West)
		y, _ := b.Sample(coord(2, 2), environment.West)
		if x != y {
			t.Fatalf("sample %d: same seed gave %v and %v", i, x, y)
		}
	}
}

func TestSampleInvalid(t *testing.T) {
	sim := New(newLake(t, frozenlake.Eight()), 1)
	if _, err := sim.Sample(coord(3, 4), environment.North); !errors.Is(err, environment.ErrInvalidState) {
		t.Errorf("got %v, want ErrInvalidState", err)
	}
	if _, err := sim.Sample(coord(0, 0), environment.Action(-1)); !errors.Is(err, environment.ErrInvalidAction) {
		t.Errorf("got %v, want ErrInvalidAction", err)
	}
}

func TestStep(t *testing.T) {
	c := frozenlake.NewConfig(2, 1, coord(0, 0),
		[]environment.Coordinate{coord(1, 0)}, nil, nil)
	c.SuccessProb = 1.0
	sim := New(newLake(t, c), 1)

	first := sim.Reset()
	if !first.First() || first.Last() || first.Observation != coord(0, 0) {
		t.Fatalf("reset: got %v", first)
	}

	next, err := sim.Step(first, environment.East)
	if err != nil {
		t.Fatal(err)
	}
	want := frozenlake.DefaultLivingReward + frozenlake.DefaultGoalReward
	if !next.Last() || next.EndType != timestep.TerminalStateReached ||
		math.Abs(next.Reward-want) > 1e-12 || next.Number != 1 {
		t.Errorf("step: got %v, want last step with reward %v", next, want)
	}

	if _, err := sim.Step(next, environment.East); err == nil {
		t.Error("step after the last step should fail")
	}
}

func TestResetTerminalStart(t *testing.T) {
	c := frozenlake.NewConfig(2, 1, coord(0, 0), nil, nil,
		[]environment.Coordinate{coord(0, 0)})
	sim := New(newLake(t, c), 1)

	step := sim.Reset()
	if !step.First() || !step.Last() ||
		step.Reward != frozenlake.DefaultHazardReward {
		t.Errorf("reset: got %v", step)
	}
}

func TestStepLimit(t *testing.T) {
	c := frozenlake.NewConfig(3, 1, coord(0, 0),
		[]environment.Coordinate{coord(2, 0)}, nil, nil)
	c.SuccessProb = 1.0
	sim := New(newLake(t, c), 1).WithStepLimit(3)

	step := sim.Reset()
	var err error
	for !step.Last() {
		// Walking west into the wall never reaches the goal
		step, err = sim.Step(step, environment.West)
		if err != nil {
			t.Fatal(err)
		}
	}

	if step.Number != 3 || step.EndType != timestep.Cutoff {
		t.Errorf("step limit: got %v (%v)", step, step.EndType)
	}
}
