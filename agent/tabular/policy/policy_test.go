package policy

import (
	"errors"
	"math"
	"testing"

	"github.com/samuelfneumann/frozenlake/agent/tabular"
	"github.com/samuelfneumann/frozenlake/environment"
	"github.com/samuelfneumann/frozenlake/environment/frozenlake"
)

func coord(x, y int) environment.Coordinate {
	return environment.Coordinate{X: x, Y: y}
}

func newTable(t *testing.T) *tabular.QTable {
	t.Helper()
	lake, err := frozenlake.New(frozenlake.NewConfig(3, 3, coord(0, 0),
		[]environment.Coordinate{coord(2, 2)}, nil, nil))
	if err != nil {
		t.Fatal(err)
	}
	return tabular.NewQTable(lake)
}

func TestEGreedyFrequencies(t *testing.T) {
	table := newTable(t)
	table.Set(coord(1, 1), environment.West, 1.0)

	p, err := NewEGreedy(table, 0.5, 12)
	if err != nil {
		t.Fatal(err)
	}

	const samples = 40_000
	counts := make([]int, environment.NumActions)
	for i := 0; i < samples; i++ {
		a, err := p.SelectAction(coord(1, 1))
		if err != nil {
			t.Fatal(err)
		}
		counts[a]++
	}

	for _, a := range environment.Actions {
		want := 0.125
		if a == environment.West {
			want = 0.625
		}
		if got := float64(counts[a]) / samples; math.Abs(got-want) > 0.015 {
			t.Errorf("action %v: frequency %v, want %v", a, got, want)
		}
	}
}

func TestGreedy(t *testing.T) {
	table := newTable(t)
	p := NewGreedy(table)

	for i := 0; i < 10; i++ {
		if a, _ := p.SelectAction(coord(0, 1)); a != environment.North {
			t.Fatalf("greedy on ties: got %v, want north", a)
		}
	}

	table.Set(coord(0, 1), environment.South, 0.1)
	if a, _ := p.SelectAction(coord(0, 1)); a != environment.South {
		t.Errorf("greedy: got %v, want south", a)
	}

	if _, err := p.SelectAction(coord(2, 2)); !errors.Is(err, environment.ErrInvalidState) {
		t.Errorf("terminal state: got %v, want ErrInvalidState", err)
	}
}

func TestNewEGreedyEpsilon(t *testing.T) {
	table := newTable(t)
	for _, e := range []float64{-0.1, 1.01, math.NaN()} {
		if _, err := NewEGreedy(table, e, 1); err == nil {
			t.Errorf("epsilon %v: expected an error", e)
		}
	}
}

func TestTable(t *testing.T) {
	p := Table{coord(0, 0): environment.East}
	if a, err := p.SelectAction(coord(0, 0)); err != nil || a != environment.East {
		t.Errorf("selectAction: got %v, %v", a, err)
	}
	if _, err := p.SelectAction(coord(1, 0)); !errors.Is(err, environment.ErrInvalidState) {
		t.Errorf("missing state: got %v, want ErrInvalidState", err)
	}

	table := newTable(t)
	if err := p.Covers(table.Space()); err == nil {
		t.Error("covers: expected an error for a partial policy")
	}
}
