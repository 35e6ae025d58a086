package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/frozenlake/agent/tabular/qlearning"
	"github.com/samuelfneumann/frozenlake/environment"
	"github.com/samuelfneumann/frozenlake/environment/frozenlake"
	"github.com/samuelfneumann/frozenlake/environment/simulator"
)

const twoByTwo = `
width: 2
height: 2
start: {x: 0, y: 0}
goals:
  - {x: 1, y: 1}
params:
  successProb: 1.0
`

func writeLake(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lake.yaml")
	if err := ioutil.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cmd := NewRootCmd(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReadLake(t *testing.T) {
	c, err := readLake(writeLake(t, twoByTwo))
	if err != nil {
		t.Fatal(err)
	}

	if c.Width != 2 || c.Height != 2 {
		t.Errorf("dimensions: got (%d, %d), want (2, 2)", c.Width, c.Height)
	}
	goal := environment.Coordinate{X: 1, Y: 1}
	if len(c.Goals) != 1 || c.Goals[0] != goal {
		t.Errorf("goals: got %v, want [%v]", c.Goals, goal)
	}
	if c.SuccessProb != 1.0 {
		t.Errorf("success probability: got %v, want 1", c.SuccessProb)
	}

	// Parameters missing from the file keep their defaults
	if c.Discount != frozenlake.DefaultDiscount {
		t.Errorf("discount: got %v, want %v", c.Discount,
			frozenlake.DefaultDiscount)
	}
	if c.LivingReward != frozenlake.DefaultLivingReward {
		t.Errorf("living reward: got %v, want %v", c.LivingReward,
			frozenlake.DefaultLivingReward)
	}
}

func TestReadLakeDefault(t *testing.T) {
	c, err := readLake("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 8 || c.Height != 8 {
		t.Errorf("dimensions: got (%d, %d), want (8, 8)", c.Width, c.Height)
	}
}

func TestSolve(t *testing.T) {
	out, err := run(t, "solve", "--config", writeLake(t, twoByTwo),
		"--trials", "20")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"Optimal values", "success rate: 1.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestLearn(t *testing.T) {
	out, err := run(t, "learn", "--config", writeLake(t, twoByTwo),
		"--episodes", "200", "--trials", "20", "--seed", "7")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Learned values") {
		t.Errorf("output does not contain the learned values:\n%s", out)
	}
}

func TestInvalidLake(t *testing.T) {
	path := writeLake(t, `
width: 2
height: 1
start: {x: 0, y: 0}
blocked:
  - {x: 0, y: 0}
`)
	_, err := run(t, "solve", "--config", path)
	if !errors.Is(err, environment.ErrInvalidConfig) {
		t.Errorf("got error %v, want %v", err, environment.ErrInvalidConfig)
	}
}

func TestInvalidLearningRate(t *testing.T) {
	if _, err := run(t, "learn", "--alpha", "0"); err == nil {
		t.Error("expected error for a zero learning rate")
	}
}

func TestLearnSeedsKeepSlipsIndependent(t *testing.T) {
	simSeed, agentSeed, evalSeed := learnSeeds(1)
	if simSeed == agentSeed || simSeed == evalSeed || agentSeed == evalSeed {
		t.Fatalf("seeds not distinct: %d, %d, %d", simSeed, agentSeed,
			evalSeed)
	}

	lake, err := frozenlake.New(frozenlake.Eight())
	if err != nil {
		t.Fatal(err)
	}
	sim := simulator.New(lake, simSeed)
	q, err := qlearning.New(sim, qlearning.DefaultConfig(), agentSeed)
	if err != nil {
		t.Fatal(err)
	}

	// East of (1, 4) is blocked, so only the other three moves can
	// land on their intended cell
	s := environment.Coordinate{X: 1, Y: 4}
	taken := make([]int, environment.NumActions)
	intended := make([]int, environment.NumActions)
	for i := 0; i < 200_000; i++ {
		a, err := q.SelectAction(s)
		if err != nil {
			t.Fatal(err)
		}
		next, err := sim.Sample(s, a)
		if err != nil {
			t.Fatal(err)
		}
		taken[a]++
		if next == s.Add(a.Offset()) {
			intended[a]++
		}
	}

	for _, a := range []environment.Action{environment.North,
		environment.South, environment.West} {
		p := float64(intended[a]) / float64(taken[a])
		if math.Abs(p-frozenlake.DefaultSuccessProb) > 0.02 {
			t.Errorf("P(intended | %v): got %.3f, want %.3f", a, p,
				frozenlake.DefaultSuccessProb)
		}
	}
}
