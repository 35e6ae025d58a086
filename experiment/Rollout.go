package experiment

import (
	"fmt"

	"github.com/samuelfneumann/frozenlake/agent"
	"github.com/samuelfneumann/frozenlake/environment"
	"github.com/samuelfneumann/frozenlake/experiment/trackers"
	ts "github.com/samuelfneumann/frozenlake/timestep"
	"gonum.org/v1/gonum/stat"
)

// DefaultTrials is the default number of rollouts used by Evaluate
const DefaultTrials int = 500

// Result summarizes the rollouts of a policy
type Result struct {
	SuccessRate float64
	MeanReward  float64
}

func (r Result) String() string {
	return fmt.Sprintf("success rate: %.3f  |  mean reward: %.3f",
		r.SuccessRate, r.MeanReward)
}

// Rollout follows policy p from the start of env until the episode
// ends. It returns whether the episode ended in a goal cell and the
// total reward collected: the living reward of every move plus the
// reward of the terminal cell reached. Episodes cut off by a step
// limit are failures.
func Rollout(env Environment, p agent.Policy,
	t ...trackers.Tracker) (bool, float64, error) {
	step := env.Reset()
	total := step.Reward
	track(t, step)

	for !step.Last() {
		action, err := p.SelectAction(step.Observation)
		if err != nil {
			return false, 0, fmt.Errorf("rollout: %w", err)
		}

		step, err = env.Step(step, action)
		if err != nil {
			return false, 0, fmt.Errorf("rollout: %w", err)
		}
		total += step.Reward
		track(t, step)
	}

	cell, err := env.Cell(step.Observation)
	if err != nil {
		return false, 0, fmt.Errorf("rollout: %w", err)
	}
	return cell == environment.Goal, total, nil
}

// Evaluate runs trials rollouts of p and returns the fraction that
// reached a goal and the mean total reward. Both are Monte Carlo
// estimates.
func Evaluate(env Environment, p agent.Policy, trials int,
	t ...trackers.Tracker) (Result, error) {
	if trials <= 0 {
		return Result{}, fmt.Errorf("evaluate: trials %d must be positive",
			trials)
	}

	var successes int
	rewards := make([]float64, trials)
	for i := range rewards {
		success, reward, err := Rollout(env, p, t...)
		if err != nil {
			return Result{}, fmt.Errorf("evaluate: trial %d: %w", i, err)
		}
		if success {
			successes++
		}
		rewards[i] = reward
	}

	return Result{
		SuccessRate: float64(successes) / float64(trials),
		MeanReward:  stat.Mean(rewards, nil),
	}, nil
}

// track sends step to every tracker in t
func track(t []trackers.Tracker, step ts.TimeStep) {
	for _, tracker := range t {
		tracker.Track(step)
	}
}
