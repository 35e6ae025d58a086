package experiment

import (
	"fmt"

	"github.com/samuelfneumann/frozenlake/agent"
	"github.com/samuelfneumann/frozenlake/experiment/trackers"
	ts "github.com/samuelfneumann/frozenlake/timestep"
	"github.com/samuelfneumann/frozenlake/utils/progressbar"
	"github.com/sirupsen/logrus"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	Environment
	agent.Agent
	episodes       int
	episodeSteps   int
	currentEpisode int
	trackers       []trackers.Tracker
	progress       *progressbar.ManualProgressBar
	log            logrus.FieldLogger
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The episodes parameter determines how
// many episodes the experiment is run for, and episodeSteps cuts each
// episode off after that many steps (0 means no cutoff). The t
// parameter is a slice of trackers.Tracker which record data.
func NewOnline(e Environment, a agent.Agent, episodes, episodeSteps int,
	t ...trackers.Tracker) *Online {
	return &Online{
		Environment:  e,
		Agent:        a,
		episodes:     episodes,
		episodeSteps: episodeSteps,
		trackers:     t,
		log:          logrus.StandardLogger(),
	}
}

// Register registers a Tracker with an Experiment so that data
// generated during the experiment can be tracked
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// SetLogger sets the logger episode summaries are written to
func (o *Online) SetLogger(l logrus.FieldLogger) {
	o.log = l
}

// SetProgressBar sets a progress bar which is advanced and redrawn
// after every episode
func (o *Online) SetProgressBar(p *progressbar.ManualProgressBar) {
	o.progress = p
}

// Episodes returns the number of episodes run so far
func (o *Online) Episodes() int {
	return o.currentEpisode
}

// RunEpisode runs a single episode of the experiment
func (o *Online) RunEpisode() (bool, error) {
	if o.currentEpisode >= o.episodes {
		return true, nil
	}

	step := o.Environment.Reset()
	if err := o.Agent.ObserveFirst(step); err != nil {
		return false, fmt.Errorf("runEpisode: %w", err)
	}
	track(o.trackers, step)

	// Run the next timestep
	for !step.Last() {
		// Select action, step in environment
		action, err := o.Agent.SelectAction(step.Observation)
		if err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}
		step, err = o.Environment.Step(step, action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}
		if o.episodeSteps > 0 && step.Number >= o.episodeSteps &&
			!step.Last() {
			step.SetEnd(ts.Cutoff)
		}

		track(o.trackers, step)

		// Observe the timestep and step the agent
		if err := o.Agent.Observe(action, step); err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}
		if err := o.Agent.Step(); err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}
	}

	o.currentEpisode++
	o.log.WithFields(logrus.Fields{
		"episode": o.currentEpisode,
		"steps":   step.Number,
		"end":     step.EndType,
	}).Debug("episode finished")

	if o.progress != nil {
		o.progress.Increment()
		o.progress.Display()
	}

	// Return whether or not the episode limit has been reached
	return o.currentEpisode >= o.episodes, nil
}

// Run runs the entire experiment for all episodes
func (o *Online) Run() error {
	for {
		ended, err := o.RunEpisode()
		if err != nil {
			return fmt.Errorf("run: episode %d: %w", o.currentEpisode+1, err)
		}
		if ended {
			return nil
		}
	}
}
