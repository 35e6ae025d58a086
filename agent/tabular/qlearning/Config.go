package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/frozenlake/utils/progressbar"
	"github.com/sirupsen/logrus"
)

// Defaults for Q-learning. Learning rate and exploration stay fixed for
// the whole run; with this few episodes the learned values only
// approximate the optimal ones.
const (
	DefaultEpsilon      float64 = 0.5
	DefaultLearningRate float64 = 0.5
	DefaultEpisodes     int     = 10
)

// Config represents a configuration for the QLearning agent
type Config struct {
	Epsilon      float64 // epsilon for behaviour policy
	LearningRate float64
	Episodes     int

	// MaxEpisodeSteps cuts episodes off after this many steps. 0 means
	// episodes only end in terminal cells.
	MaxEpisodeSteps int

	Logger logrus.FieldLogger `json:"-"`

	// Progress, if set, is advanced after every episode
	Progress *progressbar.ManualProgressBar `json:"-"`
}

// DefaultConfig returns the default Q-learning Config
func DefaultConfig() Config {
	return Config{
		Epsilon:      DefaultEpsilon,
		LearningRate: DefaultLearningRate,
		Episodes:     DefaultEpisodes,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !(c.Epsilon >= 0 && c.Epsilon <= 1) {
		return fmt.Errorf("epsilon %v not in [0, 1]", c.Epsilon)
	}
	if !(c.LearningRate > 0 && c.LearningRate <= 1) {
		return fmt.Errorf("learning rate %v not in (0, 1]", c.LearningRate)
	}
	if c.Episodes < 0 {
		return fmt.Errorf("episodes %d cannot be negative", c.Episodes)
	}
	if c.MaxEpisodeSteps < 0 {
		return fmt.Errorf("max episode steps %d cannot be negative",
			c.MaxEpisodeSteps)
	}
	return nil
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}
