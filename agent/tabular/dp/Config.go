package dp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Defaults for value iteration
const (
	DefaultThreshold float64 = 0.001
	DefaultMaxSweeps int     = 10_000
)

// Config represents a configuration for value iteration
type Config struct {
	// Threshold is the largest per-sweep change in any state value at
	// which iteration stops
	Threshold float64

	// MaxSweeps caps the number of sweeps. Reaching the cap returns
	// ErrNotConverged.
	MaxSweeps int

	// Workers is the number of goroutines each sweep's backups are
	// split over. Values of 0 and 1 run sweeps sequentially.
	Workers int

	Logger logrus.FieldLogger `json:"-"`
}

// DefaultConfig returns the default value iteration Config
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		MaxSweeps: DefaultMaxSweeps,
		Workers:   1,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !(c.Threshold > 0) {
		return fmt.Errorf("threshold %v must be positive", c.Threshold)
	}
	if c.MaxSweeps <= 0 {
		return fmt.Errorf("max sweeps %v must be positive", c.MaxSweeps)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %v cannot be negative", c.Workers)
	}
	return nil
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}
