package frozenlake

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/samuelfneumann/frozenlake/environment"
)

// Default physical parameters of a frozen lake
const (
	DefaultDiscount     float64 = 0.9
	DefaultSuccessProb  float64 = 0.8
	DefaultHazardReward float64 = -5.0
	DefaultGoalReward   float64 = 1.0
	DefaultLivingReward float64 = -0.1
)

// Params holds the numeric parameters of a frozen lake
type Params struct {
	Discount     float64 `json:"discount" mapstructure:"discount"`
	SuccessProb  float64 `json:"successProb" mapstructure:"successProb"`
	HazardReward float64 `json:"hazardReward" mapstructure:"hazardReward"`
	GoalReward   float64 `json:"goalReward" mapstructure:"goalReward"`
	LivingReward float64 `json:"livingReward" mapstructure:"livingReward"`
}

// DefaultParams returns the default frozen lake parameters
func DefaultParams() Params {
	return Params{
		Discount:     DefaultDiscount,
		SuccessProb:  DefaultSuccessProb,
		HazardReward: DefaultHazardReward,
		GoalReward:   DefaultGoalReward,
		LivingReward: DefaultLivingReward,
	}
}

// Config describes a frozen lake. Config is JSON serializable.
type Config struct {
	Width   int                      `json:"width" mapstructure:"width"`
	Height  int                      `json:"height" mapstructure:"height"`
	Start   environment.Coordinate   `json:"start" mapstructure:"start"`
	Goals   []environment.Coordinate `json:"goals" mapstructure:"goals"`
	Hazards []environment.Coordinate `json:"hazards" mapstructure:"hazards"`
	Blocked []environment.Coordinate `json:"blocked" mapstructure:"blocked"`
	Params  `json:"params" mapstructure:"params"`
}

// NewConfig returns a Config with the default parameters
func NewConfig(width, height int, start environment.Coordinate, goals,
	blocked, hazards []environment.Coordinate) Config {
	return Config{
		Width:   width,
		Height:  height,
		Start:   start,
		Goals:   goals,
		Hazards: hazards,
		Blocked: blocked,
		Params:  DefaultParams(),
	}
}

// Validate ensures that the Config describes a well-formed lake. All
// problems found are reported together, wrapped in
// environment.ErrInvalidConfig.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Width <= 0 || c.Height <= 0 {
		result = multierror.Append(result, fmt.Errorf("dimensions (%d, %d) "+
			"must be positive", c.Width, c.Height))
	}
	if !(c.SuccessProb >= 0 && c.SuccessProb <= 1) {
		result = multierror.Append(result, fmt.Errorf("success probability "+
			"%v not in [0, 1]", c.SuccessProb))
	}
	if !(c.Discount >= 0 && c.Discount <= 1) {
		result = multierror.Append(result, fmt.Errorf("discount %v not in "+
			"[0, 1]", c.Discount))
	}

	// A cell may be claimed by at most one of the sets
	owner := make(map[environment.Coordinate]string)
	claim := func(name string, cells []environment.Coordinate) {
		for _, cell := range cells {
			if c.Width > 0 && c.Height > 0 && !cell.In(c.Width, c.Height) {
				result = multierror.Append(result, fmt.Errorf("%s cell %v "+
					"out of bounds", name, cell))
				continue
			}
			if prev, ok := owner[cell]; ok && prev != name {
				result = multierror.Append(result, fmt.Errorf("%s cell %v "+
					"overlaps %s cell", name, cell, prev))
				continue
			}
			owner[cell] = name
		}
	}
	claim("goal", c.Goals)
	claim("hazard", c.Hazards)
	claim("blocked", c.Blocked)

	if c.Width > 0 && c.Height > 0 && !c.Start.In(c.Width, c.Height) {
		result = multierror.Append(result, fmt.Errorf("start %v out of "+
			"bounds", c.Start))
	} else if owner[c.Start] == "blocked" {
		result = multierror.Append(result, fmt.Errorf("start %v is blocked",
			c.Start))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", environment.ErrInvalidConfig, err)
	}
	return nil
}
