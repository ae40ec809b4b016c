package engine

import (
	"github.com/cxd309/trajgen/internal/kinematics"
)

// Canonical starting headings. Horizontal starts (right, left) use
// HorizontalTheta; vertical starts (up, down) use VerticalTheta.
const (
	HorizontalTheta = -3.1376738367181622
	VerticalTheta   = -1.5643726408832297
)

// StartConfig is the initial heading of a trajectory.
type StartConfig struct {
	Direction kinematics.Direction
	Theta     float64
}

// startConfigs is keyed by the sampled selector in [1, 4].
var startConfigs = map[int]StartConfig{
	1: {Direction: kinematics.Right, Theta: HorizontalTheta},
	2: {Direction: kinematics.Left, Theta: HorizontalTheta},
	3: {Direction: kinematics.Up, Theta: VerticalTheta},
	4: {Direction: kinematics.Down, Theta: VerticalTheta},
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Config holds the timing and sampling parameters of segment synthesis.
type Config struct {
	Turns       int   `json:"turns"`         // quarter turns per trajectory; Turns+1 straight runs
	TurnSteps   int   `json:"turn_steps"`    // rotating knots per turn
	IntervalMs  int64 `json:"interval_ms"`   // sample cadence
	StartTimeMs int64 `json:"start_time_ms"` // timestamp of the first knot
	RunKnots    Range `json:"run_knots"`     // knots per straight run
	StartX      Range `json:"start_x"`
	StartY      Range `json:"start_y"`
}

// DefaultConfig returns the parameters used by the storybook fixtures.
func DefaultConfig() Config {
	return Config{
		Turns:       2,
		TurnSteps:   2,
		IntervalMs:  500,
		StartTimeMs: 2000,
		RunKnots:    Range{Min: 8, Max: 10},
		StartX:      Range{Min: 5, Max: 20},
		StartY:      Range{Min: -11, Max: -7},
	}
}

// interval returns the sample cadence in seconds.
func (c Config) interval() float64 {
	return float64(c.IntervalMs) / 1000
}

// Request is the JSON-serialisable input to RunJSON.
type Request struct {
	Conflict bool    `json:"conflict"`
	Count    int     `json:"count"`
	Seed     *uint64 `json:"seed,omitempty"`
}
