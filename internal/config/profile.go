// Package config loads optional generation profiles that override the built-in
// fixture defaults.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cxd309/trajgen/internal/engine"
	"github.com/cxd309/trajgen/internal/fixture"
	"github.com/cxd309/trajgen/internal/kinematics"
	"github.com/cxd309/trajgen/internal/robot"
)

// ErrInvalidProfile is returned for profile files that cannot be used.
var ErrInvalidProfile = errors.New("invalid profile")

const maxProfileSize = 1 * 1024 * 1024 // 1MB

// Profile overrides generation defaults. Omitted fields keep their defaults, so
// partial profiles are safe. Unknown fields are rejected.
//
// The turn rate is not configurable: every turn must be a quarter turn over the
// engine's turn steps for the direction table to hold.
type Profile struct {
	// Fleet
	FleetName   *string  `json:"fleet_name,omitempty"`
	RobotPrefix *string  `json:"robot_prefix,omitempty"`
	Shape       *string  `json:"shape,omitempty"`
	Dimensions  *float64 `json:"dimensions,omitempty"`

	// Motion
	Turns       *int     `json:"turns,omitempty"`
	LinearSpeed *float64 `json:"linear_speed,omitempty"`
	IntervalMs  *int64   `json:"interval_ms,omitempty"`
	StartTimeMs *int64   `json:"start_time_ms,omitempty"`

	// Output
	Output *string `json:"output,omitempty"`
}

// Settings is a fully resolved generation setup.
type Settings struct {
	Engine engine.Config
	Model  kinematics.ConstantRate
	Robot  robot.Spec
	Output string
}

// Defaults returns the settings used when no profile is given.
func Defaults() Settings {
	return Settings{
		Engine: engine.DefaultConfig(),
		Model:  engine.DefaultModel(),
		Robot:  robot.DefaultSpec(),
		Output: fixture.DefaultPath,
	}
}

// Load reads a Profile from a JSON file. The file must have a .json extension and
// be at most 1MB.
func Load(path string) (*Profile, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("%w: profile must have .json extension, got %q", ErrInvalidProfile, ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat profile: %w", err)
	}
	if info.Size() > maxProfileSize {
		return nil, fmt.Errorf("%w: profile too large: %d bytes (max %d)", ErrInvalidProfile, info.Size(), maxProfileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate rejects values that would stall or reverse the generator.
func (p *Profile) Validate() error {
	if p.Turns != nil && *p.Turns < 0 {
		return fmt.Errorf("%w: turns must be >= 0, got %d", ErrInvalidProfile, *p.Turns)
	}
	if p.IntervalMs != nil && *p.IntervalMs <= 0 {
		return fmt.Errorf("%w: interval_ms must be > 0, got %d", ErrInvalidProfile, *p.IntervalMs)
	}
	if p.LinearSpeed != nil && *p.LinearSpeed <= 0 {
		return fmt.Errorf("%w: linear_speed must be > 0, got %g", ErrInvalidProfile, *p.LinearSpeed)
	}
	if p.Dimensions != nil && *p.Dimensions <= 0 {
		return fmt.Errorf("%w: dimensions must be > 0, got %g", ErrInvalidProfile, *p.Dimensions)
	}
	return nil
}

// Apply returns s with every field set in p overridden. A nil profile returns s.
func (p *Profile) Apply(s Settings) Settings {
	if p == nil {
		return s
	}
	if p.FleetName != nil {
		s.Robot.FleetName = *p.FleetName
	}
	if p.RobotPrefix != nil {
		s.Robot.Prefix = *p.RobotPrefix
	}
	if p.Shape != nil {
		s.Robot.Shape = *p.Shape
	}
	if p.Dimensions != nil {
		s.Robot.Dimensions = *p.Dimensions
	}
	if p.Turns != nil {
		s.Engine.Turns = *p.Turns
	}
	if p.LinearSpeed != nil {
		s.Model.Speed = *p.LinearSpeed
	}
	if p.IntervalMs != nil {
		s.Engine.IntervalMs = *p.IntervalMs
	}
	if p.StartTimeMs != nil {
		s.Engine.StartTimeMs = *p.StartTimeMs
	}
	if p.Output != nil {
		s.Output = *p.Output
	}
	return s
}
