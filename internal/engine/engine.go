// Package engine synthesizes robot trajectories.
//
// A trajectory is built from two kinds of knots:
//
//  1. Straight knots - the robot cruises along one axis; each step advances the
//     position by velocity * interval.
//
//  2. Turn knots - the robot stops, rotates in place by one angular step per knot,
//     and stops again. Each turn is a quarter turn and changes the travel axis.
//
// Every emitted knot is followed by exactly one interval, so timestamps form an
// unbroken cadence from the start time.
package engine

import (
	"fmt"

	"github.com/cxd309/trajgen/internal/kinematics"
	"github.com/cxd309/trajgen/internal/robot"
	"github.com/cxd309/trajgen/internal/sampler"
)

// Synthesizer produces the knot sequence of a single trajectory.
type Synthesizer struct {
	cfg   Config
	model kinematics.MotionModel
	rng   *sampler.Sampler
}

// NewSynthesizer returns a Synthesizer drawing run lengths and turn directions from rng.
func NewSynthesizer(cfg Config, model kinematics.MotionModel, rng *sampler.Sampler) *Synthesizer {
	return &Synthesizer{cfg: cfg, model: model, rng: rng}
}

// cursor is the moving state of a trajectory under construction.
type cursor struct {
	t     int64
	pose  kinematics.Pose
	vel   kinematics.Velocity
	dir   kinematics.Direction
	knots []robot.Knot
}

// emit records a knot at the current time and pose, then advances the clock.
func (s *Synthesizer) emit(c *cursor, v kinematics.Velocity) {
	c.knots = append(c.knots, robot.Knot{T: c.t, V: v, X: c.pose})
	c.t += s.cfg.IntervalMs
}

// Segment synthesizes the full knot sequence starting at start and travelling in dir.
// The result holds Turns+1 straight runs separated by Turns turn manoeuvres.
func (s *Synthesizer) Segment(start kinematics.Pose, dir kinematics.Direction) ([]robot.Knot, error) {
	c := &cursor{
		t:    s.cfg.StartTimeMs,
		pose: start,
		vel:  s.model.Cruise(dir, start.Theta),
		dir:  dir,
	}

	for remaining := s.cfg.Turns; remaining > -1; remaining-- {
		s.straight(c)
		if remaining > 0 {
			if err := s.turn(c); err != nil {
				return nil, fmt.Errorf("turn at t=%d: %w", c.t, err)
			}
		}
	}
	return c.knots, nil
}

// straight emits one straight run of a sampled length.
func (s *Synthesizer) straight(c *cursor) {
	n := s.rng.Int(s.cfg.RunKnots.Min, s.cfg.RunKnots.Max)
	for i := 0; i < n; i++ {
		s.emit(c, c.vel)
		c.pose = s.model.Advance(c.pose, c.vel, c.dir, s.cfg.interval())
	}
}

// turn emits a stop, TurnSteps rotating knots and a final stop, then points the
// cursor along the new axis. A sampled 0 turns with a positive rate, 1 with a
// negative rate.
func (s *Synthesizer) turn(c *cursor) error {
	rate := s.model.TurnRate()
	if s.rng.Bit() == 1 {
		rate = -rate
	}

	s.emit(c, kinematics.Spin(rate))
	for i := 0; i < s.cfg.TurnSteps; i++ {
		c.pose.Theta = s.model.Rotate(c.pose.Theta, rate)
		s.emit(c, kinematics.Spin(rate))
	}
	s.emit(c, kinematics.Velocity{})

	next, err := c.dir.Turn(rate)
	if err != nil {
		return err
	}
	c.dir = next
	// Straight travel after a turn never carries heading into the angular rate.
	c.vel = s.model.Cruise(next, 0.0)
	return nil
}
