package kinematics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Default rates used by the storybook fixtures.
const (
	DefaultLinearSpeed = 0.5            // m/s
	DefaultTurnRate    = 0.25 * math.Pi // rad per turn step
)

// ConstantRate implements MotionModel with a fixed cruising speed and a fixed
// angular step. This is the default and only model.
type ConstantRate struct {
	Speed float64 `json:"speed"`     // m/s
	Rate  float64 `json:"turn_rate"` // rad applied per turn step
}

func (c ConstantRate) LinearSpeed() float64 { return c.Speed }

func (c ConstantRate) TurnRate() float64 { return c.Rate }

// Cruise builds the straight-travel velocity for dir: the linear speed signed by
// dir on dir's axis. The up and right branches carry theta into the angular
// component; down and left always report 0.0.
func (c ConstantRate) Cruise(dir Direction, theta float64) Velocity {
	var v Velocity
	speed := dir.Sign() * c.LinearSpeed()
	if dir.Axis() == AxisX {
		v.VX = speed
	} else {
		v.VY = speed
	}

	switch dir {
	case Up, Right:
		v.VTheta = theta
	case Down, Left:
		v.VTheta = 0.0
	}
	return v
}

func (c ConstantRate) Advance(p Pose, v Velocity, dir Direction, dt float64) Pose {
	axis := dir.Axis()
	var step r2.Vec
	if axis == AxisX {
		step = r2.Vec{X: v.Component(axis)}
	} else {
		step = r2.Vec{Y: v.Component(axis)}
	}
	pos := r2.Add(p.Position(), r2.Scale(dt, step))
	return Pose{X: pos.X, Y: pos.Y, Theta: p.Theta}
}

func (c ConstantRate) Rotate(theta, rate float64) float64 {
	return WrapTheta(theta + rate)
}
