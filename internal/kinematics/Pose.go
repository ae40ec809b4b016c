package kinematics

import (
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Pose is the planar position and heading of a robot. Theta is in radians.
// It is encoded as the [x, y, theta] tuple the fleet server emits.
type Pose struct {
	X     float64
	Y     float64
	Theta float64
}

// Position returns the pose's location as a vector.
func (p Pose) Position() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// MarshalJSON encodes p as [x, y, theta].
func (p Pose) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Theta})
}

// UnmarshalJSON decodes a [x, y, theta] tuple.
func (p *Pose) UnmarshalJSON(data []byte) error {
	var raw [3]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pose: %w", err)
	}
	p.X, p.Y, p.Theta = raw[0], raw[1], raw[2]
	return nil
}

// Velocity holds instantaneous linear and angular rates, encoded as [vx, vy, vtheta].
type Velocity struct {
	VX     float64
	VY     float64
	VTheta float64
}

// Component returns the linear component along axis.
func (v Velocity) Component(a Axis) float64 {
	if a == AxisX {
		return v.VX
	}
	return v.VY
}

// Spin returns a velocity with no translation and the given angular rate.
func Spin(rate float64) Velocity { return Velocity{VTheta: rate} }

// MarshalJSON encodes v as [vx, vy, vtheta].
func (v Velocity) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.VX, v.VY, v.VTheta})
}

// UnmarshalJSON decodes a [vx, vy, vtheta] tuple.
func (v *Velocity) UnmarshalJSON(data []byte) error {
	var raw [3]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("velocity: %w", err)
	}
	v.VX, v.VY, v.VTheta = raw[0], raw[1], raw[2]
	return nil
}

// Axis selects which linear component is active during straight travel.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
)

// Direction is the axis-aligned heading of a straight run.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Axis returns AxisX for left/right and AxisY for up/down.
func (d Direction) Axis() Axis {
	switch d {
	case Left, Right:
		return AxisX
	default:
		return AxisY
	}
}

// Sign is +1 for up/right and -1 for down/left.
func (d Direction) Sign() float64 {
	switch d {
	case Down, Left:
		return -1
	default:
		return 1
	}
}

type turnKey struct {
	from     Direction
	positive bool
}

// turnTable maps a heading and the sign of the angular rate to the heading after
// a quarter turn.
var turnTable = map[turnKey]Direction{
	{Up, true}:     Right,
	{Up, false}:    Left,
	{Down, true}:   Right,
	{Down, false}:  Left,
	{Right, true}:  Up,
	{Right, false}: Down,
	{Left, true}:   Up,
	{Left, false}:  Down,
}

// Turn returns the direction reached by turning from d with the given angular rate.
// A zero rate counts as negative.
func (d Direction) Turn(rate float64) (Direction, error) {
	next, ok := turnTable[turnKey{from: d, positive: rate > 0}]
	if !ok {
		return "", fmt.Errorf("unknown direction %q", d)
	}
	return next, nil
}

// WrapTheta folds an angle that has stepped past ±π back through the opposite
// boundary. Angles above π map to -π + (a - π); angles below -π map to π - (a + π).
// The lower branch mirrors rather than shifts, so its result can exceed π; for
// example -3.0 - π/4 maps to 3.0 + π/4.
func WrapTheta(a float64) float64 {
	switch {
	case a > math.Pi:
		return -math.Pi + (a - math.Pi)
	case a < -math.Pi:
		return math.Pi - (a + math.Pi)
	default:
		return a
	}
}
