// Package kinematics defines the MotionModel interface that turns a heading and a
// fixed sample interval into planar robot motion, along with built-in implementations.
//
// Motion is restricted to the four axis-aligned directions: a robot travels in a
// straight line along one axis, stops, rotates in place by a quarter turn, and
// continues along the perpendicular axis.
package kinematics

// MotionModel is the contract every kinematics implementation must satisfy.
// Distances are in metres, linear velocities in m/s, and dt in seconds.
type MotionModel interface {
	// LinearSpeed returns the magnitude of straight-line velocity (m/s).
	LinearSpeed() float64

	// TurnRate returns the magnitude of the angular rate applied during a turn.
	TurnRate() float64

	// Cruise returns the velocity for straight travel in dir. theta is carried into
	// the angular component for the up and right directions only.
	Cruise(dir Direction, theta float64) Velocity

	// Advance moves p along dir's axis for dt seconds at velocity v.
	// Heading and the other axis are unchanged.
	Advance(p Pose, v Velocity, dir Direction, dt float64) Pose

	// Rotate applies one turn step of rate to the heading and returns the wrapped result.
	Rotate(theta, rate float64) float64
}
