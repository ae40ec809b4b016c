// Package robot defines the robot metadata and the trajectory records handed to the
// fixture writer, along with conflict grouping.
package robot

import (
	"strconv"

	"github.com/cxd309/trajgen/internal/kinematics"
)

// Defaults for the storybook fleet.
const (
	DefaultFleetName   = "tinyRobot"
	DefaultRobotPrefix = "tinyRobot"
	DefaultShape       = "circle"
	DefaultDimensions  = 0.3 // footprint radius, metres
)

// Spec holds the static parameters shared by every robot in a generated set.
type Spec struct {
	FleetName  string  `json:"fleet_name"`
	Prefix     string  `json:"robot_prefix"`
	Shape      string  `json:"shape"`
	Dimensions float64 `json:"dimensions"`
}

// DefaultSpec returns the fleet used by the storybook fixtures.
func DefaultSpec() Spec {
	return Spec{
		FleetName:  DefaultFleetName,
		Prefix:     DefaultRobotPrefix,
		Shape:      DefaultShape,
		Dimensions: DefaultDimensions,
	}
}

// Name returns the robot name for trajectory id.
func (s Spec) Name(id int) string {
	return s.Prefix + strconv.Itoa(id)
}

// Knot is one timed sample of a robot's motion.
type Knot struct {
	T int64               `json:"t"` // milliseconds since trajectory start
	V kinematics.Velocity `json:"v"`
	X kinematics.Pose     `json:"x"`
}

// Trajectory is the path of a single robot. Field order matches the key order
// of existing fixtures.
type Trajectory struct {
	Dimensions float64 `json:"dimensions"`
	FleetName  string  `json:"fleet_name"`
	ID         int     `json:"id"`
	RobotName  string  `json:"robot_name"`
	Segments   []Knot  `json:"segments"`
	Shape      string  `json:"shape"`
}

// New wraps a synthesized knot sequence with the fleet metadata for robot id.
func (s Spec) New(id int, segments []Knot) Trajectory {
	if segments == nil {
		segments = []Knot{}
	}
	return Trajectory{
		Dimensions: s.Dimensions,
		FleetName:  s.FleetName,
		ID:         id,
		RobotName:  s.Name(id),
		Segments:   segments,
		Shape:      s.Shape,
	}
}

// TrajectorySet is the complete fixture payload.
//
// Conflicts and ConflictingRobotName always hold exactly one group. The group is
// empty unless every trajectory was flagged as conflicting.
type TrajectorySet struct {
	Conflicts            [][]int      `json:"conflicts"`
	Trajectories         []Trajectory `json:"trajectories"`
	ConflictingRobotName [][]string   `json:"conflictingRobotName"`
}

// NewSet returns an empty set with a single empty conflict group.
func NewSet() TrajectorySet {
	return TrajectorySet{
		Conflicts:            [][]int{{}},
		Trajectories:         []Trajectory{},
		ConflictingRobotName: [][]string{{}},
	}
}

// Add appends tr to the set. When conflicting is true its id and name join the
// conflict group.
func (ts *TrajectorySet) Add(tr Trajectory, conflicting bool) {
	ts.Trajectories = append(ts.Trajectories, tr)
	if conflicting {
		ts.Conflicts[0] = append(ts.Conflicts[0], tr.ID)
		ts.ConflictingRobotName[0] = append(ts.ConflictingRobotName[0], tr.RobotName)
	}
}
