package robot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecNew(t *testing.T) {
	spec := DefaultSpec()
	tr := spec.New(4, nil)

	assert.Equal(t, 4, tr.ID)
	assert.Equal(t, "tinyRobot4", tr.RobotName)
	assert.Equal(t, "tinyRobot", tr.FleetName)
	assert.Equal(t, "circle", tr.Shape)
	assert.Equal(t, 0.3, tr.Dimensions)
	assert.NotNil(t, tr.Segments)
}

func TestSetConflictGroup(t *testing.T) {
	spec := DefaultSpec()

	t.Run("not conflicting", func(t *testing.T) {
		ts := NewSet()
		ts.Add(spec.New(0, nil), false)
		ts.Add(spec.New(1, nil), false)
		assert.Equal(t, [][]int{{}}, ts.Conflicts)
		assert.Equal(t, [][]string{{}}, ts.ConflictingRobotName)
		assert.Len(t, ts.Trajectories, 2)
	})

	t.Run("conflicting", func(t *testing.T) {
		ts := NewSet()
		for i := 0; i < 3; i++ {
			ts.Add(spec.New(i, nil), true)
		}
		assert.Equal(t, [][]int{{0, 1, 2}}, ts.Conflicts)
		assert.Equal(t, [][]string{{"tinyRobot0", "tinyRobot1", "tinyRobot2"}}, ts.ConflictingRobotName)
	})
}

func TestEmptySetEncoding(t *testing.T) {
	data, err := json.Marshal(NewSet())
	require.NoError(t, err)
	assert.Equal(t, `{"conflicts":[[]],"trajectories":[],"conflictingRobotName":[[]]}`, string(data))
}

func TestTrajectoryKeyOrder(t *testing.T) {
	data, err := json.Marshal(DefaultSpec().New(0, nil))
	require.NoError(t, err)
	assert.Equal(t,
		`{"dimensions":0.3,"fleet_name":"tinyRobot","id":0,"robot_name":"tinyRobot0","segments":[],"shape":"circle"}`,
		string(data))
}
