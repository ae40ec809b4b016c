package engine

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/trajgen/internal/kinematics"
	"github.com/cxd309/trajgen/internal/robot"
	"github.com/cxd309/trajgen/internal/sampler"
)

func seeded(seed uint64) *sampler.Sampler {
	return sampler.New(&seed)
}

func isStraight(k robot.Knot) bool {
	return k.V.VX != 0 || k.V.VY != 0
}

// runs splits knots into maximal groups of straight knots and turn knots.
func runs(knots []robot.Knot) (straight, turns [][]robot.Knot) {
	for i := 0; i < len(knots); {
		j := i
		for j < len(knots) && isStraight(knots[j]) == isStraight(knots[i]) {
			j++
		}
		if isStraight(knots[i]) {
			straight = append(straight, knots[i:j])
		} else {
			turns = append(turns, knots[i:j])
		}
		i = j
	}
	return straight, turns
}

func TestSegmentStructure(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		synth := NewSynthesizer(DefaultConfig(), DefaultModel(), seeded(seed))
		for _, sc := range startConfigs {
			knots, err := synth.Segment(kinematics.Pose{X: 10, Y: -9, Theta: sc.Theta}, sc.Direction)
			require.NoError(t, err)

			straight, turns := runs(knots)
			require.Len(t, straight, 3, "seed %d", seed)
			require.Len(t, turns, 2, "seed %d", seed)

			total := 0
			for _, r := range straight {
				require.GreaterOrEqual(t, len(r), 8)
				require.LessOrEqual(t, len(r), 10)
				total += len(r)
			}
			for _, r := range turns {
				require.Len(t, r, 4)
				total += len(r)
			}
			assert.Equal(t, total, len(knots))
			assert.True(t, isStraight(knots[0]))
			assert.True(t, isStraight(knots[len(knots)-1]))
		}
	}
}

func TestSegmentTimestamps(t *testing.T) {
	synth := NewSynthesizer(DefaultConfig(), DefaultModel(), seeded(3))
	knots, err := synth.Segment(kinematics.Pose{X: 5, Y: -11, Theta: VerticalTheta}, kinematics.Up)
	require.NoError(t, err)
	require.NotEmpty(t, knots)

	assert.Equal(t, int64(2000), knots[0].T)
	for i := 1; i < len(knots); i++ {
		require.Equal(t, knots[i-1].T+500, knots[i].T, "knot %d", i)
	}
}

func TestTurnManoeuvre(t *testing.T) {
	synth := NewSynthesizer(DefaultConfig(), DefaultModel(), seeded(11))
	start := kinematics.Pose{X: 12, Y: -8, Theta: HorizontalTheta}
	knots, err := synth.Segment(start, kinematics.Right)
	require.NoError(t, err)

	_, turns := runs(knots)
	for _, turn := range turns {
		rate := turn[0].V.VTheta
		require.InDelta(t, kinematics.DefaultTurnRate, abs(rate), 1e-12)

		assert.Equal(t, kinematics.Spin(rate), turn[0].V)
		assert.Equal(t, kinematics.Spin(rate), turn[1].V)
		assert.Equal(t, kinematics.Spin(rate), turn[2].V)
		assert.Equal(t, kinematics.Velocity{}, turn[3].V)

		// Position is fixed while rotating; heading steps once per rotating knot.
		for _, k := range turn {
			assert.Equal(t, turn[0].X.X, k.X.X)
			assert.Equal(t, turn[0].X.Y, k.X.Y)
		}
		assert.Equal(t, kinematics.WrapTheta(turn[0].X.Theta+rate), turn[1].X.Theta)
		assert.Equal(t, kinematics.WrapTheta(turn[1].X.Theta+rate), turn[2].X.Theta)
		assert.Equal(t, turn[2].X.Theta, turn[3].X.Theta)
	}
}

func TestStraightRunsAlternateAxis(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		synth := NewSynthesizer(DefaultConfig(), DefaultModel(), seeded(seed))
		knots, err := synth.Segment(kinematics.Pose{X: 7, Y: -10, Theta: VerticalTheta}, kinematics.Down)
		require.NoError(t, err)

		straight, _ := runs(knots)
		for i, r := range straight {
			horizontal := i%2 == 1
			for j, k := range r {
				if horizontal {
					require.Zero(t, k.V.VY)
					require.InDelta(t, 0.5, abs(k.V.VX), 1e-12)
				} else {
					require.Zero(t, k.V.VX)
					require.InDelta(t, 0.5, abs(k.V.VY), 1e-12)
				}
				if j == 0 {
					continue
				}
				prev := r[j-1]
				if horizontal {
					assert.Equal(t, prev.X.X+prev.V.VX*0.5, k.X.X)
					assert.Equal(t, prev.X.Y, k.X.Y)
				} else {
					assert.Equal(t, prev.X.Y+prev.V.VY*0.5, k.X.Y)
					assert.Equal(t, prev.X.X, k.X.X)
				}
			}
		}
	}
}

func TestInitialVelocityCarriesThetaForUpAndRight(t *testing.T) {
	tests := []struct {
		dir      kinematics.Direction
		theta    float64
		expected kinematics.Velocity
	}{
		{kinematics.Up, VerticalTheta, kinematics.Velocity{VY: 0.5, VTheta: VerticalTheta}},
		{kinematics.Right, HorizontalTheta, kinematics.Velocity{VX: 0.5, VTheta: HorizontalTheta}},
		{kinematics.Down, VerticalTheta, kinematics.Velocity{VY: -0.5}},
		{kinematics.Left, HorizontalTheta, kinematics.Velocity{VX: -0.5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			synth := NewSynthesizer(DefaultConfig(), DefaultModel(), seeded(1))
			knots, err := synth.Segment(kinematics.Pose{X: 5, Y: -7, Theta: tt.theta}, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, knots[0].V)

			// After the first turn straight travel has no angular component.
			straight, _ := runs(knots)
			for _, r := range straight[1:] {
				for _, k := range r {
					assert.Zero(t, k.V.VTheta)
				}
			}
		})
	}
}

func TestZeroTurns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Turns = 0
	knots, err := NewSynthesizer(cfg, DefaultModel(), seeded(5)).
		Segment(kinematics.Pose{X: 5, Y: -7, Theta: VerticalTheta}, kinematics.Up)
	require.NoError(t, err)

	straight, turns := runs(knots)
	assert.Len(t, straight, 1)
	assert.Empty(t, turns)
}

func TestGeneratorSingleTrajectory(t *testing.T) {
	gen := NewGenerator(DefaultConfig(), robot.DefaultSpec(), DefaultModel(), seeded(9))
	set, err := gen.Run(1, false)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{}}, set.Conflicts)
	assert.Equal(t, [][]string{{}}, set.ConflictingRobotName)
	require.Len(t, set.Trajectories, 1)

	tr := set.Trajectories[0]
	assert.Equal(t, 0, tr.ID)
	assert.Equal(t, "tinyRobot0", tr.RobotName)
	assert.Equal(t, "tinyRobot", tr.FleetName)
	assert.Equal(t, "circle", tr.Shape)
	assert.Equal(t, 0.3, tr.Dimensions)

	first := tr.Segments[0].X
	assert.GreaterOrEqual(t, first.X, 5.0)
	assert.LessOrEqual(t, first.X, 20.0)
	assert.GreaterOrEqual(t, first.Y, -11.0)
	assert.LessOrEqual(t, first.Y, -7.0)
	assert.Contains(t, []float64{HorizontalTheta, VerticalTheta}, first.Theta)
}

func TestGeneratorConflictGroup(t *testing.T) {
	gen := NewGenerator(DefaultConfig(), robot.DefaultSpec(), DefaultModel(), seeded(10))
	set, err := gen.Run(3, true)
	require.NoError(t, err)

	if diff := cmp.Diff([][]int{{0, 1, 2}}, set.Conflicts); diff != "" {
		t.Errorf("conflicts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"tinyRobot0", "tinyRobot1", "tinyRobot2"}}, set.ConflictingRobotName); diff != "" {
		t.Errorf("conflicting names mismatch (-want +got):\n%s", diff)
	}
	for i, tr := range set.Trajectories {
		assert.Equal(t, i, tr.ID)
	}
}

func TestGeneratorEmpty(t *testing.T) {
	gen := NewGenerator(DefaultConfig(), robot.DefaultSpec(), DefaultModel(), seeded(2))
	for _, n := range []int{0, -3} {
		set, err := gen.Run(n, true)
		require.NoError(t, err)
		assert.Empty(t, set.Trajectories)
		assert.Equal(t, [][]int{{}}, set.Conflicts)
	}
}

func TestGeneratorSeedIsReproducible(t *testing.T) {
	a, err := NewGenerator(DefaultConfig(), robot.DefaultSpec(), DefaultModel(), seeded(77)).Run(4, true)
	require.NoError(t, err)
	b, err := NewGenerator(DefaultConfig(), robot.DefaultSpec(), DefaultModel(), seeded(77)).Run(4, true)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("seeded runs differ (-a +b):\n%s", diff)
	}
}

func TestRunJSON(t *testing.T) {
	out, err := RunJSON(`{"conflict": true, "count": 2, "seed": 4}`)
	require.NoError(t, err)

	var set robot.TrajectorySet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	assert.Equal(t, [][]int{{0, 1}}, set.Conflicts)
	assert.Len(t, set.Trajectories, 2)
	assert.Equal(t, "tinyRobot1", set.Trajectories[1].RobotName)

	_, err = RunJSON(`{"count": "many"}`)
	assert.Error(t, err)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
