package engine

import (
	"encoding/json"
	"fmt"

	"github.com/cxd309/trajgen/internal/kinematics"
	"github.com/cxd309/trajgen/internal/robot"
	"github.com/cxd309/trajgen/internal/sampler"
)

// Generator assembles a TrajectorySet from independently synthesized trajectories.
type Generator struct {
	cfg   Config
	spec  robot.Spec
	rng   *sampler.Sampler
	synth *Synthesizer
}

// NewGenerator returns a Generator. The same sampler drives start poses and
// segment synthesis so that a seeded sampler reproduces the whole set.
func NewGenerator(cfg Config, spec robot.Spec, model kinematics.MotionModel, rng *sampler.Sampler) *Generator {
	return &Generator{
		cfg:   cfg,
		spec:  spec,
		rng:   rng,
		synth: NewSynthesizer(cfg, model, rng),
	}
}

// DefaultModel returns the motion model used by the storybook fixtures.
func DefaultModel() kinematics.ConstantRate {
	return kinematics.ConstantRate{Speed: kinematics.DefaultLinearSpeed, Rate: kinematics.DefaultTurnRate}
}

// Run generates count trajectories with ids 0..count-1. When conflict is true all
// of them form the single conflict group. A count below 1 yields an empty set.
func (g *Generator) Run(count int, conflict bool) (robot.TrajectorySet, error) {
	set := robot.NewSet()
	for id := 0; id < count; id++ {
		tr, err := g.trajectory(id)
		if err != nil {
			return robot.TrajectorySet{}, fmt.Errorf("trajectory %d: %w", id, err)
		}
		set.Add(tr, conflict)
	}
	return set, nil
}

func (g *Generator) trajectory(id int) (robot.Trajectory, error) {
	x := g.rng.Int(g.cfg.StartX.Min, g.cfg.StartX.Max)
	y := g.rng.Int(g.cfg.StartY.Min, g.cfg.StartY.Max)
	sel := g.rng.Int(1, len(startConfigs))
	sc, ok := startConfigs[sel]
	if !ok {
		return robot.Trajectory{}, fmt.Errorf("unknown start configuration %d", sel)
	}

	start := kinematics.Pose{X: float64(x), Y: float64(y), Theta: sc.Theta}
	knots, err := g.synth.Segment(start, sc.Direction)
	if err != nil {
		return robot.Trajectory{}, err
	}
	return g.spec.New(id, knots), nil
}

// Generate runs req with the default fleet and motion parameters.
func Generate(req Request) (robot.TrajectorySet, error) {
	gen := NewGenerator(DefaultConfig(), robot.DefaultSpec(), DefaultModel(), sampler.New(req.Seed))
	return gen.Run(req.Count, req.Conflict)
}

// ParseRequest decodes a JSON-encoded Request.
func ParseRequest(jsonInput string) (Request, error) {
	var req Request
	if err := json.Unmarshal([]byte(jsonInput), &req); err != nil {
		return Request{}, fmt.Errorf("invalid input JSON: %w", err)
	}
	return req, nil
}

// RunJSON is the entry point for the WASM build. It accepts a JSON-encoded
// Request and returns the JSON-encoded TrajectorySet.
func RunJSON(jsonInput string) (string, error) {
	req, err := ParseRequest(jsonInput)
	if err != nil {
		return "", err
	}

	set, err := Generate(req)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(set)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}
