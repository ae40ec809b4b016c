// Package sampler produces the bounded random integers that drive trajectory
// synthesis: start positions, start configurations, straight-run lengths and
// turn directions.
package sampler

import (
	"math/rand/v2"
	"time"
)

// Sampler draws uniformly distributed integers from a per-instance source.
// It is not safe for concurrent use.
type Sampler struct {
	rand *rand.Rand
}

// New returns a Sampler. A nil seed draws one from the wall clock, so two
// unseeded runs produce different fixtures; a fixed seed reproduces a run.
func New(seed *uint64) *Sampler {
	var s uint64
	if seed != nil {
		s = *seed
	} else {
		s = uint64(time.Now().UnixNano())
	}
	return &Sampler{rand: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// Int returns a uniformly distributed integer in [min, max], both ends
// included. Calling it with min > max panics.
func (s *Sampler) Int(min, max int) int {
	return min + s.rand.IntN(max-min+1)
}

// Bit returns 0 or 1 with equal probability.
func (s *Sampler) Bit() int {
	return s.Int(0, 1)
}
