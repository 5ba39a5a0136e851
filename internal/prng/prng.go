// Package prng implements the seeded generator behind the price simulation.
//
// Reproducibility is the whole point: a run is identified by its seed, and
// replaying a seed must give the same draw sequence bit for bit. Do not
// swap the recurrence or the Box-Muller branch without versioning runs.
package prng

import "math"

// Linear congruential parameters (Numerical Recipes).
const (
	multiplier = 1664525
	increment  = 1013904223
	modulus    = 1 << 32
)

// Source is a deterministic random source. It is not safe for concurrent
// use; every draw depends on the one before it.
type Source struct {
	state uint64
}

// New returns a Source seeded directly, with no hashing or mixing; the
// seed is only reduced mod 2^32, the generator's modulus. Two Sources
// built from the same seed produce identical sequences.
func New(seed uint64) *Source {
	return &Source{state: seed % modulus}
}

// Uniform advances the state and returns a value in [0, 1).
func (s *Source) Uniform() float64 {
	s.state = (multiplier*s.state + increment) % modulus
	return float64(s.state) / modulus
}

// Normal returns a standard normal deviate via the cosine branch of the
// Box-Muller transform. It consumes exactly two Uniform draws, re-drawing
// whenever one is exactly zero so the logarithm stays finite. The sine
// branch is deliberately discarded: reusing it would halve the uniform
// consumption and break replay of existing runs.
func (s *Source) Normal() float64 {
	u := s.Uniform()
	for u == 0 {
		u = s.Uniform()
	}
	v := s.Uniform()
	for v == 0 {
		v = s.Uniform()
	}
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}
