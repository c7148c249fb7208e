package core

import "math/rand/v2"

// Rand is the source of random integers consumed by the simulations. Tests
// substitute scripted implementations to pin the draw sequence.
type Rand interface {
	// IntRange returns an integer in [lo, hi], both ends inclusive.
	IntRange(lo, hi int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	src := rand.NewPCG(uint64(seed), 0)
	return &RNG{src: src, r: rand.New(src)}
}

// Seed restarts the stream from the provided seed.
func (r *RNG) Seed(seed int64) {
	r.src.Seed(uint64(seed), 0)
}

// IntRange returns a uniformly distributed integer in [lo, hi]. When hi < lo
// it returns lo.
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
