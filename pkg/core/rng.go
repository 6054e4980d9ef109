package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Derive returns the RNG for one numbered stream under seed. Streams are
// independent of each other and of NewRNG(seed), so work split across
// goroutines stays reproducible whatever order it runs in.
func Derive(seed int64, stream int) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), uint64(stream)+1))}
}

// Pick returns a uniformly chosen element of values, or -1 when values is empty.
func Pick(r *rand.Rand, values []int) int {
	if len(values) == 0 {
		return -1
	}
	return values[r.IntN(len(values))]
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
