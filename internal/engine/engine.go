package engine

import (
	"math/rand/v2"
)

// SeededRandomizer is a reproducible Randomizer. Two instances built from the
// same seed yield the same draws, so a session can be replayed from its seed
// and action list.
type SeededRandomizer struct {
	rng *rand.Rand
}

// NewSeededRandomizer creates a PCG backed randomizer
func NewSeededRandomizer(seed uint64) *SeededRandomizer {
	return &SeededRandomizer{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Float64 returns a uniform value in [0,1)
func (r *SeededRandomizer) Float64() float64 {
	return r.rng.Float64()
}

// IntRange returns a uniform integer in [min,max]. A reversed range returns min.
func (r *SeededRandomizer) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.IntN(max-min+1)
}
