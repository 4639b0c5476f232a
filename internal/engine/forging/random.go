package forging

//go:generate mockgen -destination=mock/mock_randomizer.go -package=forgingmock github.com/KirkDiggler/forge-api/internal/engine/forging Randomizer

import "math"

// Randomizer is the single source of randomness for a forge session.
// Every draw the engine makes goes through it, in a fixed order.
type Randomizer interface {
	// Float64 returns a uniform value in [0,1)
	Float64() float64
	// IntRange returns a uniform integer in [min,max], both inclusive
	IntRange(min, max int) int
}

// epsilon absorbs float error before flooring and threshold checks
const epsilon = 1e-9

func chance(rng Randomizer, p float64) bool {
	if p <= 0 {
		return false
	}
	return rng.Float64() < p
}

func floorInt(v float64) int {
	return int(math.Floor(v + epsilon))
}

func atLeast(strength, threshold float64) bool {
	return strength >= threshold-epsilon
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
