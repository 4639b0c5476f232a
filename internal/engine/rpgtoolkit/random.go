package rpgtoolkit

import (
	"log/slog"
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/forge-api/internal/engine/forging"
)

// floatResolution is the die size used to draw a float
const floatResolution = 1 << 30

// DiceRandomizer draws forge randomness from an rpg-toolkit dice roller. If
// the roller fails the draw falls back to math/rand so a turn never aborts
// halfway through.
type DiceRandomizer struct {
	roller dice.Roller
}

var _ forging.Randomizer = (*DiceRandomizer)(nil)

// NewDiceRandomizer wraps roller
func NewDiceRandomizer(roller dice.Roller) *DiceRandomizer {
	return &DiceRandomizer{roller: roller}
}

// Float64 returns a uniform value in [0,1)
func (r *DiceRandomizer) Float64() float64 {
	n, err := r.roller.Roll(floatResolution)
	if err != nil || n < 1 || n > floatResolution {
		slog.Warn("dice roll failed, using fallback source", "size", floatResolution, "error", err)
		return rand.Float64()
	}
	return float64(n-1) / floatResolution
}

// IntRange returns a uniform integer in [min,max]
func (r *DiceRandomizer) IntRange(min, max int) int {
	if max <= min {
		return min
	}

	size := max - min + 1
	n, err := r.roller.Roll(size)
	if err != nil || n < 1 || n > size {
		slog.Warn("dice roll failed, using fallback source", "size", size, "error", err)
		return min + rand.IntN(size)
	}
	return min + n - 1
}
