package forging

import (
	"math/rand/v2"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/testutils"
)

// pcgRandomizer is a seeded Randomizer for property tests
type pcgRandomizer struct {
	r *rand.Rand
}

func newPCG(seed uint64) *pcgRandomizer {
	return &pcgRandomizer{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRandomizer) Float64() float64 { return p.r.Float64() }

func (p *pcgRandomizer) IntRange(min, max int) int { return min + p.r.IntN(max-min+1) }

func material(effect forge.EffectType, value float64) forge.Material {
	return testutils.NewTestMaterial("m_"+string(effect), forge.QualityRare, effect, value)
}

func ironSession(level int, talents ...string) *forge.Session {
	return CreateSession([]forge.Material{testutils.IronCommon()}, level, talents)
}
