package forging

import (
	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// RecomputeMultiplier derives the score multiplier from the session's current
// state: 1.0, plus material and talent bonuses, plus the Blood Pact term for
// missing durability. It is never accumulated across turns.
func RecomputeMultiplier(s *forge.Session) float64 {
	m := 1.0
	for _, t := range talentMultipliers {
		if s.HasTalent(t.id) {
			m += t.bonus
		}
	}

	for _, e := range activeEffects(s.Materials) {
		if e.hooks.multiplier != nil {
			m += e.hooks.multiplier(s, e.strength)
		}
	}
	return m
}

// bloodPactBonus grants strength% per 10 missing durability, doubled at Rare
// strength while below 10% durability
func bloodPactBonus(s *forge.Session, strength float64) float64 {
	if s.MaxDurability <= 0 {
		return 0
	}

	current := max(0, s.CurrentDurability)
	stacks := (s.MaxDurability - current) / 10
	bonus := float64(stacks) * strength * 0.01

	if atLeast(strength, 8) && float64(current)/float64(s.MaxDurability) < 0.10 {
		bonus *= 2
	}
	return bonus
}
