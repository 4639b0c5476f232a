package forging

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// SumEffect returns the summed strength of tag over materials
func SumEffect(materials []forge.Material, tag forge.EffectType) float64 {
	total := 0.0
	for _, m := range materials {
		if m.EffectType == tag {
			total += m.EffectValue
		}
	}
	return total
}

// HasEffect reports whether any material carries tag
func HasEffect(materials []forge.Material, tag forge.EffectType) bool {
	for _, m := range materials {
		if m.EffectType == tag {
			return true
		}
	}
	return false
}

type hookFunc func(t *turn, strength float64)

// effectHooks are the points in a turn where a material effect can act.
// Strength is always the summed value of the tag across the session's
// materials, and thresholds apply to that sum.
type effectHooks struct {
	create         func(s *forge.Session, strength float64)
	preCost        hookFunc
	costPenalty    func(strength float64) float64
	heatFactor     func(strength float64) float64
	overheatRelief func(strength float64) float64
	light          hookFunc
	heavy          hookFunc
	score          hookFunc
	quench         hookFunc
	polish         hookFunc
	multiplier     func(s *forge.Session, strength float64) float64
	death          func(t *turn, strength float64) bool
}

// hookOrder fixes the order effects run in within a hook point, and so the
// order they draw from the Randomizer. Death saves come before breakage
// immunity.
var hookOrder = []forge.EffectType{
	forge.EffectDurability,
	forge.EffectCostReduction,
	forge.EffectScoreMult,
	forge.EffectMiracle,
	forge.EffectNoHeat,
	forge.EffectMultiHit,
	forge.EffectComboHeal,
	forge.EffectFocusCap,
	forge.EffectQuenchFocus,
	forge.EffectPolishBuff,
	forge.EffectHeatScore,
	forge.EffectBloodPact,
	forge.EffectDeathSave,
	forge.EffectHeatResist,
}

var effectTable = map[forge.EffectType]effectHooks{
	forge.EffectDurability: {
		create: func(s *forge.Session, strength float64) {
			s.MaxDurability += floorInt(strength)
		},
	},
	forge.EffectCostReduction: {
		create: func(s *forge.Session, strength float64) {
			s.CostModifier = math.Min(MaxCostModifier, strength)
		},
	},
	forge.EffectScoreMult: {
		multiplier: func(_ *forge.Session, strength float64) float64 {
			return strength
		},
	},
	forge.EffectMiracle: {
		preCost: func(t *turn, strength float64) {
			if chance(t.rng, strength) {
				t.miracle = true
				t.tag("Miracle")
			}
		},
		quench: func(t *turn, strength float64) {
			if t.miracle && atLeast(strength, 0.15) {
				t.heal(5)
			}
		},
	},
	forge.EffectNoHeat: {
		costPenalty: func(strength float64) float64 {
			if strength > 0 && !atLeast(strength, 1) {
				return 1
			}
			return 0
		},
		heatFactor: func(strength float64) float64 {
			return math.Max(0, 1-strength)
		},
	},
	forge.EffectHeatResist: {
		overheatRelief: func(strength float64) float64 {
			return strength
		},
		death: func(t *turn, strength float64) bool {
			if !atLeast(strength, 1) || t.action == forge.ActionPolish {
				return false
			}
			t.s.CurrentDurability = 1
			t.s.PrependLog("Obsidian Skin holds: the piece survives with 1 durability")
			return true
		},
	},
	forge.EffectMultiHit: {
		light: func(t *turn, strength float64) {
			if chance(t.rng, strength) {
				t.actionMult *= 2
				t.focusGain++
				t.tag("Gale")
			}
		},
	},
	forge.EffectComboHeal: {
		light: func(t *turn, strength float64) {
			if t.combo {
				healed := t.heal(floorInt(strength))
				t.tag(fmt.Sprintf("Echo +%d", healed))
			}
		},
	},
	forge.EffectFocusCap: {
		heavy: func(t *turn, strength float64) {
			if t.focusSpent < t.s.MaxFocus {
				return
			}
			if atLeast(strength, 2) {
				t.actionMult *= 2
			} else {
				t.actionMult *= 1.2
			}
			t.tag("Mind")
		},
	},
	forge.EffectQuenchFocus: {
		quench: func(t *turn, strength float64) {
			gain := 0
			if !atLeast(strength, 1) {
				if chance(t.rng, strength) {
					gain = 1
				}
			} else {
				gain = int(math.Min(2, math.Floor(strength+epsilon)))
			}
			if gain > 0 {
				t.s.Focus = clamp(t.s.Focus+gain, 0, t.s.MaxFocus)
				t.tag(fmt.Sprintf("Frost focus +%d", gain))
			}
		},
	},
	forge.EffectPolishBuff: {
		polish: func(t *turn, strength float64) {
			if chance(t.rng, 0.30*strength) {
				t.cost = 0
				t.tag("Diamond waiver")
				return
			}
			t.base += math.Floor(50*strength + epsilon)
		},
	},
	forge.EffectHeatScore: {
		score: func(t *turn, strength float64) {
			bonus := math.Floor(float64(t.s.Temperature)*strength + epsilon)
			if atLeast(strength, 2) && t.s.Temperature >= MaxTemperature {
				bonus += 50
			}
			if bonus > 0 {
				t.base += bonus
				t.tag(fmt.Sprintf("Magma +%d", int(bonus)))
			}
		},
	},
	forge.EffectBloodPact: {
		multiplier: bloodPactBonus,
	},
	forge.EffectDeathSave: {
		death: func(t *turn, strength float64) bool {
			if t.s.DeathSaveUsed {
				return false
			}
			pct := 0.10
			switch {
			case atLeast(strength, 100):
				pct = 0.50
			case atLeast(strength, 50):
				pct = 0.30
			}
			t.s.DeathSaveUsed = true
			t.s.CurrentDurability = max(1, floorInt(float64(t.s.MaxDurability)*pct))
			if atLeast(strength, 100) {
				t.s.Temperature = 0
			}
			t.s.PrependLog(fmt.Sprintf("Ancient Amber flares: durability restored to %d", t.s.CurrentDurability))
			return true
		},
	},
}

type activeEffect struct {
	tag      forge.EffectType
	hooks    effectHooks
	strength float64
}

// activeEffects lists the effects present on materials in hook order
func activeEffects(materials []forge.Material) []activeEffect {
	var active []activeEffect
	for _, tag := range hookOrder {
		if !HasEffect(materials, tag) {
			continue
		}
		active = append(active, activeEffect{
			tag:      tag,
			hooks:    effectTable[tag],
			strength: SumEffect(materials, tag),
		})
	}
	return active
}

func heatFactor(effects []activeEffect) float64 {
	factor := 1.0
	for _, e := range effects {
		if e.hooks.heatFactor != nil {
			factor *= e.hooks.heatFactor(e.strength)
		}
	}
	return factor
}

func overheatRelief(effects []activeEffect) float64 {
	relief := 0.0
	for _, e := range effects {
		if e.hooks.overheatRelief != nil {
			relief += e.hooks.overheatRelief(e.strength)
		}
	}
	return relief
}

func costPenalty(effects []activeEffect) float64 {
	penalty := 0.0
	for _, e := range effects {
		if e.hooks.costPenalty != nil {
			penalty += e.hooks.costPenalty(e.strength)
		}
	}
	return penalty
}
