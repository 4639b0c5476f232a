package forging

import (
	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// ComputeCost returns the durability cost of a Light or Heavy action taken
// from the session's current state. Quench is free and Polish rolls its own
// cost, so both return 0 here.
//
// The steps run in a fixed order and each floor matters:
// base, combo short circuit, no-heat penalty, hardened, talent reduction,
// material reduction, floor with a minimum of 1, zone multiplier, floor.
func ComputeCost(s *forge.Session, action forge.Action) int {
	var cost float64
	switch action {
	case forge.ActionLight:
		if s.ComboActive {
			return 0
		}
		cost = LightCost
	case forge.ActionHeavy:
		cost = HeavyCost
	default:
		return 0
	}

	cost += costPenalty(activeEffects(s.Materials))

	if s.ActiveDebuff == forge.DebuffHardened {
		cost *= 2
	}

	if s.HasTalent(TalentCostReduction) {
		cost *= 1 - TalentCostReductionPct
	}

	cost *= 1 - s.CostModifier

	floored := max(1, floorInt(cost))

	return floorInt(float64(floored) * ZoneCostMultiplier(s, ClassifyZone(s.Temperature)))
}
