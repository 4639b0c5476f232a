package forging

import (
	"math"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// Temperature bands
const (
	MinTemperature = 0
	OptimalStart   = 30
	OverheatStart  = 80
	MaxTemperature = 100
)

// Zone multipliers
const (
	LowScoreMultiplier           = 0.8
	OptimalScoreMultiplier       = 1.5
	OptimalTalentScoreMultiplier = 1.8
	OverheatScoreMultiplier      = 2.5
	OverheatCostMultiplier       = 2.0
	OverheatTalentCostCap        = 1.5
)

// ClassifyZone maps a temperature to its heat zone
func ClassifyZone(temperature int) forge.Zone {
	t := clamp(temperature, MinTemperature, MaxTemperature)
	switch {
	case t < OptimalStart:
		return forge.ZoneLow
	case t < OverheatStart:
		return forge.ZoneOptimal
	default:
		return forge.ZoneOverheat
	}
}

// ZoneScoreMultiplier returns the score multiplier of zone for the session
func ZoneScoreMultiplier(s *forge.Session, zone forge.Zone) float64 {
	switch zone {
	case forge.ZoneOptimal:
		if s.HasTalent(TalentOptimalZone) {
			return OptimalTalentScoreMultiplier
		}
		return OptimalScoreMultiplier
	case forge.ZoneOverheat:
		return OverheatScoreMultiplier
	default:
		return LowScoreMultiplier
	}
}

// ZoneCostMultiplier returns the cost multiplier of zone for the session.
// Only the overheat zone taxes durability; heat resistance lowers the tax
// toward 1.0 and the overheat talent caps it at 1.5.
func ZoneCostMultiplier(s *forge.Session, zone forge.Zone) float64 {
	if zone != forge.ZoneOverheat {
		return 1.0
	}

	m := math.Max(1.0, OverheatCostMultiplier-overheatRelief(activeEffects(s.Materials)))
	if s.HasTalent(TalentOverheatCap) {
		m = math.Min(m, OverheatTalentCostCap)
	}
	return m
}

func clampTemperature(t int) int {
	return clamp(t, MinTemperature, MaxTemperature)
}
