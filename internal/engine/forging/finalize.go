package forging

import (
	"fmt"
	"math"
	"slices"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

type statConfig struct {
	label  string
	suffix string
	base   float64
}

var statConfigs = map[forge.StatType]statConfig{
	forge.StatHP:        {label: "HP", base: 50},
	forge.StatATK:       {label: "Attack", base: 10},
	forge.StatDEF:       {label: "Defense", base: 5},
	forge.StatCrit:      {label: "Crit Rate", suffix: "%"},
	forge.StatLifesteal: {label: "Lifesteal", suffix: "%"},
}

var statPools = map[forge.EquipmentType][]forge.StatType{
	forge.EquipmentWeapon: {forge.StatATK, forge.StatCrit, forge.StatLifesteal},
	forge.EquipmentArmor:  {forge.StatHP, forge.StatDEF, forge.StatLifesteal},
}

// Finalizer caps and tuning
const (
	MaxCrit      = 35
	MaxLifesteal = 5

	scoreBonusCap     = 0.5
	scoreBonusDivisor = 2000.0
)

// Finalize turns a session into equipment. The returned item has no ID;
// callers assign one when they store it.
func Finalize(s *forge.Session, equipmentType forge.EquipmentType, playerLevel int, rng Randomizer) *forge.Equipment {
	totalQuality := forge.TotalQuality(s.Materials)
	score := s.QualityScore

	quality := rollQuality(totalQuality, score, rng)
	count := rollStatCount(quality, score, rng)
	stats := rollStats(equipmentType, quality, count, score, playerLevel, rng)

	durability := int(math.Floor(combatDurability(quality) * (1 + float64(score)/5000)))

	return &forge.Equipment{
		Name:              fmt.Sprintf("%s %s", quality, equipmentName(equipmentType)),
		Type:              equipmentType,
		Quality:           quality,
		Stats:             stats,
		Value:             int(math.Floor(float64(score)*1.2)) + totalQuality*50,
		MaterialsUsed:     forge.Qualities(s.Materials),
		Score:             score,
		MaxDurability:     durability,
		CurrentDurability: durability,
	}
}

// rollQuality bins the summed material quality (3..9) and lets the score
// shift the odds within the bin
func rollQuality(totalQuality, score int, rng Randomizer) forge.Quality {
	roll := rng.Float64()

	switch {
	case totalQuality <= 4:
		threshold := 0.1
		if score > 600 {
			threshold = 0.2
		}
		if roll < threshold {
			return forge.QualityRefined
		}
		return forge.QualityCommon
	case totalQuality <= 7:
		if score < 450 {
			if roll < 0.5 {
				return forge.QualityCommon
			}
			return forge.QualityRefined
		}
		switch {
		case roll < 0.2:
			return forge.QualityCommon
		case roll < 0.9:
			return forge.QualityRefined
		default:
			return forge.QualityRare
		}
	default:
		threshold := 0.1
		if score < 500 {
			threshold = 0.4
		}
		if roll < threshold {
			return forge.QualityRefined
		}
		return forge.QualityRare
	}
}

func rollStatCount(quality forge.Quality, score int, rng Randomizer) int {
	upgrade := 0.3 + math.Min(1, float64(score)/scoreBonusDivisor)*0.5

	switch quality {
	case forge.QualityRefined:
		if chance(rng, upgrade) {
			return 3
		}
		return 2
	case forge.QualityRare:
		if chance(rng, upgrade) {
			return 4
		}
		return 3
	default:
		return 2
	}
}

// rollStats shuffles the type's pool and rolls count stats from it. When
// count exceeds the pool the stats wrap around, so a type can appear twice;
// each roll is its own entry.
func rollStats(
	equipmentType forge.EquipmentType,
	quality forge.Quality,
	count, score, playerLevel int,
	rng Randomizer,
) []forge.Stat {
	pool := slices.Clone(statPools[equipmentType])
	if len(pool) == 0 {
		return nil
	}
	if quality == forge.QualityCommon {
		pool = slices.DeleteFunc(pool, func(t forge.StatType) bool { return t == forge.StatLifesteal })
	}

	for i := len(pool) - 1; i > 0; i-- {
		j := rng.IntRange(0, i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	stats := make([]forge.Stat, 0, count)
	for i := 0; i < count; i++ {
		statType := pool[i%len(pool)]
		v := statValue(statType, quality, score, playerLevel, rng)
		cfg := statConfigs[statType]
		stats = append(stats, forge.Stat{
			Type:   statType,
			Label:  cfg.label,
			Value:  int(math.Floor(math.Max(1, v))),
			Suffix: cfg.suffix,
		})
	}

	slices.SortStableFunc(stats, func(a, b forge.Stat) int {
		return slices.Index(forge.StatOrder, a.Type) - slices.Index(forge.StatOrder, b.Type)
	})
	return stats
}

func statValue(statType forge.StatType, quality forge.Quality, score, playerLevel int, rng Randomizer) float64 {
	switch statType {
	case forge.StatCrit:
		return math.Min(MaxCrit, float64(quality)*5+float64(score)/250)
	case forge.StatLifesteal:
		base := 1.0
		if quality == forge.QualityRare {
			base = 2
		}
		return math.Min(MaxLifesteal, base+float64(score)/1500)
	}

	levelBase := 10 * math.Pow(1.3, float64(playerLevel-1))
	ratio := statConfigs[statType].base / 10
	scoreBonus := math.Min(scoreBonusCap, float64(score)/scoreBonusDivisor)

	v := levelBase * ratio * qualityMultiplier(quality) * (1 + scoreBonus)
	return v * (0.9 + rng.Float64()*0.2)
}

func qualityMultiplier(q forge.Quality) float64 {
	switch q {
	case forge.QualityRefined:
		return 1.3
	case forge.QualityRare:
		return 1.6
	default:
		return 1.0
	}
}

func combatDurability(q forge.Quality) float64 {
	switch q {
	case forge.QualityRefined:
		return 180
	case forge.QualityRare:
		return 300
	default:
		return 100
	}
}

func equipmentName(t forge.EquipmentType) string {
	if t == forge.EquipmentArmor {
		return "Armor"
	}
	return "Weapon"
}

// GenerateEquipment rolls an item without a forge session, for dungeon loot.
// The score is simulated from the material qualities; boss drops score
// higher.
func GenerateEquipment(
	equipmentType forge.EquipmentType,
	qualities []forge.Quality,
	playerLevel int,
	bossDrop bool,
	rng Randomizer,
) *forge.Equipment {
	total := 0
	for _, q := range qualities {
		total += int(q)
	}

	perQuality := 80.0
	if bossDrop {
		perQuality = 150
	}
	score := int(math.Floor(float64(total) * perQuality * (0.8 + rng.Float64()*0.4)))

	return Finalize(simulatedSession(qualities, score, playerLevel), equipmentType, playerLevel, rng)
}

// GenerateBlacksmithReward rolls an item around a target score. Material
// quality is inferred from the target.
func GenerateBlacksmithReward(
	targetScore int,
	equipmentType forge.EquipmentType,
	playerLevel int,
	rng Randomizer,
) *forge.Equipment {
	quality := forge.QualityCommon
	switch {
	case targetScore > 800:
		quality = forge.QualityRare
	case targetScore > 300:
		quality = forge.QualityRefined
	}

	score := int(math.Floor(float64(targetScore) * (0.9 + rng.Float64()*0.2)))
	qualities := []forge.Quality{quality, quality, quality}

	return Finalize(simulatedSession(qualities, score, playerLevel), equipmentType, playerLevel, rng)
}

func simulatedSession(qualities []forge.Quality, score, playerLevel int) *forge.Session {
	materials := make([]forge.Material, len(qualities))
	for i, q := range qualities {
		materials[i] = forge.Material{
			ID:         fmt.Sprintf("simulated_%d", i),
			Quality:    q,
			EffectType: forge.EffectDurability,
		}
	}

	return &forge.Session{
		PlayerLevel:       playerLevel,
		MaxDurability:     100,
		CurrentDurability: 100,
		Progress:          MaxProgress,
		QualityScore:      score,
		ScoreMultiplier:   1,
		Status:            forge.StatusSuccess,
		Materials:         materials,
	}
}
