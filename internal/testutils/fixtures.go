package testutils

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// TestPlayerID is the default player id for test fixtures
const TestPlayerID = "player-test-001"

// NewTestMaterial creates a material instance with the given effect
func NewTestMaterial(id string, quality forge.Quality, effect forge.EffectType, value float64) forge.Material {
	return forge.Material{
		ID:          id,
		CatalogID:   id,
		Quality:     quality,
		Name:        fmt.Sprintf("Test %s %s", quality, effect),
		EffectType:  effect,
		EffectValue: value,
	}
}

// IronCommon is the Common shop durability material
func IronCommon() forge.Material {
	return forge.Material{
		ID:          "m_iron_1",
		CatalogID:   "m_iron_1",
		Quality:     forge.QualityCommon,
		Name:        "Rough Black Iron",
		Price:       10,
		EffectType:  forge.EffectDurability,
		EffectValue: 15,
		Description: "Max durability +15",
	}
}

// CopperCommon is the Common shop cost reduction material
func CopperCommon() forge.Material {
	return forge.Material{
		ID:          "m_copper_1",
		CatalogID:   "m_copper_1",
		Quality:     forge.QualityCommon,
		Name:        "Light Cloud Copper",
		Price:       15,
		EffectType:  forge.EffectCostReduction,
		EffectValue: 0.10,
		Description: "Durability cost -10%",
	}
}

// GoldCommon is the Common shop score multiplier material
func GoldCommon() forge.Material {
	return forge.Material{
		ID:          "m_gold_1",
		CatalogID:   "m_gold_1",
		Quality:     forge.QualityCommon,
		Name:        "Glimmering Red Gold",
		Price:       20,
		EffectType:  forge.EffectScoreMult,
		EffectValue: 0.05,
		Description: "Score multiplier +5%",
	}
}

// AmberRare is the Rare death save material
func AmberRare() forge.Material {
	return forge.Material{
		ID:          "s_amber_3",
		CatalogID:   "s_amber_3",
		Quality:     forge.QualityRare,
		Name:        "Ancient Amber",
		Price:       3500,
		EffectType:  forge.EffectDeathSave,
		EffectValue: 100,
		DungeonOnly: true,
	}
}

// CreateTestPlayer creates a level 1 player holding one of each Common shop
// material
func CreateTestPlayer(playerID string) *forge.Player {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	return &forge.Player{
		ID:     playerID,
		Level:  1,
		MaxExp: 150,
		Gold:   500,
		Materials: []forge.Material{
			IronCommon().NewInstance("mat-iron-001"),
			CopperCommon().NewInstance("mat-copper-001"),
			GoldCommon().NewInstance("mat-gold-001"),
		},
		BaseStats: forge.BaseStats{HP: 100, ATK: 20, DEF: 10, Crit: 5},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
