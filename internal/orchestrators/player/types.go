package player

import "github.com/KirkDiggler/forge-api/internal/entities/forge"

// CreatePlayerInput defines the request for creating a player
type CreatePlayerInput struct {
	PlayerID string
}

// CreatePlayerOutput defines the response for creating a player
type CreatePlayerOutput struct {
	Player *forge.Player
}

// GetPlayerInput defines the request for loading a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayerOutput defines the response for loading a player
type GetPlayerOutput struct {
	Player *forge.Player
}

// BuyMaterialInput defines the request for buying a shop material
type BuyMaterialInput struct {
	PlayerID string
	// MaterialID is the catalog id, e.g. m_iron_2
	MaterialID string
}

// BuyMaterialOutput defines the response for buying a shop material
type BuyMaterialOutput struct {
	Player *forge.Player
	// Material is the new instance added to the player
	Material *forge.Material
}

// UnlockTalentInput defines the request for unlocking a talent
type UnlockTalentInput struct {
	PlayerID string
	TalentID string
}

// UnlockTalentOutput defines the response for unlocking a talent
type UnlockTalentOutput struct {
	Player *forge.Player
	Talent *forge.Talent
}

// SellEquipmentInput defines the request for selling a forged item
type SellEquipmentInput struct {
	PlayerID    string
	EquipmentID string
}

// SellEquipmentOutput defines the response for selling a forged item
type SellEquipmentOutput struct {
	Player     *forge.Player
	GoldEarned int
}

// ClaimLootInput defines the request for claiming a dungeon drop or a
// blacksmith reward. A positive TargetScore rolls a reward around that score
// and ignores Qualities.
type ClaimLootInput struct {
	PlayerID      string
	EquipmentType forge.EquipmentType
	Qualities     []forge.Quality
	BossDrop      bool
	TargetScore   int
}

// ClaimLootOutput defines the response for claiming loot
type ClaimLootOutput struct {
	Player    *forge.Player
	Equipment *forge.Equipment
}
