package v1alpha1

import "github.com/KirkDiggler/forge-api/internal/entities/forge"

// ForgeSession is the wire view of a stored forge session
type ForgeSession struct {
	SessionID     string `json:"session_id"`
	PlayerID      string `json:"player_id"`
	EquipmentType string `json:"equipment_type"`
	ExpiresAt     int64  `json:"expires_at"`

	State *forge.Session `json:"state"`

	// Derived from the state so clients need not know the rules
	Zone        string `json:"zone"`
	LightCost   int    `json:"light_cost"`
	HeavyCost   int    `json:"heavy_cost"`
	CanPolish   bool   `json:"can_polish"`
	CanComplete bool   `json:"can_complete"`
}

// StartForgeRequest lights the forge
type StartForgeRequest struct {
	PlayerID      string   `json:"player_id"`
	MaterialIDs   []string `json:"material_ids"`
	EquipmentType string   `json:"equipment_type"`
}

// StartForgeResponse carries the new session
type StartForgeResponse struct {
	Session *ForgeSession `json:"session"`
}

// GetForgeRequest asks for the player's active session
type GetForgeRequest struct {
	PlayerID string `json:"player_id"`
}

// GetForgeResponse carries the active session
type GetForgeResponse struct {
	Session *ForgeSession `json:"session"`
}

// ExecuteActionRequest runs one action: LIGHT, HEAVY, QUENCH or POLISH
type ExecuteActionRequest struct {
	PlayerID string `json:"player_id"`
	Action   string `json:"action"`
}

// ExecuteActionResponse carries the session after the action
type ExecuteActionResponse struct {
	Session       *ForgeSession `json:"session"`
	MaterialsLost []string      `json:"materials_lost,omitempty"`
}

// ApplyDebuffRequest curses the active session with HARDENED or DULLED
type ApplyDebuffRequest struct {
	PlayerID string `json:"player_id"`
	Debuff   string `json:"debuff"`
}

// ApplyDebuffResponse carries the cursed session
type ApplyDebuffResponse struct {
	Session *ForgeSession `json:"session"`
}

// CompleteForgeRequest seals the active session
type CompleteForgeRequest struct {
	PlayerID string `json:"player_id"`
}

// CompleteForgeResponse carries the forged item
type CompleteForgeResponse struct {
	Equipment    *forge.Equipment `json:"equipment"`
	QualityScore int              `json:"quality_score"`
	Logs         []string         `json:"logs"`
	Player       *forge.Player    `json:"player"`
}

// AbandonForgeRequest drops the active session
type AbandonForgeRequest struct {
	PlayerID string `json:"player_id"`
}

// AbandonForgeResponse names the dropped session
type AbandonForgeResponse struct {
	SessionID string `json:"session_id"`
}

// CreatePlayerRequest creates a player
type CreatePlayerRequest struct {
	PlayerID string `json:"player_id"`
}

// CreatePlayerResponse carries the new player
type CreatePlayerResponse struct {
	Player *forge.Player `json:"player"`
}

// GetPlayerRequest loads a player
type GetPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

// GetPlayerResponse carries the player
type GetPlayerResponse struct {
	Player *forge.Player `json:"player"`
}

// BuyMaterialRequest buys a shop material by catalog id
type BuyMaterialRequest struct {
	PlayerID   string `json:"player_id"`
	MaterialID string `json:"material_id"`
}

// BuyMaterialResponse carries the bought instance
type BuyMaterialResponse struct {
	Material *forge.Material `json:"material"`
	Player   *forge.Player   `json:"player"`
}

// UnlockTalentRequest unlocks a talent
type UnlockTalentRequest struct {
	PlayerID string `json:"player_id"`
	TalentID string `json:"talent_id"`
}

// UnlockTalentResponse carries the unlocked talent
type UnlockTalentResponse struct {
	Talent *forge.Talent `json:"talent"`
	Player *forge.Player `json:"player"`
}

// SellEquipmentRequest sells an inventory item
type SellEquipmentRequest struct {
	PlayerID    string `json:"player_id"`
	EquipmentID string `json:"equipment_id"`
}

// SellEquipmentResponse reports the sale
type SellEquipmentResponse struct {
	GoldEarned int           `json:"gold_earned"`
	Player     *forge.Player `json:"player"`
}

// ClaimLootRequest claims a dungeon drop, or a blacksmith reward when
// target_score is set. Qualities are material qualities 1 to 3.
type ClaimLootRequest struct {
	PlayerID      string `json:"player_id"`
	EquipmentType string `json:"equipment_type"`
	Qualities     []int  `json:"qualities,omitempty"`
	BossDrop      bool   `json:"boss_drop,omitempty"`
	TargetScore   int    `json:"target_score,omitempty"`
}

// ClaimLootResponse carries the new item and the player holding it
type ClaimLootResponse struct {
	Equipment *forge.Equipment `json:"equipment"`
	Player    *forge.Player    `json:"player"`
}
