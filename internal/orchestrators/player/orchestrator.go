// Package player implements the player orchestrator: creating a player with
// the starter kit, buying shop materials, unlocking talents, claiming loot
// and selling equipment
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playermock github.com/KirkDiggler/forge-api/internal/orchestrators/player Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/forge-api/internal/clients/catalog"
	"github.com/KirkDiggler/forge-api/internal/engine"
	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/pkg/idgen"
	playerrepo "github.com/KirkDiggler/forge-api/internal/repositories/player"
)

// New player defaults
const (
	StartingLevel  = 1
	StartingMaxExp = 150
	StartingGold   = 500
)

// StarterMaterials are the catalog ids every new player receives once each
var StarterMaterials = []string{"m_iron_1", "m_copper_1", "m_gold_1"}

// StartingStats are the base combat stats of a new player
var StartingStats = forge.BaseStats{HP: 100, ATK: 20, DEF: 10, Crit: 5}

// Service defines the interface for player operations
type Service interface {
	// CreatePlayer creates a level 1 player with the starter kit
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)

	// GetPlayer loads a player
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// BuyMaterial buys one shop material for gold
	BuyMaterial(ctx context.Context, input *BuyMaterialInput) (*BuyMaterialOutput, error)

	// UnlockTalent spends gold on the next node of a talent branch
	UnlockTalent(ctx context.Context, input *UnlockTalentInput) (*UnlockTalentOutput, error)

	// SellEquipment sells a forged item for its value
	SellEquipment(ctx context.Context, input *SellEquipmentInput) (*SellEquipmentOutput, error)

	// ClaimLoot rolls an item outside the forge and adds it to the inventory
	ClaimLoot(ctx context.Context, input *ClaimLootInput) (*ClaimLootOutput, error)
}

// Config holds the dependencies for the player orchestrator
type Config struct {
	PlayerRepo playerrepo.Repository
	Catalog    catalog.Client
	Engine     engine.Engine

	// MaterialIDGenerator names the material instances a player owns
	MaterialIDGenerator idgen.Generator

	// EquipmentIDGenerator names claimed loot; share it with the forge
	// orchestrator so inventory ids stay unique
	EquipmentIDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.MaterialIDGenerator == nil {
		vb.RequiredField("MaterialIDGenerator")
	}
	if c.EquipmentIDGenerator == nil {
		vb.RequiredField("EquipmentIDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo  playerrepo.Repository
	catalog     catalog.Client
	engine      engine.Engine
	materialIDs idgen.Generator
	equipIDs    idgen.Generator
}

// NewOrchestrator creates a new player orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo:  cfg.PlayerRepo,
		catalog:     cfg.Catalog,
		engine:      cfg.Engine,
		materialIDs: cfg.MaterialIDGenerator,
		equipIDs:    cfg.EquipmentIDGenerator,
	}, nil
}

// CreatePlayer creates a level 1 player with the starter kit
func (o *orchestrator) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	_, err := o.playerRepo.Get(ctx, playerrepo.GetInput{PlayerID: input.PlayerID})
	switch {
	case err == nil:
		return nil, errors.AlreadyExists("player already exists").
			WithMeta("player_id", input.PlayerID)
	case !errors.IsNotFound(err):
		return nil, errors.Wrap(err, "failed to check for existing player")
	}

	p := &forge.Player{
		ID:              input.PlayerID,
		Level:           StartingLevel,
		MaxExp:          StartingMaxExp,
		Gold:            StartingGold,
		Materials:       make([]forge.Material, 0, len(StarterMaterials)),
		Inventory:       []forge.Equipment{},
		UnlockedTalents: []string{},
		BaseStats:       StartingStats,
	}
	for _, id := range StarterMaterials {
		m, err := o.catalog.GetMaterial(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load starter material %s", id)
		}
		p.Materials = append(p.Materials, m.NewInstance(o.materialIDs.Generate()))
	}

	saved, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}

	slog.Info("Player created", "player_id", p.ID, "gold", p.Gold)

	return &CreatePlayerOutput{Player: saved.Player}, nil
}

// GetPlayer loads a player
func (o *orchestrator) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	p, err := o.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetPlayerOutput{Player: p}, nil
}

// BuyMaterial buys one shop material for gold
func (o *orchestrator) BuyMaterial(ctx context.Context, input *BuyMaterialInput) (*BuyMaterialOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("material_id", input.MaterialID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	entry, err := o.catalog.GetMaterial(ctx, input.MaterialID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get material")
	}
	if entry.DungeonOnly {
		return nil, errors.FailedPrecondition("material is not sold in the shop").
			WithMeta("material_id", entry.ID)
	}

	p, err := o.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if err := spend(p, entry.Price); err != nil {
		return nil, err.WithMeta("material_id", entry.ID)
	}

	bought := entry.NewInstance(o.materialIDs.Generate())
	p.Materials = append(p.Materials, bought)

	saved, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}

	slog.Info("Material bought",
		"player_id", p.ID,
		"material_id", entry.ID,
		"instance_id", bought.ID,
		"price", entry.Price,
		"gold_left", p.Gold,
	)

	return &BuyMaterialOutput{Player: saved.Player, Material: &bought}, nil
}

// UnlockTalent spends gold on the next node of a talent branch
func (o *orchestrator) UnlockTalent(ctx context.Context, input *UnlockTalentInput) (*UnlockTalentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("talent_id", input.TalentID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	talent, err := o.catalog.GetTalent(ctx, input.TalentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get talent")
	}

	p, err := o.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	switch {
	case p.HasTalent(talent.ID):
		return nil, errors.AlreadyExists("talent already unlocked").
			WithMeta("talent_id", talent.ID)
	case talent.ParentID != "" && !p.HasTalent(talent.ParentID):
		return nil, errors.FailedPrecondition("previous talent in the branch is locked").
			WithMeta("talent_id", talent.ID).
			WithMeta("parent_id", talent.ParentID)
	case p.Level < talent.RequiredLevel:
		return nil, errors.FailedPreconditionf("talent requires level %d", talent.RequiredLevel).
			WithMeta("talent_id", talent.ID).
			WithMeta("level", p.Level)
	}
	if err := spend(p, talent.Cost); err != nil {
		return nil, err.WithMeta("talent_id", talent.ID)
	}
	p.UnlockedTalents = append(p.UnlockedTalents, talent.ID)

	saved, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}

	slog.Info("Talent unlocked",
		"player_id", p.ID,
		"talent_id", talent.ID,
		"cost", talent.Cost,
		"gold_left", p.Gold,
	)

	return &UnlockTalentOutput{Player: saved.Player, Talent: talent}, nil
}

// SellEquipment sells a forged item for its value
func (o *orchestrator) SellEquipment(ctx context.Context, input *SellEquipmentInput) (*SellEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("equipment_id", input.EquipmentID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	p, err := o.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	sold, ok := p.RemoveEquipment(input.EquipmentID)
	if !ok {
		return nil, errors.NotFound("equipment not in inventory").
			WithMeta("player_id", p.ID).
			WithMeta("equipment_id", input.EquipmentID)
	}
	p.Gold += sold.Value

	saved, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}

	slog.Info("Equipment sold", "player_id", p.ID, "equipment_id", sold.ID, "value", sold.Value)

	return &SellEquipmentOutput{Player: saved.Player, GoldEarned: sold.Value}, nil
}

// ClaimLoot rolls a dungeon drop, or a blacksmith reward when a target score
// is given, at the player's level and adds it to the inventory
func (o *orchestrator) ClaimLoot(ctx context.Context, input *ClaimLootInput) (*ClaimLootOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if !input.EquipmentType.IsValid() {
		vb.InvalidField("equipment_type", "must be WEAPON or ARMOR")
	}
	if input.TargetScore < 0 {
		vb.InvalidField("target_score", "must not be negative")
	}
	if input.TargetScore == 0 {
		errors.ValidateRange("qualities", len(input.Qualities), 1, 3, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	p, err := o.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	loot, err := o.engine.GenerateLoot(ctx, &engine.GenerateLootInput{
		EquipmentType: input.EquipmentType,
		Qualities:     input.Qualities,
		PlayerLevel:   p.Level,
		BossDrop:      input.BossDrop,
		TargetScore:   input.TargetScore,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll loot")
	}
	equipment := loot.Equipment
	equipment.ID = o.equipIDs.Generate()
	p.Inventory = append(p.Inventory, *equipment)

	saved, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}

	slog.Info("Loot claimed",
		"player_id", p.ID,
		"equipment_id", equipment.ID,
		"quality", equipment.Quality,
		"score", equipment.Score,
		"boss_drop", input.BossDrop,
	)

	return &ClaimLootOutput{Player: saved.Player, Equipment: equipment}, nil
}

func (o *orchestrator) getPlayer(ctx context.Context, playerID string) (*forge.Player, error) {
	out, err := o.playerRepo.Get(ctx, playerrepo.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get player")
	}
	return out.Player, nil
}

func spend(p *forge.Player, price int) *errors.Error {
	if p.Gold < price {
		return errors.FailedPrecondition("not enough gold").
			WithMeta("gold", p.Gold).
			WithMeta("price", price)
	}
	p.Gold -= price
	return nil
}
