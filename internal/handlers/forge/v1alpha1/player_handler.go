package v1alpha1

import (
	"context"

	entity "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/player"
)

// PlayerHandlerConfig holds dependencies for the player handler
type PlayerHandlerConfig struct {
	PlayerService player.Service
}

// Validate ensures all required dependencies are present
func (c *PlayerHandlerConfig) Validate() error {
	if c.PlayerService == nil {
		return errors.InvalidArgument("player service is required")
	}
	return nil
}

// PlayerHandler implements PlayerServiceServer
type PlayerHandler struct {
	playerService player.Service
}

// NewPlayerHandler creates a new player handler with the given configuration
func NewPlayerHandler(cfg *PlayerHandlerConfig) (*PlayerHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &PlayerHandler{playerService: cfg.PlayerService}, nil
}

// CreatePlayer creates a player with the starter kit
func (h *PlayerHandler) CreatePlayer(ctx context.Context, req *CreatePlayerRequest) (*CreatePlayerResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.playerService.CreatePlayer(ctx, &player.CreatePlayerInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CreatePlayerResponse{Player: out.Player}, nil
}

// GetPlayer loads a player
func (h *PlayerHandler) GetPlayer(ctx context.Context, req *GetPlayerRequest) (*GetPlayerResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.playerService.GetPlayer(ctx, &player.GetPlayerInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetPlayerResponse{Player: out.Player}, nil
}

// BuyMaterial buys a shop material
func (h *PlayerHandler) BuyMaterial(ctx context.Context, req *BuyMaterialRequest) (*BuyMaterialResponse, error) {
	out, err := h.playerService.BuyMaterial(ctx, &player.BuyMaterialInput{
		PlayerID:   req.PlayerID,
		MaterialID: req.MaterialID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BuyMaterialResponse{Material: out.Material, Player: out.Player}, nil
}

// UnlockTalent unlocks a talent
func (h *PlayerHandler) UnlockTalent(ctx context.Context, req *UnlockTalentRequest) (*UnlockTalentResponse, error) {
	out, err := h.playerService.UnlockTalent(ctx, &player.UnlockTalentInput{
		PlayerID: req.PlayerID,
		TalentID: req.TalentID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UnlockTalentResponse{Talent: out.Talent, Player: out.Player}, nil
}

// SellEquipment sells an inventory item
func (h *PlayerHandler) SellEquipment(ctx context.Context, req *SellEquipmentRequest) (*SellEquipmentResponse, error) {
	out, err := h.playerService.SellEquipment(ctx, &player.SellEquipmentInput{
		PlayerID:    req.PlayerID,
		EquipmentID: req.EquipmentID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SellEquipmentResponse{GoldEarned: out.GoldEarned, Player: out.Player}, nil
}

// ClaimLoot adds a dropped or rewarded item to the inventory
func (h *PlayerHandler) ClaimLoot(ctx context.Context, req *ClaimLootRequest) (*ClaimLootResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	var qualities []entity.Quality
	for _, q := range req.Qualities {
		qualities = append(qualities, entity.Quality(q))
	}

	out, err := h.playerService.ClaimLoot(ctx, &player.ClaimLootInput{
		PlayerID:      req.PlayerID,
		EquipmentType: entity.EquipmentType(req.EquipmentType),
		Qualities:     qualities,
		BossDrop:      req.BossDrop,
		TargetScore:   req.TargetScore,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClaimLootResponse{Equipment: out.Equipment, Player: out.Player}, nil
}
