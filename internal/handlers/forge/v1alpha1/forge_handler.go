package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/forge-api/internal/engine/forging"
	entity "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/forge"
	forgesession "github.com/KirkDiggler/forge-api/internal/repositories/forge_session"
)

// ForgeHandlerConfig holds dependencies for the forge handler
type ForgeHandlerConfig struct {
	ForgeService forge.Service
}

// Validate ensures all required dependencies are present
func (c *ForgeHandlerConfig) Validate() error {
	if c.ForgeService == nil {
		return errors.InvalidArgument("forge service is required")
	}
	return nil
}

// ForgeHandler implements ForgeServiceServer
type ForgeHandler struct {
	forgeService forge.Service
}

// NewForgeHandler creates a new forge handler with the given configuration
func NewForgeHandler(cfg *ForgeHandlerConfig) (*ForgeHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ForgeHandler{forgeService: cfg.ForgeService}, nil
}

// StartForge lights the forge with the given materials
func (h *ForgeHandler) StartForge(ctx context.Context, req *StartForgeRequest) (*StartForgeResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.forgeService.StartForge(ctx, &forge.StartForgeInput{
		PlayerID:      req.PlayerID,
		MaterialIDs:   req.MaterialIDs,
		EquipmentType: entity.EquipmentType(req.EquipmentType),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartForgeResponse{Session: convertRecord(out.Record)}, nil
}

// GetForge returns the player's active session
func (h *ForgeHandler) GetForge(ctx context.Context, req *GetForgeRequest) (*GetForgeResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.forgeService.GetForge(ctx, &forge.GetForgeInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetForgeResponse{Session: convertRecord(out.Record)}, nil
}

// ExecuteAction runs one forge action
func (h *ForgeHandler) ExecuteAction(ctx context.Context, req *ExecuteActionRequest) (*ExecuteActionResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.Action == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("action is required"))
	}

	out, err := h.forgeService.ExecuteAction(ctx, &forge.ExecuteActionInput{
		PlayerID: req.PlayerID,
		Action:   entity.Action(req.Action),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ExecuteActionResponse{
		Session:       convertRecord(out.Record),
		MaterialsLost: out.MaterialsLost,
	}, nil
}

// ApplyDebuff curses the active session
func (h *ForgeHandler) ApplyDebuff(ctx context.Context, req *ApplyDebuffRequest) (*ApplyDebuffResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.Debuff == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("debuff is required"))
	}

	out, err := h.forgeService.ApplyDebuff(ctx, &forge.ApplyDebuffInput{
		PlayerID: req.PlayerID,
		Debuff:   entity.Debuff(req.Debuff),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ApplyDebuffResponse{Session: convertRecord(out.Record)}, nil
}

// CompleteForge seals the session and returns the forged item
func (h *ForgeHandler) CompleteForge(ctx context.Context, req *CompleteForgeRequest) (*CompleteForgeResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.forgeService.CompleteForge(ctx, &forge.CompleteForgeInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CompleteForgeResponse{
		Equipment:    out.Equipment,
		QualityScore: out.Session.QualityScore,
		Logs:         out.Session.Logs,
		Player:       out.Player,
	}, nil
}

// AbandonForge drops the active session
func (h *ForgeHandler) AbandonForge(ctx context.Context, req *AbandonForgeRequest) (*AbandonForgeResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.forgeService.AbandonForge(ctx, &forge.AbandonForgeInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AbandonForgeResponse{SessionID: out.SessionID}, nil
}

func convertRecord(record *forgesession.Record) *ForgeSession {
	if record == nil {
		return nil
	}

	view := &ForgeSession{
		SessionID:     record.SessionID,
		PlayerID:      record.PlayerID,
		EquipmentType: string(record.EquipmentType),
		State:         record.Session,
	}
	if !record.ExpiresAt.IsZero() {
		view.ExpiresAt = record.ExpiresAt.Unix()
	}

	s := record.Session
	if s == nil {
		return view
	}
	view.Zone = string(forging.ClassifyZone(s.Temperature))
	if s.Status == entity.StatusActive {
		view.LightCost = forging.ComputeCost(s, entity.ActionLight)
		view.HeavyCost = forging.ComputeCost(s, entity.ActionHeavy)
		view.CanPolish = forging.CheckAction(s, entity.ActionPolish) == nil
		view.CanComplete = forging.CheckComplete(s) == nil
	}
	return view
}
