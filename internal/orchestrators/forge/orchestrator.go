// Package forge implements the forge orchestrator. It owns the lifecycle of
// a player's forge session: lighting the forge from owned materials, running
// actions through the engine, and settling the player document when the
// piece breaks or is sealed.
package forge

//go:generate mockgen -destination=mock/mock_service.go -package=forgemock github.com/KirkDiggler/forge-api/internal/orchestrators/forge Service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/forge-api/internal/engine"
	"github.com/KirkDiggler/forge-api/internal/engine/forging"
	"github.com/KirkDiggler/forge-api/internal/engine/rpgtoolkit"
	entity "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/pkg/idgen"
	forgesession "github.com/KirkDiggler/forge-api/internal/repositories/forge_session"
	playerrepo "github.com/KirkDiggler/forge-api/internal/repositories/player"
)

// DefaultSessionTTL is how long an untouched session survives
const DefaultSessionTTL = 2 * time.Hour

// Service defines the interface for forge session operations
type Service interface {
	// StartForge lights the forge with the given materials
	StartForge(ctx context.Context, input *StartForgeInput) (*StartForgeOutput, error)

	// GetForge returns the player's active session
	GetForge(ctx context.Context, input *GetForgeInput) (*GetForgeOutput, error)

	// ExecuteAction runs one action on the active session
	ExecuteAction(ctx context.Context, input *ExecuteActionInput) (*ExecuteActionOutput, error)

	// ApplyDebuff curses the active session; the next Light or Heavy pays for it
	ApplyDebuff(ctx context.Context, input *ApplyDebuffInput) (*ApplyDebuffOutput, error)

	// CompleteForge seals the session and adds the forged item to the inventory
	CompleteForge(ctx context.Context, input *CompleteForgeInput) (*CompleteForgeOutput, error)

	// AbandonForge drops the active session; the materials are kept
	AbandonForge(ctx context.Context, input *AbandonForgeInput) (*AbandonForgeOutput, error)
}

// Config holds the dependencies for the forge orchestrator
type Config struct {
	PlayerRepo  playerrepo.Repository
	SessionRepo forgesession.Repository
	Engine      engine.Engine
	EventBus    events.EventBus

	// SessionIDGenerator names sessions; EquipmentIDGenerator names forged items
	SessionIDGenerator   idgen.Generator
	EquipmentIDGenerator idgen.Generator

	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.SessionIDGenerator == nil {
		vb.RequiredField("SessionIDGenerator")
	}
	if c.EquipmentIDGenerator == nil {
		vb.RequiredField("EquipmentIDGenerator")
	}
	if c.SessionTTL < 0 {
		vb.InvalidField("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo  playerrepo.Repository
	sessionRepo forgesession.Repository
	engine      engine.Engine
	eventBus    events.EventBus
	sessionIDs  idgen.Generator
	equipIDs    idgen.Generator
	sessionTTL  time.Duration
}

// NewOrchestrator creates a new forge orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}

	return &orchestrator{
		playerRepo:  cfg.PlayerRepo,
		sessionRepo: cfg.SessionRepo,
		engine:      cfg.Engine,
		eventBus:    cfg.EventBus,
		sessionIDs:  cfg.SessionIDGenerator,
		equipIDs:    cfg.EquipmentIDGenerator,
		sessionTTL:  ttl,
	}, nil
}

// StartForge lights the forge with the given materials
func (o *orchestrator) StartForge(ctx context.Context, input *StartForgeInput) (*StartForgeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRange("material_ids", len(input.MaterialIDs), 1, forging.MaxMaterials, vb)
	if !input.EquipmentType.IsValid() {
		vb.InvalidField("equipment_type", "must be WEAPON or ARMOR")
	}
	seen := make(map[string]struct{}, len(input.MaterialIDs))
	for _, id := range input.MaterialIDs {
		if _, dup := seen[id]; dup {
			vb.Fieldf("material_ids", "material %s selected more than once", id)
		}
		seen[id] = struct{}{}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	player, err := o.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	materials := make([]entity.Material, 0, len(input.MaterialIDs))
	for _, id := range input.MaterialIDs {
		m, ok := player.FindMaterial(id)
		if !ok {
			return nil, errors.NotFound("material not owned by player").
				WithMeta("player_id", player.ID).
				WithMeta("material_id", id)
		}
		materials = append(materials, m)
	}

	started, err := o.engine.StartSession(ctx, &engine.StartSessionInput{
		Materials:       materials,
		PlayerLevel:     player.Level,
		UnlockedTalents: player.UnlockedTalents,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start session")
	}

	created, err := o.sessionRepo.Create(ctx, forgesession.CreateInput{
		Record: &forgesession.Record{
			PlayerID:      player.ID,
			SessionID:     o.sessionIDs.Generate(),
			EquipmentType: input.EquipmentType,
			Session:       started.Session,
		},
		TTL: o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}
	record := created.Record

	o.publish(ctx, EventSessionStarted, player, record, map[string]any{
		"material_ids":   input.MaterialIDs,
		"equipment_type": string(record.EquipmentType),
		"max_durability": record.Session.MaxDurability,
	})

	slog.Info("Forge lit",
		"player_id", player.ID,
		"session_id", record.SessionID,
		"materials", len(materials),
		"equipment_type", record.EquipmentType,
	)

	return &StartForgeOutput{Record: record}, nil
}

// GetForge returns the player's active session
func (o *orchestrator) GetForge(ctx context.Context, input *GetForgeInput) (*GetForgeOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	record, err := o.getRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetForgeOutput{Record: record}, nil
}

// ExecuteAction runs one action on the active session. A broken piece
// destroys its materials and ends the session.
func (o *orchestrator) ExecuteAction(ctx context.Context, input *ExecuteActionInput) (*ExecuteActionOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if !input.Action.IsValid() {
		return nil, errors.InvalidArgumentf("unknown forge action %q", input.Action).
			WithMeta("action", string(input.Action))
	}

	record, err := o.getRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	executed, err := o.engine.ExecuteAction(ctx, &engine.ExecuteActionInput{
		Session: record.Session,
		Action:  input.Action,
	})
	if err != nil {
		return nil, errors.Wrap(err, "action rejected")
	}
	record.Session = executed.Session

	o.publish(ctx, EventActionExecuted, nil, record, map[string]any{
		"action":        string(input.Action),
		"turn":          record.Session.TurnCount,
		"durability":    record.Session.CurrentDurability,
		"progress":      record.Session.Progress,
		"quality_score": record.Session.QualityScore,
	})

	if record.Session.Status == entity.StatusFailure {
		lost, err := o.settleFailure(ctx, record)
		if err != nil {
			return nil, err
		}
		return &ExecuteActionOutput{Record: record, MaterialsLost: lost}, nil
	}

	if _, err := o.sessionRepo.Update(ctx, forgesession.UpdateInput{Record: record}); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	slog.Debug("Forge action executed",
		"player_id", record.PlayerID,
		"session_id", record.SessionID,
		"action", input.Action,
		"turn", record.Session.TurnCount,
		"durability", record.Session.CurrentDurability,
		"progress", record.Session.Progress,
		"score", record.Session.QualityScore,
	)

	return &ExecuteActionOutput{Record: record}, nil
}

// ApplyDebuff curses the active session; the next Light or Heavy pays for it
func (o *orchestrator) ApplyDebuff(ctx context.Context, input *ApplyDebuffInput) (*ApplyDebuffOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.Debuff == entity.DebuffNone || !input.Debuff.IsValid() {
		return nil, errors.InvalidArgumentf("unknown debuff %q", input.Debuff).
			WithMeta("debuff", string(input.Debuff))
	}

	record, err := o.getRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	applied, err := o.engine.ApplyDebuff(ctx, &engine.ApplyDebuffInput{
		Session: record.Session,
		Debuff:  input.Debuff,
	})
	if err != nil {
		return nil, errors.Wrap(err, "debuff rejected")
	}
	record.Session = applied.Session

	if _, err := o.sessionRepo.Update(ctx, forgesession.UpdateInput{Record: record}); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	o.publish(ctx, EventDebuffApplied, nil, record, map[string]any{
		"debuff": string(input.Debuff),
		"turn":   record.Session.TurnCount,
	})

	slog.Info("Forge debuff applied",
		"player_id", record.PlayerID,
		"session_id", record.SessionID,
		"debuff", input.Debuff,
	)

	return &ApplyDebuffOutput{Record: record}, nil
}

// settleFailure removes a broken session and the materials it consumed
func (o *orchestrator) settleFailure(ctx context.Context, record *forgesession.Record) ([]string, error) {
	if _, err := o.sessionRepo.Delete(ctx, forgesession.DeleteInput{PlayerID: record.PlayerID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete broken session")
	}

	player, err := o.getPlayer(ctx, record.PlayerID)
	if err != nil {
		return nil, err
	}

	lost := materialIDs(record.Session.Materials)
	player.RemoveMaterials(lost...)
	if _, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: player}); err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}

	o.publish(ctx, EventSessionFailed, player, record, map[string]any{
		"materials_lost": lost,
		"turn":           record.Session.TurnCount,
		"quality_score":  record.Session.QualityScore,
	})

	slog.Info("Forge session failed",
		"player_id", player.ID,
		"session_id", record.SessionID,
		"turns", record.Session.TurnCount,
		"materials_lost", len(lost),
	)

	return lost, nil
}

// CompleteForge seals the session and adds the forged item to the inventory
func (o *orchestrator) CompleteForge(ctx context.Context, input *CompleteForgeInput) (*CompleteForgeOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	record, err := o.getRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	player, err := o.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if record.Equipment == nil {
		if err := o.sealRecord(ctx, record, player.Level); err != nil {
			return nil, err
		}
	}
	session := record.Session
	equipment := record.Equipment

	saved := player
	if !slices.ContainsFunc(player.Inventory, func(e entity.Equipment) bool { return e.ID == equipment.ID }) {
		player.RemoveMaterials(materialIDs(session.Materials)...)
		player.Inventory = append(player.Inventory, *equipment)
		player.MaxScore = max(player.MaxScore, session.QualityScore)

		out, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: player})
		if err != nil {
			return nil, errors.Wrap(err, "failed to save player")
		}
		saved = out.Player
	}

	if _, err := o.sessionRepo.Delete(ctx, forgesession.DeleteInput{PlayerID: player.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete completed session")
	}

	o.publish(ctx, EventSessionCompleted, player, record, map[string]any{
		"equipment":     rpgtoolkit.WrapEquipment(equipment),
		"equipment_id":  equipment.ID,
		"quality":       equipment.Quality.String(),
		"quality_score": session.QualityScore,
		"value":         equipment.Value,
	})

	slog.Info("Forge session completed",
		"player_id", player.ID,
		"session_id", record.SessionID,
		"equipment_id", equipment.ID,
		"quality", equipment.Quality,
		"score", session.QualityScore,
	)

	return &CompleteForgeOutput{
		Equipment: equipment,
		Player:    saved,
		Session:   session,
	}, nil
}

// sealRecord completes and finalizes the session and stores the item on the
// record before the player is touched, so a retry never mints a second item
func (o *orchestrator) sealRecord(ctx context.Context, record *forgesession.Record, playerLevel int) error {
	completed, err := o.engine.CompleteSession(ctx, &engine.CompleteSessionInput{Session: record.Session})
	if err != nil {
		return errors.Wrap(err, "session cannot be completed")
	}

	finalized, err := o.engine.FinalizeSession(ctx, &engine.FinalizeSessionInput{
		Session:       completed.Session,
		EquipmentType: record.EquipmentType,
		PlayerLevel:   playerLevel,
	})
	if err != nil {
		return errors.Wrap(err, "failed to finalize session")
	}
	equipment := finalized.Equipment
	equipment.ID = o.equipIDs.Generate()

	record.Session = completed.Session
	record.Equipment = equipment
	if _, err := o.sessionRepo.Update(ctx, forgesession.UpdateInput{Record: record}); err != nil {
		return errors.Wrap(err, "failed to seal session")
	}
	return nil
}

// AbandonForge drops the active session; the materials are kept
func (o *orchestrator) AbandonForge(ctx context.Context, input *AbandonForgeInput) (*AbandonForgeOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	record, err := o.getRecord(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if _, err := o.sessionRepo.Delete(ctx, forgesession.DeleteInput{PlayerID: input.PlayerID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete session")
	}

	slog.Info("Forge session abandoned",
		"player_id", input.PlayerID,
		"session_id", record.SessionID,
		"turns", record.Session.TurnCount,
	)

	return &AbandonForgeOutput{SessionID: record.SessionID}, nil
}

func (o *orchestrator) getPlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	out, err := o.playerRepo.Get(ctx, playerrepo.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get player")
	}
	return out.Player, nil
}

func (o *orchestrator) getRecord(ctx context.Context, playerID string) (*forgesession.Record, error) {
	out, err := o.sessionRepo.Get(ctx, forgesession.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get forge session")
	}
	return out.Record, nil
}

func materialIDs(materials []entity.Material) []string {
	ids := make([]string, len(materials))
	for i, m := range materials {
		ids[i] = m.ID
	}
	return ids
}
