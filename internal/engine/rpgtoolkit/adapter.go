// Package rpgtoolkit provides the concrete implementation of the engine
// interface: the forging state machine with randomness drawn from
// rpg-toolkit dice.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/forge-api/internal/engine"
	"github.com/KirkDiggler/forge-api/internal/engine/forging"
	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	randomizer forging.Randomizer
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller

	// Randomizer replaces the dice roller when set, e.g. a seeded source
	// for replays
	Randomizer forging.Randomizer
}

// Validate checks that a randomness source is provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil && c.Randomizer == nil {
		return errors.InvalidArgument("dice roller or randomizer is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	randomizer := cfg.Randomizer
	if randomizer == nil {
		randomizer = NewDiceRandomizer(cfg.DiceRoller)
	}

	return &Adapter{randomizer: randomizer}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// StartSession validates the material count and creates the session
func (a *Adapter) StartSession(
	ctx context.Context,
	input *engine.StartSessionInput,
) (*engine.StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	count := len(input.Materials)
	errors.ValidateRange("materials", count, 1, forging.MaxMaterials, vb)
	if input.PlayerLevel < 0 {
		vb.Field("player_level", "must not be negative")
	}
	for _, m := range input.Materials {
		if !m.Quality.IsValid() {
			vb.InvalidField("materials", "material "+m.ID+" has no quality")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session := forging.CreateSession(input.Materials, input.PlayerLevel, input.UnlockedTalents)
	slog.Debug("forge session created",
		"materials", count,
		"max_durability", session.MaxDurability,
		"player_level", session.PlayerLevel)

	return &engine.StartSessionOutput{Session: session}, nil
}

// ExecuteAction runs one action on the session
func (a *Adapter) ExecuteAction(
	ctx context.Context,
	input *engine.ExecuteActionInput,
) (*engine.ExecuteActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := forging.CheckAction(input.Session, input.Action); err != nil {
		return nil, err
	}

	return &engine.ExecuteActionOutput{
		Session: forging.ExecuteAction(input.Session, input.Action, a.randomizer),
	}, nil
}

// CompleteSession seals the session
func (a *Adapter) CompleteSession(
	ctx context.Context,
	input *engine.CompleteSessionInput,
) (*engine.CompleteSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := forging.CheckComplete(input.Session); err != nil {
		return nil, err
	}

	return &engine.CompleteSessionOutput{Session: forging.CompleteSession(input.Session)}, nil
}

// ApplyDebuff sets the debuff the next strike consumes
func (a *Adapter) ApplyDebuff(
	ctx context.Context,
	input *engine.ApplyDebuffInput,
) (*engine.ApplyDebuffOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	if !input.Debuff.IsValid() {
		return nil, errors.InvalidArgumentf("unknown debuff %q", input.Debuff)
	}
	if input.Session.Status != forge.StatusActive {
		return nil, errors.FailedPrecondition("only an active session can be debuffed").
			WithMeta("status", string(input.Session.Status))
	}

	return &engine.ApplyDebuffOutput{Session: forging.ApplyDebuff(input.Session, input.Debuff)}, nil
}

// FinalizeSession rolls equipment from a sealed session
func (a *Adapter) FinalizeSession(
	ctx context.Context,
	input *engine.FinalizeSessionInput,
) (*engine.FinalizeSessionOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	if !input.EquipmentType.IsValid() {
		return nil, errors.InvalidArgumentf("unknown equipment type %q", input.EquipmentType)
	}
	if input.Session.Status != forge.StatusSuccess {
		return nil, errors.FailedPrecondition("only a completed session can be finalized").
			WithMeta("status", string(input.Session.Status))
	}

	return &engine.FinalizeSessionOutput{
		Equipment: forging.Finalize(input.Session, input.EquipmentType, input.PlayerLevel, a.randomizer),
	}, nil
}

// GenerateLoot rolls a dungeon drop, or a blacksmith reward when a target
// score is given
func (a *Adapter) GenerateLoot(
	ctx context.Context,
	input *engine.GenerateLootInput,
) (*engine.GenerateLootOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.EquipmentType.IsValid() {
		return nil, errors.InvalidArgumentf("unknown equipment type %q", input.EquipmentType)
	}

	if input.TargetScore > 0 {
		return &engine.GenerateLootOutput{
			Equipment: forging.GenerateBlacksmithReward(
				input.TargetScore, input.EquipmentType, input.PlayerLevel, a.randomizer),
		}, nil
	}

	if len(input.Qualities) == 0 {
		return nil, errors.InvalidArgument("qualities or target score is required")
	}
	for _, q := range input.Qualities {
		if !q.IsValid() {
			return nil, errors.InvalidArgumentf("invalid material quality %d", q)
		}
	}

	return &engine.GenerateLootOutput{
		Equipment: forging.GenerateEquipment(
			input.EquipmentType, input.Qualities, input.PlayerLevel, input.BossDrop, a.randomizer),
	}, nil
}
