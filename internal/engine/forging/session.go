// Package forging implements the forge session state machine: the effect
// registry, the heat zone and cost calculators, the four forge actions and
// the finalizer that turns a sealed session into equipment.
//
// Every entry point is synchronous and returns a new session value; the
// input session is never mutated. All randomness is drawn from the
// Randomizer passed in, in a fixed order, so a scripted or seeded
// Randomizer replays a session exactly.
package forging

import (
	"fmt"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
)

// CreateSession starts a forge session from 1-3 materials
func CreateSession(materials []forge.Material, playerLevel int, unlockedTalents []string) *forge.Session {
	s := &forge.Session{
		PlayerLevel:     playerLevel,
		MaxDurability:   BaseDurability + playerLevel*DurabilityPerLevel,
		MaxFocus:        MaxFocus,
		Status:          forge.StatusActive,
		Logs:            []string{"The forge is lit. Choose your technique..."},
		Materials:       append([]forge.Material(nil), materials...),
		UnlockedTalents: append([]string(nil), unlockedTalents...),
	}

	if s.HasTalent(TalentDurabilityBonus) {
		s.MaxDurability += TalentDurabilityAmount
	}
	if s.HasTalent(TalentDurabilityBonusII) {
		s.MaxDurability += TalentDurabilityIIBonus
	}

	for _, e := range activeEffects(s.Materials) {
		if e.hooks.create != nil {
			e.hooks.create(s, e.strength)
		}
	}

	s.CurrentDurability = s.MaxDurability
	s.ScoreMultiplier = RecomputeMultiplier(s)
	return s
}

// CheckAction reports why action cannot be executed on the session, or nil
func CheckAction(s *forge.Session, action forge.Action) error {
	if s == nil {
		return errors.InvalidArgument("session is required")
	}
	if !action.IsValid() {
		return errors.InvalidArgumentf("unknown forge action %q", action)
	}
	if s.Status != forge.StatusActive {
		return errors.FailedPreconditionf("session is %s", s.Status).
			WithMeta("status", string(s.Status))
	}
	if action == forge.ActionPolish && !s.IsTempering() {
		return errors.FailedPrecondition("polish requires full progress").
			WithMeta("progress", s.Progress)
	}
	return nil
}

// CheckComplete reports why the session cannot be sealed, or nil
func CheckComplete(s *forge.Session) error {
	if s == nil {
		return errors.InvalidArgument("session is required")
	}
	if s.Status != forge.StatusActive {
		return errors.FailedPreconditionf("session is %s", s.Status).
			WithMeta("status", string(s.Status))
	}
	if !s.IsTempering() {
		return errors.FailedPrecondition("session can only be completed at full progress").
			WithMeta("progress", s.Progress)
	}
	return nil
}

// ExecuteAction runs one forge action and returns the resulting session.
// Rejected actions (see CheckAction) return the input session unchanged.
//
// Within a turn the order is fixed: turn count, miracle roll, cost, deduct,
// the action itself (skipped when the deduction broke the piece), score
// adjustments and multiplier, accumulate, death check.
func ExecuteAction(s *forge.Session, action forge.Action, rng Randomizer) *forge.Session {
	if CheckAction(s, action) != nil {
		return s
	}

	next := s.Clone()
	next.TurnCount++

	t := newTurn(next, action, rng)
	t.runHooks(func(h effectHooks) hookFunc { return h.preCost })
	t.payCost()

	next.CurrentDurability -= t.cost
	if next.CurrentDurability > 0 {
		switch action {
		case forge.ActionLight:
			t.light()
		case forge.ActionHeavy:
			t.heavy()
		case forge.ActionQuench:
			t.quench()
		case forge.ActionPolish:
			t.polish()
		}
		t.accumulate()
	} else {
		next.PrependLog(fmt.Sprintf("%s costs %d durability; the piece is about to break", actionName(action), t.cost))
	}

	t.checkDeath()
	next.ScoreMultiplier = RecomputeMultiplier(next)
	return next
}

// CompleteSession seals a session at full progress. Any other call returns
// the session unchanged.
func CompleteSession(s *forge.Session) *forge.Session {
	if CheckComplete(s) != nil {
		return s
	}

	next := s.Clone()
	next.Status = forge.StatusSuccess
	next.PrependLog(fmt.Sprintf("Forging complete! Final quality score: %d", next.QualityScore))
	return next
}

// ApplyDebuff sets a one-shot debuff on an active session. The debuff is
// consumed by the next Light or Heavy. The forge actions themselves never
// debuff; outside curses reach it through Engine.ApplyDebuff and the
// ForgeService ApplyDebuff RPC.
func ApplyDebuff(s *forge.Session, debuff forge.Debuff) *forge.Session {
	if s == nil || s.Status != forge.StatusActive || !debuff.IsValid() {
		return s
	}

	next := s.Clone()
	next.ActiveDebuff = debuff
	if debuff != forge.DebuffNone {
		next.PrependLog(fmt.Sprintf("The metal is %s", debuffName(debuff)))
	}
	return next
}

func actionName(action forge.Action) string {
	switch action {
	case forge.ActionLight:
		return "Light strike"
	case forge.ActionHeavy:
		return "Heavy strike"
	case forge.ActionQuench:
		return "Quench"
	case forge.ActionPolish:
		return "Polish"
	default:
		return string(action)
	}
}

func debuffName(debuff forge.Debuff) string {
	switch debuff {
	case forge.DebuffHardened:
		return "hardened (next strike costs double)"
	case forge.DebuffDulled:
		return "dulled (next strike scores half)"
	default:
		return "clean"
	}
}
