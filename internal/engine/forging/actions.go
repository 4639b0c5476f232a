package forging

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// turn carries the working state of one ExecuteAction call
type turn struct {
	s       *forge.Session
	action  forge.Action
	rng     Randomizer
	effects []activeEffect

	// zone is classified from the temperature the action starts at and is
	// used for both cost and score
	zone forge.Zone

	miracle bool
	dulled  bool
	combo   bool
	cost    int

	progress   int
	base       float64
	actionMult float64
	scored     bool
	focusGain  int
	focusSpent int

	tags []string
}

func newTurn(s *forge.Session, action forge.Action, rng Randomizer) *turn {
	return &turn{
		s:          s,
		action:     action,
		rng:        rng,
		effects:    activeEffects(s.Materials),
		zone:       ClassifyZone(s.Temperature),
		actionMult: 1,
	}
}

func (t *turn) runHooks(pick func(effectHooks) hookFunc) {
	for _, e := range t.effects {
		if fn := pick(e.hooks); fn != nil {
			fn(t, e.strength)
		}
	}
}

func (t *turn) tag(label string) {
	t.tags = append(t.tags, label)
}

// heal restores durability up to the maximum and returns the amount gained
func (t *turn) heal(amount int) int {
	before := t.s.CurrentDurability
	t.s.CurrentDurability = min(t.s.MaxDurability, t.s.CurrentDurability+amount)
	return t.s.CurrentDurability - before
}

func (t *turn) heat(amount int) {
	gain := floorInt(float64(amount) * heatFactor(t.effects))
	t.s.Temperature = clampTemperature(t.s.Temperature + gain)
}

// payCost settles this turn's durability cost. Strikes consume the active
// debuff here so it applies even if the piece breaks on the cost.
func (t *turn) payCost() {
	switch t.action {
	case forge.ActionLight, forge.ActionHeavy:
		t.cost = ComputeCost(t.s, t.action)
		switch t.s.ActiveDebuff {
		case forge.DebuffHardened:
			t.tag("Hardened")
		case forge.DebuffDulled:
			t.dulled = true
			t.tag("Dulled")
		}
		t.s.ActiveDebuff = forge.DebuffNone
	case forge.ActionPolish:
		t.cost = t.rng.IntRange(0, PolishMaxCost(t.s.PolishCount))
		t.base = float64(PolishScore(t.s.PolishCount))
		t.runHooks(func(h effectHooks) hookFunc { return h.polish })
	}

	if t.miracle {
		t.cost = 0
	}
}

func (t *turn) light() {
	s := t.s
	t.heat(LightHeat)

	t.progress = t.rng.IntRange(LightProgressMin, LightProgressMax)
	base := t.rng.IntRange(LightScoreMin, LightScoreMax)
	if s.HasTalent(TalentLightScore) {
		base += LightTalentScore
	}
	t.base = float64(base)
	t.scored = true

	t.combo = s.ComboActive
	t.focusGain = 1
	if t.combo {
		s.ComboActive = false
		t.focusGain = 2
		t.tag("Combo")
	}

	t.runHooks(func(h effectHooks) hookFunc { return h.light })

	if t.combo && s.HasTalent(TalentAftershock) && chance(t.rng, AftershockChance) {
		t.actionMult *= 2
		t.tag("Aftershock")
	}

	s.Focus = clamp(s.Focus+t.focusGain, 0, s.MaxFocus)
	t.runHooks(func(h effectHooks) hookFunc { return h.score })
}

func (t *turn) heavy() {
	s := t.s
	t.heat(HeavyHeat)
	s.ComboActive = true

	t.focusSpent = s.Focus
	t.actionMult = 1 + float64(t.focusSpent)*FocusScoreStep
	progressMult := 1 + float64(t.focusSpent)*FocusProgressStep
	s.Focus = 0

	t.progress = floorInt(float64(t.rng.IntRange(HeavyProgressMin, HeavyProgressMax)) * progressMult)
	t.base = float64(t.rng.IntRange(HeavyScoreMin, HeavyScoreMax))
	t.scored = true

	t.runHooks(func(h effectHooks) hookFunc { return h.heavy })
	t.runHooks(func(h effectHooks) hookFunc { return h.score })
}

func (t *turn) quench() {
	s := t.s
	temperature, durability := s.Temperature, s.CurrentDurability
	s.Temperature = clampTemperature(s.Temperature - QuenchCooling)

	restore := QuenchRestore
	if s.HasTalent(TalentQuenchRestore) {
		restore += QuenchTalentRestore
	}
	t.heal(restore)

	t.runHooks(func(h effectHooks) hookFunc { return h.quench })

	if s.HasTalent(TalentQuickQuench) && chance(t.rng, QuickQuenchChance) {
		s.TurnCount--
		t.tag("Quick quench")
	}

	t.logf("Quench: temperature -%d, durability +%d", temperature-s.Temperature, s.CurrentDurability-durability)
}

func (t *turn) polish() {
	t.scored = true
	t.s.PolishCount++
}

// accumulate applies the global multipliers and adds progress and score
func (t *turn) accumulate() {
	if !t.scored {
		return
	}

	s := t.s
	s.ScoreMultiplier = RecomputeMultiplier(s)

	score := t.base * t.actionMult * s.ScoreMultiplier * LevelScale(s.PlayerLevel)
	if t.action != forge.ActionPolish {
		score *= ZoneScoreMultiplier(s, t.zone)
		if t.dulled {
			score *= 0.5
		}
	}
	if t.miracle {
		score *= 2
	}
	gain := floorInt(score)

	s.Progress = min(MaxProgress, s.Progress+t.progress)
	s.QualityScore += gain

	switch t.action {
	case forge.ActionPolish:
		t.logf("Polish (Lv.%d): -%d durability, score +%d", s.PolishCount, t.cost, gain)
	case forge.ActionHeavy:
		t.logf("Heavy strike (focus x%d): -%d durability, progress +%d%%, score +%d",
			t.focusSpent, t.cost, t.progress, gain)
	default:
		t.logf("Light strike: -%d durability, progress +%d%%, score +%d", t.cost, t.progress, gain)
	}
}

func (t *turn) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if len(t.tags) > 0 {
		line += " [" + strings.Join(t.tags, "] [") + "]"
	}
	t.s.PrependLog(line)
}

// checkDeath resolves a turn that left the piece without durability:
// a death save, then breakage immunity, else failure
func (t *turn) checkDeath() {
	s := t.s
	if s.CurrentDurability > 0 {
		return
	}

	for _, e := range t.effects {
		if e.hooks.death != nil && e.hooks.death(t, e.strength) {
			return
		}
	}

	s.CurrentDurability = 0
	s.Status = forge.StatusFailure
	s.PrependLog("Durability exhausted! The piece shattered...")
}
