// Package forge contains the entity types shared by the forge engine, the
// repositories and the transport layer.
package forge

// Quality is the ordinal tier of a material or an equipment item
type Quality int

// Quality tiers
const (
	QualityCommon  Quality = 1
	QualityRefined Quality = 2
	QualityRare    Quality = 3
)

// String returns the display name of the quality tier
func (q Quality) String() string {
	switch q {
	case QualityCommon:
		return "Common"
	case QualityRefined:
		return "Refined"
	case QualityRare:
		return "Rare"
	default:
		return "Unknown"
	}
}

// IsValid reports whether q is one of the three defined tiers
func (q Quality) IsValid() bool {
	return q >= QualityCommon && q <= QualityRare
}

// EffectType tags the modifier a material contributes to a forge session
type EffectType string

// Basic effect types, available from the shop
const (
	EffectDurability    EffectType = "DURABILITY"
	EffectCostReduction EffectType = "COST_REDUCTION"
	EffectScoreMult     EffectType = "SCORE_MULT"
)

// Special effect types, found in dungeons
const (
	EffectNoHeat      EffectType = "SPECIAL_NO_HEAT"
	EffectHeatResist  EffectType = "SPECIAL_HEAT_RESIST"
	EffectMultiHit    EffectType = "SPECIAL_MULTI_HIT"
	EffectComboHeal   EffectType = "SPECIAL_COMBO_HEAL"
	EffectFocusCap    EffectType = "SPECIAL_FOCUS_CAP"
	EffectQuenchFocus EffectType = "SPECIAL_QUENCH_FOCUS"
	EffectPolishBuff  EffectType = "SPECIAL_POLISH_BUFF"
	EffectMiracle     EffectType = "SPECIAL_MIRACLE"
	EffectHeatScore   EffectType = "SPECIAL_HEAT_SCORE"
	EffectBloodPact   EffectType = "SPECIAL_BLOOD_PACT"
	EffectDeathSave   EffectType = "SPECIAL_DEATH_SAVE"
)

// AllEffectTypes lists every known effect tag
var AllEffectTypes = []EffectType{
	EffectDurability,
	EffectCostReduction,
	EffectScoreMult,
	EffectNoHeat,
	EffectHeatResist,
	EffectMultiHit,
	EffectComboHeal,
	EffectFocusCap,
	EffectQuenchFocus,
	EffectPolishBuff,
	EffectMiracle,
	EffectHeatScore,
	EffectBloodPact,
	EffectDeathSave,
}

// IsValid reports whether e is a known effect tag
func (e EffectType) IsValid() bool {
	for _, known := range AllEffectTypes {
		if e == known {
			return true
		}
	}
	return false
}

// Action is one of the four forge actions a player can take
type Action string

// Forge actions
const (
	ActionLight  Action = "LIGHT"
	ActionHeavy  Action = "HEAVY"
	ActionQuench Action = "QUENCH"
	ActionPolish Action = "POLISH"
)

// IsValid reports whether a is a known action
func (a Action) IsValid() bool {
	switch a {
	case ActionLight, ActionHeavy, ActionQuench, ActionPolish:
		return true
	}
	return false
}

// Status is the lifecycle state of a forge session
type Status string

// Session statuses
const (
	StatusActive  Status = "ACTIVE"
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
)

// IsTerminal reports whether no further actions are accepted
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailure
}

// Debuff is a one-shot penalty consumed by the next Light or Heavy action
type Debuff string

// Debuffs
const (
	DebuffNone     Debuff = ""
	DebuffHardened Debuff = "HARDENED"
	DebuffDulled   Debuff = "DULLED"
)

// IsValid reports whether d is a known debuff; DebuffNone clears one
func (d Debuff) IsValid() bool {
	return d == DebuffNone || d == DebuffHardened || d == DebuffDulled
}

// Zone is the heat band a temperature falls into
type Zone string

// Heat zones
const (
	ZoneLow      Zone = "LOW"
	ZoneOptimal  Zone = "OPTIMAL"
	ZoneOverheat Zone = "OVERHEAT"
)

// EquipmentType is the slot a forged item goes into
type EquipmentType string

// Equipment types
const (
	EquipmentWeapon EquipmentType = "WEAPON"
	EquipmentArmor  EquipmentType = "ARMOR"
)

// IsValid reports whether t is a known equipment type
func (t EquipmentType) IsValid() bool {
	return t == EquipmentWeapon || t == EquipmentArmor
}

// StatType identifies an equipment stat
type StatType string

// Stat types, in display order
const (
	StatHP        StatType = "HP"
	StatATK       StatType = "ATK"
	StatDEF       StatType = "DEF"
	StatCrit      StatType = "CRIT"
	StatLifesteal StatType = "LIFESTEAL"
)

// StatOrder is the order stats are displayed in
var StatOrder = []StatType{StatHP, StatATK, StatDEF, StatCrit, StatLifesteal}
