package engine

import (
	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// StartSessionInput contains the materials and player state a session starts from
type StartSessionInput struct {
	Materials       []forge.Material
	PlayerLevel     int
	UnlockedTalents []string
}

// StartSessionOutput contains the new session
type StartSessionOutput struct {
	Session *forge.Session
}

// ExecuteActionInput contains the session and the action to run on it
type ExecuteActionInput struct {
	Session *forge.Session
	Action  forge.Action
}

// ExecuteActionOutput contains the session after the action
type ExecuteActionOutput struct {
	Session *forge.Session
}

// CompleteSessionInput contains the session to seal
type CompleteSessionInput struct {
	Session *forge.Session
}

// CompleteSessionOutput contains the sealed session
type CompleteSessionOutput struct {
	Session *forge.Session
}

// ApplyDebuffInput contains the session to curse and the debuff
type ApplyDebuffInput struct {
	Session *forge.Session
	Debuff  forge.Debuff
}

// ApplyDebuffOutput contains the cursed session
type ApplyDebuffOutput struct {
	Session *forge.Session
}

// FinalizeSessionInput contains a sealed session and what to forge from it
type FinalizeSessionInput struct {
	Session       *forge.Session
	EquipmentType forge.EquipmentType
	PlayerLevel   int
}

// FinalizeSessionOutput contains the forged equipment. It has no ID yet.
type FinalizeSessionOutput struct {
	Equipment *forge.Equipment
}

// GenerateLootInput describes a dungeon drop or a blacksmith reward. When
// TargetScore is set the item is rolled around it and Qualities is ignored.
type GenerateLootInput struct {
	EquipmentType forge.EquipmentType
	Qualities     []forge.Quality
	PlayerLevel   int
	BossDrop      bool
	TargetScore   int
}

// GenerateLootOutput contains the rolled equipment
type GenerateLootOutput struct {
	Equipment *forge.Equipment
}
