package forge

import (
	entity "github.com/KirkDiggler/forge-api/internal/entities/forge"
	forgesession "github.com/KirkDiggler/forge-api/internal/repositories/forge_session"
)

// StartForgeInput defines the request for lighting the forge
type StartForgeInput struct {
	PlayerID string
	// MaterialIDs are instance ids from the player's materials (1 to 3)
	MaterialIDs   []string
	EquipmentType entity.EquipmentType
}

// StartForgeOutput defines the response for lighting the forge
type StartForgeOutput struct {
	Record *forgesession.Record
}

// GetForgeInput defines the request for the player's active session
type GetForgeInput struct {
	PlayerID string
}

// GetForgeOutput defines the response for the player's active session
type GetForgeOutput struct {
	Record *forgesession.Record
}

// ExecuteActionInput defines the request for one forge action
type ExecuteActionInput struct {
	PlayerID string
	Action   entity.Action
}

// ExecuteActionOutput defines the response for one forge action
type ExecuteActionOutput struct {
	Record *forgesession.Record
	// MaterialsLost lists the material instances destroyed when the piece broke
	MaterialsLost []string
}

// ApplyDebuffInput defines the request for cursing the active session
type ApplyDebuffInput struct {
	PlayerID string
	Debuff   entity.Debuff
}

// ApplyDebuffOutput defines the response for cursing the active session
type ApplyDebuffOutput struct {
	Record *forgesession.Record
}

// CompleteForgeInput defines the request for sealing the session
type CompleteForgeInput struct {
	PlayerID string
}

// CompleteForgeOutput defines the response for sealing the session
type CompleteForgeOutput struct {
	Equipment *entity.Equipment
	Player    *entity.Player
	Session   *entity.Session
}

// AbandonForgeInput defines the request for walking away from the forge
type AbandonForgeInput struct {
	PlayerID string
}

// AbandonForgeOutput defines the response for walking away from the forge
type AbandonForgeOutput struct {
	SessionID string
}
