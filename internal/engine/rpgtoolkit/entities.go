package rpgtoolkit

import "github.com/KirkDiggler/forge-api/internal/entities/forge"

// Entity types used as event sources and targets
const (
	EntityTypePlayer       = "player"
	EntityTypeForgeSession = "forge_session"
	EntityTypeEquipment    = "equipment"
)

// PlayerEntity wraps forge.Player to implement core.Entity interface
type PlayerEntity struct {
	*forge.Player
}

// GetID returns the player's ID
func (p *PlayerEntity) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerEntity) GetType() string {
	return EntityTypePlayer
}

// SessionEntity wraps a forge session with the ID it is stored under
type SessionEntity struct {
	ID string
	*forge.Session
}

// GetID returns the session's ID
func (s *SessionEntity) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SessionEntity) GetType() string {
	return EntityTypeForgeSession
}

// EquipmentEntity wraps forge.Equipment to implement core.Entity interface
type EquipmentEntity struct {
	*forge.Equipment
}

// GetID returns the equipment's ID
func (e *EquipmentEntity) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *EquipmentEntity) GetType() string {
	return EntityTypeEquipment
}

// WrapPlayer converts a forge.Player to a PlayerEntity
func WrapPlayer(player *forge.Player) *PlayerEntity {
	return &PlayerEntity{Player: player}
}

// WrapSession converts a stored session to a SessionEntity
func WrapSession(id string, session *forge.Session) *SessionEntity {
	return &SessionEntity{ID: id, Session: session}
}

// WrapEquipment converts a forge.Equipment to an EquipmentEntity
func WrapEquipment(equipment *forge.Equipment) *EquipmentEntity {
	return &EquipmentEntity{Equipment: equipment}
}
