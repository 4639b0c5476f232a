// Package forgesession stores the one active forge session of each player
package forgesession

import (
	"context"
	"time"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=forgesessionmock github.com/KirkDiggler/forge-api/internal/repositories/forge_session Repository

// Record is a forge session together with what the caller needs to finish it
type Record struct {
	// Player that owns the session; a player has at most one record
	PlayerID string `json:"player_id"`

	// SessionID identifies this attempt in events and logs
	SessionID string `json:"session_id"`

	// EquipmentType is chosen at start and used when the session is finalized
	EquipmentType forge.EquipmentType `json:"equipment_type"`

	Session *forge.Session `json:"session"`

	// Equipment is set once the session is sealed; a completion retry
	// hands out this item instead of finalizing again
	Equipment *forge.Equipment `json:"equipment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateInput contains parameters for storing a new session
type CreateInput struct {
	Record *Record
	TTL    time.Duration // How long the session should live
}

// CreateOutput contains the stored record
type CreateOutput struct {
	Record *Record
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	PlayerID string
}

// GetOutput contains the retrieved record
type GetOutput struct {
	Record *Record
}

// UpdateInput contains parameters for replacing a session
type UpdateInput struct {
	Record *Record
}

// UpdateOutput contains the stored record
type UpdateOutput struct {
	Record *Record
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput reports whether a session was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the storage operations for forge sessions
type Repository interface {
	// Create stores a new session; AlreadyExists if the player has one
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves the player's session; NotFound if none or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the player's session, keeping its remaining TTL
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes the player's session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
