// Package player stores the flat player-state document
package player

import (
	"context"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/KirkDiggler/forge-api/internal/repositories/player Repository

// GetInput contains parameters for retrieving a player
type GetInput struct {
	PlayerID string
}

// GetOutput contains the retrieved player
type GetOutput struct {
	Player *forge.Player
}

// SaveInput contains the player document to upsert
type SaveInput struct {
	Player *forge.Player
}

// SaveOutput contains the stored player
type SaveOutput struct {
	Player *forge.Player
}

// DeleteInput contains parameters for deleting a player
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput reports whether a player was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the storage operations for player documents
type Repository interface {
	// Get retrieves a player; NotFound if missing
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save upserts a player and stamps UpdatedAt
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a player
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
