// Package engine defines the forge rules engine used by the orchestrators
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/forge-api/internal/engine Engine

import (
	"context"
)

// Engine runs forge sessions. Implementations are stateless; the session
// travels in every input and a new session value comes back in the output.
type Engine interface {
	// StartSession creates a fresh session from the chosen materials
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// ExecuteAction runs one action. Actions the session cannot take return a
	// FailedPrecondition or InvalidArgument error.
	ExecuteAction(ctx context.Context, input *ExecuteActionInput) (*ExecuteActionOutput, error)

	// CompleteSession seals a session at full progress
	CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error)

	// FinalizeSession turns a sealed session into equipment
	FinalizeSession(ctx context.Context, input *FinalizeSessionInput) (*FinalizeSessionOutput, error)

	// ApplyDebuff curses an active session until its next Light or Heavy
	ApplyDebuff(ctx context.Context, input *ApplyDebuffInput) (*ApplyDebuffOutput, error)

	// GenerateLoot rolls equipment without a forge session
	GenerateLoot(ctx context.Context, input *GenerateLootInput) (*GenerateLootOutput, error)
}
