package forge

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/forge-api/internal/engine/rpgtoolkit"
	entity "github.com/KirkDiggler/forge-api/internal/entities/forge"
	forgesession "github.com/KirkDiggler/forge-api/internal/repositories/forge_session"
)

// Event types published on the bus
const (
	EventSessionStarted   = "forge.session.started"
	EventActionExecuted   = "forge.action.executed"
	EventDebuffApplied    = "forge.debuff.applied"
	EventSessionFailed    = "forge.session.failed"
	EventSessionCompleted = "forge.session.completed"
)

// publish sends a forge event with the player as source and the session as
// target. Bus failures are logged and never fail the forge operation.
func (o *orchestrator) publish(
	ctx context.Context,
	eventType string,
	player *entity.Player,
	record *forgesession.Record,
	data map[string]any,
) {
	var source core.Entity
	if player != nil {
		source = rpgtoolkit.WrapPlayer(player)
	} else {
		source = rpgtoolkit.WrapPlayer(&entity.Player{ID: record.PlayerID})
	}
	target := rpgtoolkit.WrapSession(record.SessionID, record.Session)

	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish forge event",
			"event", eventType,
			"player_id", record.PlayerID,
			"session_id", record.SessionID,
			"error", err,
		)
	}
}
