package testutils

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// EventRecorder is an events.EventBus that keeps every published event
type EventRecorder struct {
	mu     sync.Mutex
	events []events.Event

	// PublishErr is returned from every Publish call when set
	PublishErr error
}

// NewEventRecorder creates an empty EventRecorder
func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

// Publish records the event
func (r *EventRecorder) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.PublishErr
}

// Subscribe is a no-op
func (r *EventRecorder) Subscribe(_ string, _ events.Handler) string { return "sub-id" }

// SubscribeFunc is a no-op
func (r *EventRecorder) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}

// Unsubscribe is a no-op
func (r *EventRecorder) Unsubscribe(_ string) error { return nil }

// Clear is a no-op
func (r *EventRecorder) Clear(_ string) {}

// ClearAll drops the recorded events
func (r *EventRecorder) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Types returns the recorded event types in publish order
func (r *EventRecorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type()
	}
	return types
}
