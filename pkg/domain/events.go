package domain

import (
	"context"
	"time"

	"github.com/aretw0/devfolio/pkg/schema"
)

// EventType defines the category of the event.
type EventType string

const (
	EventValidated EventType = "validated"
	EventStored    EventType = "stored"
	EventDeleted   EventType = "deleted"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	// Source names the surface that produced the event (cli, http, mcp, library).
	Source string `json:"source,omitempty"`
}

// ValidationEvent reports the outcome of one validation pass.
type ValidationEvent struct {
	EventBase
	Duration   time.Duration      `json:"duration"`
	Success    bool               `json:"success"`
	Violations []schema.Violation `json:"violations,omitempty"`
}

// StoreEvent reports a change to a stored document.
type StoreEvent struct {
	EventBase
	ID   string        `json:"id"`
	Diff *DocumentDiff `json:"diff,omitempty"`
}

// LifecycleHooks defines callbacks for validator and store observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnValidate func(context.Context, *ValidationEvent)
	OnStore    func(context.Context, *StoreEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnValidate: chain(h.OnValidate, other.OnValidate),
		OnStore:    chain(h.OnStore, other.OnStore),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
