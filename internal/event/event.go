// Package event publishes domain events emitted by the lead and payment
// modules. Emission is fire-and-forget from the caller's perspective: a
// publisher failure is logged by the caller and never changes the outcome
// that triggered the event.
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type names a domain event.
type Type string

const (
	TypeLeadCreated     Type = "lead.created"
	TypePaymentVerified Type = "payment.verified"
)

// Event is one domain occurrence with a loosely-typed payload.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       Type           `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// New stamps an event with identity and time.
func New(eventType Type, payload map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher accepts events for delivery.
type Publisher interface {
	Emit(ctx context.Context, e Event) error
}

// Store persists delivered events (memory in tests, a broker in
// deployments).
type Store interface {
	Append(ctx context.Context, e Event) error
}

// NopPublisher drops events. Used when eventing is not configured.
type NopPublisher struct{}

func (NopPublisher) Emit(context.Context, Event) error { return nil }
