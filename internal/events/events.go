package events

import (
	"context"

	"naijakart/internal/models"
)

// Publisher emits order lifecycle events for downstream consumers
// (fulfilment, notifications). Publishing is best-effort: a failed publish
// is logged by the caller and never rolls back the order.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, event models.OrderEvent) error
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) PublishOrderCreated(context.Context, models.OrderEvent) error {
	return nil
}
