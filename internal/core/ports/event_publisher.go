package ports

import (
	"context"
	"time"
)

// OrderChangedEvent notifies downstream consumers that an order changed state.
type OrderChangedEvent struct {
	OrderID    string    `json:"order_id"`
	Number     string    `json:"number"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes order change events to the message broker.
// Publishing happens after commit and is best effort; a publish failure
// must not fail the command that produced the event.
type EventPublisher interface {
	// PublishOrderChanged publishes a single order change event.
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error

	// Close releases the underlying broker connection.
	Close() error
}
