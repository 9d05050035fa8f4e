// Package ports defines the contracts between the application core and
// infrastructure adapters. Repositories, the unit of work, the cart store
// and the event publisher are all expressed here so handlers depend on
// interfaces only.
package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Line items are replaced wholesale to match the aggregate state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that are not in a terminal status.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetStaleDrafts retrieves draft orders not touched since the cutoff.
	// Used by the sweeper job to cancel abandoned drafts.
	GetStaleDrafts(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// NextNumber allocates the next human-readable order number for the
	// given day, in the form ORD-YYYYMMDD-NNNN. Allocation happens inside
	// the current transaction so concurrent checkouts never collide.
	NextNumber(ctx context.Context, day time.Time) (string, error)
}
