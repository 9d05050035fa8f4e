package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// Update never writes the stock column; stock moves only through
	// DeductStock and RestockStock so concurrent reservations stay safe.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBatch retrieves the products for the given identifiers.
	// Missing identifiers are simply absent from the result.
	GetBatch(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// GetLowStock retrieves active products whose stock is at or below
	// their minimum stock threshold.
	GetLowStock(ctx context.Context) ([]*product.Product, error)

	// DeductStock atomically decrements stock by quantity, failing with
	// an insufficient stock error when fewer than quantity units remain.
	// The decrement is conditional at the database level, so two
	// concurrent reservations of the last unit cannot both succeed.
	DeductStock(ctx context.Context, id kernel.UUID, quantity int) error

	// RestockStock atomically increments stock by quantity.
	RestockStock(ctx context.Context, id kernel.UUID, quantity int) error
}
