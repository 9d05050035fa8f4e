package ports

import (
	"context"

	"backoffice/internal/core/domain/model/cart"
	"backoffice/internal/core/domain/model/kernel"
)

// CartStore keeps session carts in a fast, expiring store.
// Carts are keyed by customer and expire after the configured TTL;
// an expired or never-saved cart reads back as an empty cart.
type CartStore interface {
	// Get retrieves the cart for the given customer.
	// Returns an empty cart when none exists.
	Get(ctx context.Context, customerID kernel.UUID) (cart.Cart, error)

	// Save stores the cart and refreshes its TTL.
	Save(ctx context.Context, c cart.Cart) error

	// Delete removes the cart for the given customer.
	Delete(ctx context.Context, customerID kernel.UUID) error
}
