package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
	"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
)

// GetLowStockProductsQuery retrieves active products at or below their
// minimum stock threshold.
type GetLowStockProductsQuery struct {
	actor access.Actor

	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a low stock query.
func NewGetLowStockProductsQuery(actor access.Actor) (GetLowStockProductsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetLowStockProductsQuery{}, err
	}

	return GetLowStockProductsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// Actor returns the user issuing the query.
func (q GetLowStockProductsQuery) Actor() access.Actor {
	return q.actor
}

// GetLowStockProductsQueryResponse is a flat projection of one product
// needing restock.
type GetLowStockProductsQueryResponse struct {
	ID       kernel.UUID
	SKU      string
	Name     string
	Stock    int
	MinStock int
}
