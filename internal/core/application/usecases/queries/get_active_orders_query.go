// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregates and read projections straight from
// the database, so listing screens stay cheap.
package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves all orders that are still in flight,
// meaning any status other than delivered or cancelled.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(actor)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
type GetActiveOrdersQuery struct {
	actor access.Actor

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve in-flight orders.
func NewGetActiveOrdersQuery(actor access.Actor) (GetActiveOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Actor returns the user issuing the query.
func (q GetActiveOrdersQuery) Actor() access.Actor {
	return q.actor
}

// GetActiveOrdersQueryResponse is a flat projection of one active order.
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	Number      string
	CustomerID  kernel.UUID
	Status      string
	TotalAmount int64
	ItemCount   int
}
