package queries

import (
	"context"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists orders that are not in a terminal status.
// Aggregates line items into a count and a total so the listing needs a
// single round trip.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Requires the view orders capability.
// Results are sorted by order number for consistent output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := access.Require(query.Actor().Role(), access.ViewOrders); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.customer_id,
			o.status,
			COALESCE(SUM(i.quantity * i.unit_price), 0),
			COALESCE(SUM(i.quantity), 0)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status NOT IN (?, ?)
		GROUP BY o.id, o.number, o.customer_id, o.status
		ORDER BY o.number
	`, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, customerID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Number,
			&customerID,
			&status,
			&resp.TotalAmount,
			&resp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = custID

		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
