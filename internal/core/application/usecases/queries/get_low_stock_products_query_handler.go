package queries

import (
	"context"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockProductsQueryHandler lists products that need restocking.
// Shared by the low stock HTTP endpoint and the background alert job.
type GetLowStockProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockProductsQueryHandler creates a handler for low stock queries.
func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{db: db}
}

// Handle executes the query. Requires the view products capability.
// Only active products with a configured threshold are reported.
func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]GetLowStockProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := access.Require(query.Actor().Role(), access.ViewProducts); err != nil {
		return nil, err
	}

	products := make([]GetLowStockProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, sku, name, stock, min_stock
		FROM products
		WHERE active AND min_stock > 0 AND stock <= min_stock
		ORDER BY sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetLowStockProductsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.SKU, &resp.Name, &resp.Stock, &resp.MinStock)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
