package services

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/pkg/errs"
)

// InventoryLedger applies stock reservations and releases across the products
// referenced by an order's line items.
//
// Reserve is all-or-nothing: either every product has sufficient stock and
// all are decremented, or none are touched and the first under-stocked
// product (in line-item order) is reported. The ledger mutates only the
// in-memory aggregates; durable atomicity comes from persisting the changed
// products through a conditional decrement inside the caller's transaction.
type InventoryLedger struct{}

// NewInventoryLedger creates a stateless inventory ledger.
func NewInventoryLedger() *InventoryLedger {
	return &InventoryLedger{}
}

// Reserve deducts every line item's quantity from its product.
//
// products must contain every product referenced by items; a missing product
// is reported as ObjectNotFoundError. If any line item's requested quantity
// exceeds the available stock, no product is changed and
// product.InsufficientStockError names the first under-stocked product in
// line-item order.
func (l *InventoryLedger) Reserve(items []order.LineItem, products []*product.Product) error {
	index, err := indexProducts(products)
	if err != nil {
		return err
	}

	// Validate the whole reservation before touching anything.
	for _, item := range items {
		p, ok := index[item.ProductID()]
		if !ok {
			return errs.NewObjectNotFoundError("product", item.ProductID().String())
		}
		if item.Quantity() > p.Stock() {
			return product.NewInsufficientStockError(p.ID(), item.Quantity(), p.Stock())
		}
	}

	for _, item := range items {
		if err := index[item.ProductID()].Deduct(item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

// Release returns every line item's quantity to its product's stock.
// Used when a Processing order is cancelled and its reservation is released.
func (l *InventoryLedger) Release(items []order.LineItem, products []*product.Product) error {
	index, err := indexProducts(products)
	if err != nil {
		return err
	}

	for _, item := range items {
		p, ok := index[item.ProductID()]
		if !ok {
			return errs.NewObjectNotFoundError("product", item.ProductID().String())
		}
		if err := p.Restock(item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

func indexProducts(products []*product.Product) (map[kernel.UUID]*product.Product, error) {
	index := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		index[p.ID()] = p
	}
	return index, nil
}
