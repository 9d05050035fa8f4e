package order

import (
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// LineItem is a value object describing one product position of an order.
// The unit price is a snapshot taken when the item was added, so later
// catalog price changes do not affect existing orders.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice int64
}

// NewLineItem creates a line item with a validated product reference,
// a positive quantity, and a non-negative unit price in minor units.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice int64) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%d is negative", unitPrice))
	}

	return LineItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ProductID returns the referenced product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the snapshotted unit price in minor currency units.
func (li LineItem) UnitPrice() int64 {
	return li.unitPrice
}

// TotalPrice returns quantity times unit price.
func (li LineItem) TotalPrice() int64 {
	return int64(li.quantity) * li.unitPrice
}
