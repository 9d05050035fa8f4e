// Package cart provides the session cart a customer fills before checkout.
// Carts are short-lived and live outside the relational store, so the model
// stays a plain value type without aggregate machinery.
package cart

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// Item is a single product line in a cart.
type Item struct {
	ProductID kernel.UUID
	Quantity  int
}

// Cart holds the items a customer intends to order.
type Cart struct {
	CustomerID kernel.UUID
	Items      []Item
}

// NewCart creates an empty cart for the given customer.
func NewCart(customerID kernel.UUID) (Cart, error) {
	if err := customerID.Validate(); err != nil {
		return Cart{}, err
	}
	return Cart{CustomerID: customerID}, nil
}

// AddItem adds a product to the cart, merging quantity with an existing
// line for the same product.
func (c *Cart) AddItem(productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	for i := range c.Items {
		if c.Items[i].ProductID.IsEqual(productID) {
			c.Items[i].Quantity += quantity
			return nil
		}
	}
	c.Items = append(c.Items, Item{ProductID: productID, Quantity: quantity})
	return nil
}

// RemoveItem drops the line for the given product, if present.
func (c *Cart) RemoveItem(productID kernel.UUID) {
	for i := range c.Items {
		if c.Items[i].ProductID.IsEqual(productID) {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
