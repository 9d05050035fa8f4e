package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to add a product to a draft order.
// The unit price is snapshotted from the product at the time of adding.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an item to an order.
// Quantity must be positive.
func NewAddOrderItemCommand(
	actor access.Actor,
	orderID, productID kernel.UUID,
	quantity int,
) (AddOrderItemCommand, error) {
	itemCommand := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setActor(actor),
		itemCommand.setOrderID(orderID),
		itemCommand.setProductID(productID),
		itemCommand.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c AddOrderItemCommand) Actor() access.Actor {
	return c.actor
}

// OrderID returns the order to add the item to.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product being added.
func (c AddOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setActor(actor access.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
