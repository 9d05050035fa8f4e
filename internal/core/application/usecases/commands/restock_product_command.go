package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrRestockProductCommandIsNotConstructed = errors.New(
	"RestockProductCommand must be created via NewRestockProductCommand constructor",
)

// RestockProductCommand represents a request to add units to a product's stock.
type RestockProductCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewRestockProductCommand creates a command to increase product stock.
// Quantity must be positive.
func NewRestockProductCommand(
	actor access.Actor,
	productID kernel.UUID,
	quantity int,
) (RestockProductCommand, error) {
	restockCommand := RestockProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restockCommand.setActor(actor),
		restockCommand.setProductID(productID),
		restockCommand.setQuantity(quantity),
	); err != nil {
		return RestockProductCommand{}, err
	}

	return restockCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c RestockProductCommand) Actor() access.Actor {
	return c.actor
}

// ProductID returns the product to restock.
func (c RestockProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c RestockProductCommand) Quantity() int {
	return c.quantity
}

func (c *RestockProductCommand) setActor(actor access.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RestockProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RestockProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
