package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCheckoutCartCommandIsNotConstructed = errors.New(
		"CheckoutCartCommand must be created via NewCheckoutCartCommand constructor",
	)
	ErrCartIsEmpty = errors.New("cart is empty")
)

// CheckoutCartCommand represents a request to turn a customer's session
// cart into a submitted order.
type CheckoutCartCommand struct { //nolint:recvcheck //using for validation
	actor      access.Actor
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckoutCartCommand creates a command to check out a session cart.
func NewCheckoutCartCommand(actor access.Actor, orderID, customerID kernel.UUID) (CheckoutCartCommand, error) {
	checkoutCommand := CheckoutCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setActor(actor),
		checkoutCommand.setOrderID(orderID),
		checkoutCommand.setCustomerID(customerID),
	); err != nil {
		return CheckoutCartCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCartCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCartCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c CheckoutCartCommand) Actor() access.Actor {
	return c.actor
}

// OrderID returns the identifier for the order created by the checkout.
func (c CheckoutCartCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer whose cart is being checked out.
func (c CheckoutCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CheckoutCartCommand) setActor(actor access.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CheckoutCartCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
