package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new draft order
// for a customer. The order starts empty; items are added separately.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, kernel.NewUUID(), customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor      access.Actor
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a draft order.
// Validates the acting user, the order ID and the customer ID.
func NewCreateOrderCommand(actor access.Actor, orderID, customerID kernel.UUID) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActor(actor),
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c CreateOrderCommand) Actor() access.Actor {
	return c.actor
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer the order belongs to.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CreateOrderCommand) setActor(actor access.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
