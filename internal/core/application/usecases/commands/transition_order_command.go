package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a new
// lifecycle status. Whether the edge is legal is decided by the order
// aggregate when the command is handled.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(actor, orderID, order.Processing)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var invalid *order.InvalidTransitionError
//	    if errors.As(err, &invalid) {
//	        // surface as a conflict to the caller
//	    }
//	    return err
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	actor   access.Actor
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to change an order's status.
// The target must be a known status; edge legality is checked later
// against the order's current status.
func NewTransitionOrderCommand(
	actor access.Actor,
	orderID kernel.UUID,
	target order.Status,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setActor(actor),
		transitionCommand.setOrderID(orderID),
		transitionCommand.setTarget(target),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c TransitionOrderCommand) Actor() access.Actor {
	return c.actor
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

func (c *TransitionOrderCommand) setActor(actor access.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
