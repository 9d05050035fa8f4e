package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Allocates a human-readable order number, creates the draft aggregate and
// records the creation in the audit trail, all in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Requires the manage orders capability. The new order starts in draft
// status with no items.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := access.Require(cmd.Actor().Role(), access.ManageOrders); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	number, err := orderRepo.NextNumber(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), number, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		cmd.Actor().ID(), audit.ActionOrderCreate, aggregate.ID(), "", aggregate.Status().String(),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
