package commands

import (
	"context"
	"fmt"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler adds a product line to a draft order.
// Looks up the product to snapshot its current price into the line item,
// then records the addition in the audit trail.
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
func NewAddOrderItemCommandHandler(uowFactory UoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add item command.
// Requires the manage orders capability. Adding to a non-draft order
// fails inside the aggregate; stock is not reserved at this point.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	prod, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	item, err := order.NewLineItem(prod.ID(), cmd.Quantity(), prod.Price())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		cmd.Actor().ID(),
		audit.ActionOrderItemAdd,
		aggregate.ID(),
		"",
		fmt.Sprintf("%s x%d", prod.SKU(), cmd.Quantity()),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
