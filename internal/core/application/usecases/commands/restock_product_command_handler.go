package commands

import (
	"context"
	"strconv"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/audit"
)

// RestockProductCommandHandler increases a product's stock level.
// The increment is applied atomically in the database so it composes
// with concurrent reservations.
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRestockProductCommandHandler creates a handler for restock operations.
func NewRestockProductCommandHandler(uowFactory ProductUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command.
// Requires the manage products capability.
func (h RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := access.Require(cmd.Actor().Role(), access.ManageProducts); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Load first so a missing product surfaces as not found, and so the
	// audit entry can record the stock level before the increment.
	aggregate, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().RestockStock(ctx, cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		cmd.Actor().ID(),
		audit.ActionProductRestock,
		aggregate.ID(),
		strconv.Itoa(aggregate.Stock()),
		strconv.Itoa(aggregate.Stock()+cmd.Quantity()),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
