package commands

import (
	"context"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles catalog product registration.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Requires the manage products capability.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	aggregate, err := product.NewProduct(
		cmd.ProductID(), cmd.SKU(), cmd.Name(), cmd.Price(), cmd.Stock(), cmd.MinStock(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		cmd.Actor().ID(), audit.ActionProductCreate, aggregate.ID(), "", aggregate.SKU(),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
