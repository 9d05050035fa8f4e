package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
)

// TransitionOrderCommandHandler moves an order along its lifecycle.
// The side effects happen in a fixed sequence: permission check, edge
// validation inside the aggregate, stock movement when the edge demands
// it, then persistence, audit recording and commit. Entering processing
// reserves stock for every line item; cancelling out of processing
// releases the reservation. A failed reservation rolls everything back,
// so the order never advances with stock only partially deducted.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     *services.InventoryLedger
	publisher  ports.EventPublisher
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
// The publisher receives a change event after each successful commit;
// pass nil to disable event publishing.
func NewTransitionOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewInventoryLedger(),
		publisher:  publisher,
	}
}

// Handle processes the transition command.
// Requires the manage orders capability. Returns the aggregate's
// transition error for illegal edges and the product's insufficient
// stock error when a reservation cannot be satisfied.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	oldStatus := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	switch {
	case oldStatus == order.Pending && cmd.Target() == order.Processing:
		if err = h.reserveStock(ctx, uow, aggregate); err != nil {
			return err
		}
	case oldStatus == order.Processing && cmd.Target() == order.Cancelled:
		if err = h.releaseStock(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		cmd.Actor().ID(),
		audit.ActionOrderTransition,
		aggregate.ID(),
		oldStatus.String(),
		aggregate.Status().String(),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		// Best effort: the state change is already committed.
		_ = h.publisher.PublishOrderChanged(ctx, ports.OrderChangedEvent{
			OrderID:    aggregate.ID().String(),
			Number:     aggregate.Number(),
			OldStatus:  oldStatus.String(),
			NewStatus:  aggregate.Status().String(),
			OccurredAt: time.Now().UTC(),
		})
	}

	return nil
}

// reserveStock deducts stock for every line item. The ledger validates the
// whole reservation against current stock first, then each deduction runs
// as a conditional decrement so concurrent transitions cannot overdraw.
func (h TransitionOrderCommandHandler) reserveStock(ctx context.Context, uow UoW, aggregate *order.Order) error {
	items := aggregate.Items()

	products, err := h.loadProducts(ctx, uow, items)
	if err != nil {
		return err
	}

	if err = h.ledger.Reserve(items, products); err != nil {
		return err
	}

	for _, item := range items {
		if err = uow.ProductRepository().DeductStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

// releaseStock returns reserved quantities to stock when an order is
// cancelled out of processing.
func (h TransitionOrderCommandHandler) releaseStock(ctx context.Context, uow UoW, aggregate *order.Order) error {
	for _, item := range aggregate.Items() {
		if err := uow.ProductRepository().RestockStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

func (h TransitionOrderCommandHandler) loadProducts(
	ctx context.Context,
	uow UoW,
	items []order.LineItem,
) ([]*product.Product, error) {
	productIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID())
	}

	return uow.ProductRepository().GetBatch(ctx, productIDs)
}
