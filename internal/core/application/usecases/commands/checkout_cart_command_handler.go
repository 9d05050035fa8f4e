package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
)

// CheckoutCartCommandHandler turns a session cart into a pending order.
// Cart lines become order line items with the current catalog price
// snapshotted, the order is submitted straight to pending, and the cart
// is cleared after the transaction commits. Stock is not reserved at
// checkout; reservation happens when the order enters processing.
type CheckoutCartCommandHandler struct {
	uowFactory UoWFactory
	cartStore  ports.CartStore
}

// NewCheckoutCartCommandHandler creates a handler for cart checkout.
func NewCheckoutCartCommandHandler(uowFactory UoWFactory, cartStore ports.CartStore) CheckoutCartCommandHandler {
	return CheckoutCartCommandHandler{
		uowFactory: uowFactory,
		cartStore:  cartStore,
	}
}

// Handle processes the checkout command.
// Requires the manage orders capability. Returns ErrCartIsEmpty when the
// customer's cart has no items or has expired.
func (h CheckoutCartCommandHandler) Handle(ctx context.Context, cmd CheckoutCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := access.Require(cmd.Actor().Role(), access.ManageOrders); err != nil {
		return err
	}

	sessionCart, err := h.cartStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if sessionCart.IsEmpty() {
		return ErrCartIsEmpty
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	number, err := uow.OrderRepository().NextNumber(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), number, cmd.CustomerID())
	if err != nil {
		return err
	}

	for _, line := range sessionCart.Items {
		prod, prodErr := uow.ProductRepository().Get(ctx, line.ProductID)
		if prodErr != nil {
			return prodErr
		}

		item, itemErr := order.NewLineItem(prod.ID(), line.Quantity, prod.Price())
		if itemErr != nil {
			return itemErr
		}

		if addErr := aggregate.AddItem(item); addErr != nil {
			return addErr
		}
	}

	if err = aggregate.TransitionTo(order.Pending); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The order is committed; a failed cart cleanup only leaves a cart
	// that will expire on its own.
	_ = h.cartStore.Delete(ctx, cmd.CustomerID())

	return nil
}
