package commands_test

import (
	"errors"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, status order.Status, items ...order.LineItem) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD-20260831-0042", kernel.NewUUID(), status, items, now, now, nil,
	)
	require.NoError(t, err)
	return aggregate
}

func restoredProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(
		kernel.NewUUID(), "SKU-1001", "Widget", 1500, stock, 0, true,
	)
	require.NoError(t, err)
	return p
}

func lineItem(t *testing.T, productID kernel.UUID, quantity int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(productID, quantity, 1500)
	require.NoError(t, err)
	return item
}

func TestTransitionOrderCommandHandler_Handle_ReservesStockEnteringProcessing(t *testing.T) {
	ctx := t.Context()
	staff := actorWithRole(t, access.Staff)

	prod := restoredProduct(t, 5)
	aggregate := restoredOrder(t, order.Pending, lineItem(t, prod.ID(), 3))

	cmd, _ := commands.NewTransitionOrderCommand(staff, aggregate.ID(), order.Processing)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("AuditRepository").Return(auditRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		productRepo.On("GetBatch", mock.Anything, []kernel.UUID{prod.ID()}).
			Return([]*product.Product{prod}, nil).Once(),
		productRepo.On("DeductStock", mock.Anything, prod.ID(), 3).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(e ports.OrderChangedEvent) bool {
		return e.OldStatus == order.Pending.String() && e.NewStatus == order.Processing.String()
	})).Return(nil).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Processing, aggregate.Status())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_InsufficientStockRollsBack(t *testing.T) {
	ctx := t.Context()
	staff := actorWithRole(t, access.Staff)

	prod := restoredProduct(t, 2)
	aggregate := restoredOrder(t, order.Pending, lineItem(t, prod.ID(), 3))

	cmd, _ := commands.NewTransitionOrderCommand(staff, aggregate.ID(), order.Processing)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		productRepo.On("GetBatch", mock.Anything, []kernel.UUID{prod.ID()}).
			Return([]*product.Product{prod}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewTransitionOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, product.ErrInsufficientStock)

	var insufficient *product.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 3, insufficient.Requested)
	require.Equal(t, 2, insufficient.Available)

	productRepo.AssertNotCalled(t, "DeductStock", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_IllegalEdgeIsRejected(t *testing.T) {
	ctx := t.Context()
	admin := actorWithRole(t, access.Admin)

	aggregate := restoredOrder(t, order.Shipped, lineItem(t, kernel.NewUUID(), 1))
	cmd, _ := commands.NewTransitionOrderCommand(admin, aggregate.ID(), order.Pending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	require.Equal(t, order.Shipped, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_ViewerIsDenied(t *testing.T) {
	ctx := t.Context()
	viewer := actorWithRole(t, access.Viewer)

	cmd, _ := commands.NewTransitionOrderCommand(viewer, kernel.NewUUID(), order.Processing)

	factory := new(MockUoWFactory)

	h := commands.NewTransitionOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, access.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestTransitionOrderCommandHandler_Handle_CancelFromProcessingReleasesStock(t *testing.T) {
	ctx := t.Context()
	staff := actorWithRole(t, access.Staff)

	productID := kernel.NewUUID()
	aggregate := restoredOrder(t, order.Processing, lineItem(t, productID, 2))
	cmd, _ := commands.NewTransitionOrderCommand(staff, aggregate.ID(), order.Cancelled)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("AuditRepository").Return(auditRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		productRepo.On("RestockStock", mock.Anything, productID, 2).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Cancelled, aggregate.Status())
	require.NotNil(t, aggregate.CompletedAt())
	productRepo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_CancelFromPendingLeavesStockAlone(t *testing.T) {
	ctx := t.Context()
	staff := actorWithRole(t, access.Staff)

	aggregate := restoredOrder(t, order.Pending, lineItem(t, kernel.NewUUID(), 2))
	cmd, _ := commands.NewTransitionOrderCommand(staff, aggregate.ID(), order.Cancelled)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AuditRepository").Return(auditRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	productRepo.AssertNotCalled(t, "RestockStock", mock.Anything, mock.Anything, mock.Anything)
	productRepo.AssertNotCalled(t, "DeductStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_PublishFailureDoesNotFailCommand(t *testing.T) {
	ctx := t.Context()
	staff := actorWithRole(t, access.Staff)

	aggregate := restoredOrder(t, order.Processing, lineItem(t, kernel.NewUUID(), 1))
	cmd, _ := commands.NewTransitionOrderCommand(staff, aggregate.ID(), order.Shipped)

	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
