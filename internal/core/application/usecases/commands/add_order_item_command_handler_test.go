package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	staff := actorWithRole(t, access.Staff)

	prod := restoredProduct(t, 5)
	aggregate := restoredOrder(t, order.Draft)

	cmd, _ := commands.NewAddOrderItemCommand(staff, aggregate.ID(), prod.ID(), 2)

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
		productRepo.On("Get", mock.Anything, prod.ID()).Return(prod, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			items := o.Items()
			return len(items) == 1 &&
				items[0].Quantity() == 2 &&
				items[0].UnitPrice() == prod.Price()
		})).Return(nil).Once(),
		auditRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *audit.Entry) bool {
			return e.Action() == audit.ActionOrderItemAdd && e.After() == "SKU-1001 x2"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_FrozenOrderIsRejected(t *testing.T) {
	ctx := t.Context()
	staff := actorWithRole(t, access.Staff)

	prod := restoredProduct(t, 5)
	aggregate := restoredOrder(t, order.Pending, lineItem(t, kernel.NewUUID(), 1))

	cmd, _ := commands.NewAddOrderItemCommand(staff, aggregate.ID(), prod.ID(), 2)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	productRepo.On("Get", mock.Anything, prod.ID()).Return(prod, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderItemsAreFrozen)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAddOrderItemCommandHandler_Handle_MissingProduct(t *testing.T) {
	ctx := t.Context()
	staff := actorWithRole(t, access.Staff)

	aggregate := restoredOrder(t, order.Draft)
	missingID := kernel.NewUUID()

	cmd, _ := commands.NewAddOrderItemCommand(staff, aggregate.ID(), missingID, 2)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	productRepo.On("Get", mock.Anything, missingID).
		Return(nil, errs.NewObjectNotFoundError("product", missingID.String())).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAddOrderItemCommandHandler_Handle_ViewerIsDenied(t *testing.T) {
	ctx := t.Context()
	viewer := actorWithRole(t, access.Viewer)

	cmd, _ := commands.NewAddOrderItemCommand(viewer, kernel.NewUUID(), kernel.NewUUID(), 2)

	factory := new(MockUoWFactory)

	h := commands.NewAddOrderItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, access.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}
