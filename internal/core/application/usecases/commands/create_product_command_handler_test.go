package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := actorWithRole(t, access.Admin)
	cmd, _ := commands.NewCreateProductCommand(
		admin, kernel.NewUUID(), "SKU-2001", "Gadget", 4999, 20, 5,
	)

	productRepo := new(MockProductRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("AuditRepository").Return(auditRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		productRepo.On("Add", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
			return p.SKU() == "SKU-2001" && p.Stock() == 20 && p.IsActive()
		})).Return(nil).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_StaffIsAllowed(t *testing.T) {
	ctx := t.Context()
	staff := actorWithRole(t, access.Staff)
	cmd, _ := commands.NewCreateProductCommand(
		staff, kernel.NewUUID(), "SKU-2002", "Gadget", 4999, 20, 5,
	)

	productRepo := new(MockProductRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once()
	auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_ViewerIsDenied(t *testing.T) {
	ctx := t.Context()
	viewer := actorWithRole(t, access.Viewer)
	cmd, _ := commands.NewCreateProductCommand(
		viewer, kernel.NewUUID(), "SKU-2002", "Gadget", 4999, 20, 5,
	)

	factory := new(MockProductUoWFactory)

	h := commands.NewCreateProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, access.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateProductCommand_Validation(t *testing.T) {
	admin := actorWithRole(t, access.Admin)

	tests := []struct {
		name     string
		sku      string
		prodName string
		price    int64
		stock    int
		minStock int
	}{
		{"empty_sku", "", "Gadget", 4999, 20, 5},
		{"empty_name", "SKU-1", "", 4999, 20, 5},
		{"negative_price", "SKU-1", "Gadget", -1, 20, 5},
		{"negative_stock", "SKU-1", "Gadget", 4999, -1, 5},
		{"negative_min_stock", "SKU-1", "Gadget", 4999, 20, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateProductCommand(
				admin, kernel.NewUUID(), tt.sku, tt.prodName, tt.price, tt.stock, tt.minStock,
			)
			require.Error(t, err)
		})
	}
}
