package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/cart"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Get(ctx context.Context, customerID kernel.UUID) (cart.Cart, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(cart.Cart), args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, c cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartStore) Delete(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func newTestServer(cartStore *MockCartStore) *echo.Echo {
	server := httpin.NewServer(
		commands.CreateOrderCommandHandler{},
		commands.AddOrderItemCommandHandler{},
		commands.TransitionOrderCommandHandler{},
		commands.CreateProductCommandHandler{},
		commands.RestockProductCommandHandler{},
		commands.CheckoutCartCommandHandler{},
		queries.GetActiveOrdersQueryHandler{},
		queries.GetAuditTrailQueryHandler{},
		queries.GetLowStockProductsQueryHandler{},
		cartStore,
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func TestServer_ClearCart(t *testing.T) {
	t.Run("deletes_cart", func(t *testing.T) {
		customerID := kernel.NewUUID()

		cartStore := new(MockCartStore)
		cartStore.On("Delete", mock.Anything, customerID).Return(nil).Once()

		e := newTestServer(cartStore)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/carts/"+customerID.String(), nil)
		req.Header.Set(httpin.HeaderActorID, kernel.NewUUID().String())
		req.Header.Set(httpin.HeaderActorRole, "Staff")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		cartStore.AssertExpectations(t)
	})

	t.Run("viewer_is_denied", func(t *testing.T) {
		cartStore := new(MockCartStore)

		e := newTestServer(cartStore)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/carts/"+kernel.NewUUID().String(), nil)
		req.Header.Set(httpin.HeaderActorID, kernel.NewUUID().String())
		req.Header.Set(httpin.HeaderActorRole, "Viewer")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		cartStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing_identity_headers", func(t *testing.T) {
		cartStore := new(MockCartStore)

		e := newTestServer(cartStore)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/carts/"+kernel.NewUUID().String(), nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
