// Package http exposes the back office over a JSON API.
// The caller's identity arrives in the X-Actor-Id and X-Actor-Role
// headers, set by the authenticating proxy in front of this service.
package http

import (
	"errors"
	"net/http"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names carrying the authenticated caller's identity.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	addOrderItemHandler    commands.AddOrderItemCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	createProductHandler   commands.CreateProductCommandHandler
	restockProductHandler  commands.RestockProductCommandHandler
	checkoutCartHandler    commands.CheckoutCartCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getAuditTrailHandler       queries.GetAuditTrailQueryHandler
	getLowStockProductsHandler queries.GetLowStockProductsQueryHandler

	cartStore ports.CartStore
}

// NewServer creates an HTTP server with the required handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	restockProductHandler commands.RestockProductCommandHandler,
	checkoutCartHandler commands.CheckoutCartCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAuditTrailHandler queries.GetAuditTrailQueryHandler,
	getLowStockProductsHandler queries.GetLowStockProductsQueryHandler,
	cartStore ports.CartStore,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		addOrderItemHandler:        addOrderItemHandler,
		transitionOrderHandler:     transitionOrderHandler,
		createProductHandler:       createProductHandler,
		restockProductHandler:      restockProductHandler,
		checkoutCartHandler:        checkoutCartHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getAuditTrailHandler:       getAuditTrailHandler,
		getLowStockProductsHandler: getLowStockProductsHandler,
		cartStore:                  cartStore,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.POST("/orders/:id/items", s.AddOrderItem)
	v1.POST("/orders/:id/transition", s.TransitionOrder)

	v1.POST("/products", s.CreateProduct)
	v1.POST("/products/:id/restock", s.RestockProduct)
	v1.GET("/products/low-stock", s.GetLowStockProducts)

	v1.GET("/audit", s.GetAuditTrail)

	v1.GET("/carts/:customerId", s.GetCart)
	v1.POST("/carts/:customerId/items", s.AddCartItem)
	v1.DELETE("/carts/:customerId", s.ClearCart)
	v1.POST("/carts/:customerId/checkout", s.CheckoutCart)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(actor, orderID, customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// AddOrderItem handles POST /api/v1/orders/:id/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AddOrderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(actor, orderID, productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrder handles POST /api/v1/orders/:id/transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(actor, orderID, target)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetActiveOrdersQuery(actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:          o.ID.String(),
			Number:      o.Number,
			CustomerID:  o.CustomerID.String(),
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
			ItemCount:   o.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		actor, productID, req.SKU, req.Name, req.Price, req.Stock, req.MinStock,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateProductResponse{ID: productID.String()})
}

// RestockProduct handles POST /api/v1/products/:id/restock.
func (s *Server) RestockProduct(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req RestockProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewRestockProductCommand(actor, productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.restockProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLowStockProducts handles GET /api/v1/products/low-stock.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetLowStockProductsQuery(actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	products, err := s.getLowStockProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]LowStockProduct, len(products))
	for i, p := range products {
		response[i] = LowStockProduct{
			ID:       p.ID.String(),
			SKU:      p.SKU,
			Name:     p.Name,
			Stock:    p.Stock,
			MinStock: p.MinStock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAuditTrail handles GET /api/v1/audit.
// Optional query parameters: subject_id, actor_id, from, to (RFC 3339).
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var subjectID, actorID kernel.UUID
	if raw := ctx.QueryParam("subject_id"); raw != "" {
		if subjectID, err = kernel.UUIDFromString(raw); err != nil {
			return badRequest(ctx, err)
		}
	}
	if raw := ctx.QueryParam("actor_id"); raw != "" {
		if actorID, err = kernel.UUIDFromString(raw); err != nil {
			return badRequest(ctx, err)
		}
	}

	var from, to time.Time
	if raw := ctx.QueryParam("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return badRequest(ctx, err)
		}
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return badRequest(ctx, err)
		}
	}

	query, err := queries.NewGetAuditTrailQuery(actor, subjectID, actorID, from, to)
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.getAuditTrailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]AuditEntry, len(entries))
	for i, e := range entries {
		response[i] = AuditEntry{
			ID:         e.ID.String(),
			ActorID:    e.ActorID.String(),
			Action:     e.Action,
			SubjectID:  e.SubjectID.String(),
			Before:     e.Before,
			After:      e.After,
			OccurredAt: e.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/carts/:customerId.
func (s *Server) GetCart(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = access.Require(actor.Role(), access.ViewOrders); err != nil {
		return domainError(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	sessionCart, err := s.cartStore.Get(ctx.Request().Context(), customerID)
	if err != nil {
		return domainError(ctx, err)
	}

	response := Cart{
		CustomerID: sessionCart.CustomerID.String(),
		Items:      make([]CartItem, len(sessionCart.Items)),
	}
	for i, item := range sessionCart.Items {
		response.Items[i] = CartItem{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/carts/:customerId/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = access.Require(actor.Role(), access.ManageOrders); err != nil {
		return domainError(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CartItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, err)
	}

	sessionCart, err := s.cartStore.Get(ctx.Request().Context(), customerID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = sessionCart.AddItem(productID, req.Quantity); err != nil {
		return badRequest(ctx, err)
	}

	if err = s.cartStore.Save(ctx.Request().Context(), sessionCart); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/carts/:customerId.
func (s *Server) ClearCart(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = access.Require(actor.Role(), access.ManageOrders); err != nil {
		return domainError(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.cartStore.Delete(ctx.Request().Context(), customerID); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckoutCart handles POST /api/v1/carts/:customerId/checkout.
func (s *Server) CheckoutCart(ctx echo.Context) error {
	actor, err := s.actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCartCommand(actor, orderID, customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.checkoutCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// actorFromHeaders builds the acting user from the identity headers.
func (s *Server) actorFromHeaders(ctx echo.Context) (access.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderActorID)
	if rawID == "" {
		return access.Actor{}, errors.New("missing " + HeaderActorID + " header")
	}

	actorID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return access.Actor{}, err
	}

	role, err := access.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return access.Actor{}, err
	}

	return access.NewActor(actorID, role)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// domainError maps domain failures onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, access.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, order.ErrOrderItemsAreFrozen),
		errors.Is(err, order.ErrOrderHasNoItems),
		errors.Is(err, commands.ErrCartIsEmpty):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
