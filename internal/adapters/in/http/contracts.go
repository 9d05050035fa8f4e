package http

import "time"

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest opens a new draft order for a customer.
type CreateOrderRequest struct {
	CustomerID string `json:"customer_id"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AddOrderItemRequest adds a product line to a draft order.
type AddOrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// TransitionOrderRequest moves an order to a new status.
type TransitionOrderRequest struct {
	Target string `json:"target"`
}

// ActiveOrder is one row of the active orders listing.
type ActiveOrder struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	CustomerID  string `json:"customer_id"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"total_amount"`
	ItemCount   int    `json:"item_count"`
}

// CreateProductRequest registers a catalog product.
// Price is in minor currency units.
type CreateProductRequest struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}

// CreateProductResponse returns the identifier of the created product.
type CreateProductResponse struct {
	ID string `json:"id"`
}

// RestockProductRequest adds units to a product's stock.
type RestockProductRequest struct {
	Quantity int `json:"quantity"`
}

// LowStockProduct is one row of the low stock listing.
type LowStockProduct struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}

// AuditEntry is one row of the audit trail listing.
type AuditEntry struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	SubjectID  string    `json:"subject_id"`
	Before     string    `json:"before"`
	After      string    `json:"after"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CartItemRequest adds a product to a session cart.
type CartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart is the JSON view of a session cart.
type Cart struct {
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
}

// CartItem is one line of a session cart.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutResponse returns the order created from a cart.
type CheckoutResponse struct {
	OrderID string `json:"order_id"`
}
