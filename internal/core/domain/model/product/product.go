package product

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factory functions.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is the sentinel for failed stock deductions.
	// Use errors.Is to detect it regardless of the concrete error value.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports that a requested quantity exceeds the
// available stock of a product. The product id is carried so callers can tell
// the user which line item blocked the operation.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// product and quantities.
func NewInsufficientStockError(productID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s has %d, requested %d",
		ErrInsufficientStock, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is the catalog aggregate. It maintains these invariants:
//   - Must have a valid unique identifier and a non-empty SKU and name
//   - Price is non-negative, expressed in minor currency units
//   - Stock quantity is never negative
//   - Stock changes only through Deduct and Restock
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	id       kernel.UUID
	sku      string
	name     string
	price    int64
	stock    int
	minStock int
	active   bool

	isConstructed bool
}

// NewProduct creates a new active product with the given initial stock.
// minStock is the threshold below which the product is reported as needing
// restock; zero disables the report.
func NewProduct(id kernel.UUID, sku, name string, price int64, stock, minStock int) (*Product, error) {
	p := &Product{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSKU(sku),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
		p.setMinStock(minStock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence, including its
// active flag. It applies the same validation as NewProduct.
func RestoreProduct(id kernel.UUID, sku, name string, price int64, stock, minStock int, active bool) (*Product, error) {
	p, err := NewProduct(id, sku, name, price, stock, minStock)
	if err != nil {
		return nil, err
	}
	p.active = active
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SKU returns the product's stock keeping unit code.
func (p *Product) SKU() string {
	return p.sku
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price in minor currency units.
func (p *Product) Price() int64 {
	return p.price
}

// Stock returns the quantity currently on hand.
func (p *Product) Stock() int {
	return p.stock
}

// MinStock returns the restock threshold.
func (p *Product) MinStock() int {
	return p.minStock
}

// IsActive reports whether the product is available for ordering.
func (p *Product) IsActive() bool {
	return p.active
}

// NeedsRestock reports whether stock has fallen to or below the threshold.
func (p *Product) NeedsRestock() bool {
	return p.minStock > 0 && p.stock <= p.minStock
}

// Deactivate removes the product from the orderable catalog.
// Existing orders referencing it are unaffected.
func (p *Product) Deactivate() {
	p.active = false
}

// Activate returns the product to the orderable catalog.
func (p *Product) Activate() {
	p.active = true
}

// Deduct removes quantity units from stock.
//
// Returns InsufficientStockError when quantity exceeds the available stock;
// the stock is left unchanged in that case. Quantity must be positive.
func (p *Product) Deduct(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > p.stock {
		return NewInsufficientStockError(p.id, quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// Restock adds delta units to stock. Delta must be positive.
func (p *Product) Restock(delta int) error {
	if delta <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delta is invalid",
			fmt.Errorf("%d is not greater than 0", delta))
	}

	p.stock += delta
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%d is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

func (p *Product) setMinStock(minStock int) error {
	if minStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minStock is invalid",
			fmt.Errorf("%d is negative", minStock))
	}
	p.minStock = minStock
	return nil
}
