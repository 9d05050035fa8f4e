package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
// Price is expressed in minor currency units.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	productID kernel.UUID
	sku       string
	name      string
	price     int64
	stock     int
	minStock  int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a catalog product.
// SKU and name must be non-empty; price, stock and minimum stock must not
// be negative.
func NewCreateProductCommand(
	actor access.Actor,
	productID kernel.UUID,
	sku, name string,
	price int64,
	stock, minStock int,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setActor(actor),
		productCommand.setProductID(productID),
		productCommand.setSKU(sku),
		productCommand.setName(name),
		productCommand.setPrice(price),
		productCommand.setStock(stock),
		productCommand.setMinStock(minStock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c CreateProductCommand) Actor() access.Actor {
	return c.actor
}

// ProductID returns the unique identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// SKU returns the stock keeping unit code.
func (c CreateProductCommand) SKU() string {
	return c.sku
}

// Name returns the display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the unit price in minor currency units.
func (c CreateProductCommand) Price() int64 {
	return c.price
}

// Stock returns the initial stock level.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

// MinStock returns the restock alert threshold.
func (c CreateProductCommand) MinStock() int {
	return c.minStock
}

func (c *CreateProductCommand) setActor(actor access.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}

	c.sku = sku
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}

	c.stock = stock
	return nil
}

func (c *CreateProductCommand) setMinStock(minStock int) error {
	if minStock < 0 {
		return errs.NewValueIsInvalidError("minStock")
	}

	c.minStock = minStock
	return nil
}
