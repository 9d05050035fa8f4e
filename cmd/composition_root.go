package cmd

import (
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/rabbitmq"
	"backoffice/internal/adapters/out/redis"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  *redis.CartStore
	publisher  *rabbitmq.Publisher
}

// NewCompositionRoot wires the application together. The publisher may be
// nil when no message broker is configured; order change events are then
// not published.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	cartStore *redis.CartStore,
	publisher *rabbitmq.Publisher,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  cartStore,
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CartStore() ports.CartStore {
	return c.cartStore
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	var publisher ports.EventPublisher
	if c.publisher != nil {
		publisher = c.publisher
	}
	return commands.NewTransitionOrderCommandHandler(f, publisher)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCartCommandHandler() commands.CheckoutCartCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCartCommandHandler(f, c.cartStore)
}

func (c *CompositionRoot) CreateSweepStaleDraftsCommandHandler() commands.SweepStaleDraftsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepStaleDraftsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockProductsQueryHandler() queries.GetLowStockProductsQueryHandler {
	return queries.NewGetLowStockProductsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
