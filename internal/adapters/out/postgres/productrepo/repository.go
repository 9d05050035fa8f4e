package productrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves catalog attributes of an existing product.
// The stock column is excluded; stock moves only through DeductStock
// and RestockStock.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).
		Select("SKU", "Name", "Price", "MinStock", "Active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBatch retrieves the products for the given identifiers.
func (r *GormProductRepository) GetBatch(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetLowStock retrieves active products at or below their minimum stock.
func (r *GormProductRepository) GetLowStock(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "active AND min_stock > 0 AND stock <= min_stock").Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// DeductStock atomically decrements stock by quantity.
// The WHERE clause guards the decrement, so of two racing reservations
// for the last units exactly one succeeds.
func (r *GormProductRepository) DeductStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?
	`, quantity, id.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		aggregate, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		return product.NewInsufficientStockError(id, quantity, aggregate.Stock())
	}

	return nil
}

// RestockStock atomically increments stock by quantity.
func (r *GormProductRepository) RestockStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE products SET stock = stock + ? WHERE id = ?
	`, quantity, id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

func toDomainAll(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, aggregate)
	}

	return products, nil
}
