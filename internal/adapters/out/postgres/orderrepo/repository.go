package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database.
// Line items are replaced wholesale to mirror the aggregate state.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("Number", "CustomerID", "Status", "UpdatedAt", "CompletedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all orders that are not delivered or cancelled.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Find(&dtos, "status NOT IN ?", []int{int(order.Delivered), int(order.Cancelled)}).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetStaleDrafts retrieves draft orders whose last update is before the cutoff.
func (r *GormOrderRepository) GetStaleDrafts(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Find(&dtos, "status = ? AND updated_at < ?", int(order.Draft), cutoff).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// NextNumber allocates the next order number for the given day.
// Numbers are formatted ORD-YYYYMMDD-NNNN with the counter starting at
// 0001 each day. The max scan runs inside the caller's transaction.
func (r *GormOrderRepository) NextNumber(ctx context.Context, day time.Time) (string, error) {
	prefix := fmt.Sprintf("ORD-%s-", day.UTC().Format("20060102"))

	var last int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(CAST(RIGHT(number, 4) AS INTEGER)), 0)
		FROM orders
		WHERE number LIKE ?
	`, prefix+"%").Scan(&last).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, last+1), nil
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
