// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Stock is mutated only through atomic SQL increments, never by rewriting
// the whole row.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU      string    `gorm:"uniqueIndex"`
	Name     string
	Price    int64
	Stock    int
	MinStock int
	Active   bool `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:       aggregate.ID().Bytes(),
		SKU:      aggregate.SKU(),
		Name:     aggregate.Name(),
		Price:    aggregate.Price(),
		Stock:    aggregate.Stock(),
		MinStock: aggregate.MinStock(),
		Active:   aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.SKU, dto.Name, dto.Price, dto.Stock, dto.MinStock, dto.Active,
	)
}
