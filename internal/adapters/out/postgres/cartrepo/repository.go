package cartrepo

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Get loads the customer's items in the order they were added.
func (r *GormCartRepository) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("added_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomain(customerID, dtos)
}

// Save replaces the stored items with the cart's current ones.
func (r *GormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	if err := c.CustomerID().Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("customer_id = ?", c.CustomerID().Bytes()).Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}

	dtos := fromDomain(c)
	if len(dtos) == 0 {
		return nil
	}
	return db.Create(&dtos).Error
}
