package catalogrepo

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockLedger is the single writer of variants.stock.
type GormStockLedger struct {
	db *gorm.DB
}

func NewGormStockLedger(db *gorm.DB) *GormStockLedger {
	return &GormStockLedger{db: db}
}

// Adjust adds delta to the stock in one conditional UPDATE, so two
// concurrent reservations can never both take the last unit.
func (l *GormStockLedger) Adjust(ctx context.Context, variantID kernel.UUID, delta int) error {
	if err := variantID.Validate(); err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}

	db := l.db.WithContext(ctx)
	result := db.Model(&VariantDTO{}).
		Where("id = ? AND stock + ? >= 0", variantID.Bytes(), delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := db.Model(&VariantDTO{}).Where("id = ?", variantID.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("variant", variantID.String())
	}
	return fmt.Errorf("variant %s: %w", variantID, ports.ErrInsufficientStock)
}

// Set overwrites the stock of a variant.
func (l *GormStockLedger) Set(ctx context.Context, variantID kernel.UUID, quantity int) error {
	if err := variantID.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("stock quantity", quantity, 0, "unbounded")
	}

	result := l.db.WithContext(ctx).Model(&VariantDTO{}).
		Where("id = ?", variantID.Bytes()).
		Update("stock", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("variant", variantID.String())
	}
	return nil
}
