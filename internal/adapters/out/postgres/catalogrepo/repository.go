package catalogrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product and its variants, stock included.
func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes product fields and variant attributes. Existing variants
// keep their stock; new variants are inserted with theirs; variants no
// longer on the product are deleted.
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	db := r.db.WithContext(ctx)

	result := db.Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":         dto.Name,
		"description":  dto.Description,
		"category":     dto.Category,
		"sub_category": dto.SubCategory,
		"rentable":     dto.Rentable,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", product.ID().String())
	}

	keep := make([]uuid.UUID, 0, len(dto.Variants))
	for _, v := range dto.Variants {
		keep = append(keep, v.ID)
	}

	stale := db.Where("product_id = ?", dto.ID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&VariantDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Variants) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"size", "color", "sale_price", "rent_price_per_day"}),
	}).Create(&dto.Variants).Error
}

// Get retrieves a product with its variants.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("size, color, id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByVariant retrieves the product owning variantID.
func (r *GormProductRepository) GetByVariant(ctx context.Context, variantID kernel.UUID) (*catalog.Product, error) {
	if err := variantID.Validate(); err != nil {
		return nil, err
	}

	var variant VariantDTO
	err := r.db.WithContext(ctx).Select("product_id").First(&variant, "id = ?", variantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("variant", variantID.String())
		}
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(variant.ProductID[:])
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, productID)
}

// Delete removes a product; its variants go with it.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	return nil
}
