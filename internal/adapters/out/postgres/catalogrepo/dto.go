// Package catalogrepo persists catalog products with their variants and owns
// the stock column of variants through GormStockLedger.
package catalogrepo

import (
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO maps the products table.
type ProductDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name        string       `gorm:"not null"`
	Description string       `gorm:"not null;default:''"`
	Category    string       `gorm:"not null"`
	SubCategory string       `gorm:"not null;default:''"`
	Rentable    bool         `gorm:"not null"`
	CreatedAt   time.Time    `gorm:"not null"`
	Variants    []VariantDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// VariantDTO maps the variants table. Prices are nullable: a variant without
// a sale price is rent-only and vice versa.
type VariantDTO struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ProductID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	Size            string              `gorm:"not null;default:''"`
	Color           string              `gorm:"not null;default:''"`
	Stock           int                 `gorm:"not null"`
	SalePrice       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	RentPricePerDay decimal.NullDecimal `gorm:"type:numeric(12,2)"`
}

func (VariantDTO) TableName() string {
	return "variants"
}

func fromDomain(p *catalog.Product) ProductDTO {
	productID := p.ID().Bytes()
	variants := make([]VariantDTO, 0, len(p.Variants()))
	for _, v := range p.Variants() {
		variants = append(variants, variantFromDomain(productID, v))
	}

	return ProductDTO{
		ID:          productID,
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category().String(),
		SubCategory: p.SubCategory(),
		Rentable:    p.IsRentable(),
		CreatedAt:   p.CreatedAt(),
		Variants:    variants,
	}
}

func variantFromDomain(productID uuid.UUID, v *catalog.Variant) VariantDTO {
	return VariantDTO{
		ID:              v.ID().Bytes(),
		ProductID:       productID,
		Size:            v.Size(),
		Color:           v.Color(),
		Stock:           v.Stock(),
		SalePrice:       nullMoney(v.SalePrice()),
		RentPricePerDay: nullMoney(v.RentPricePerDay()),
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	category, err := catalog.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	variants := make([]*catalog.Variant, 0, len(dto.Variants))
	for _, vdto := range dto.Variants {
		variantID, idErr := kernel.UUIDFromBytes(vdto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		salePrice, priceErr := moneyPtr(vdto.SalePrice)
		if priceErr != nil {
			return nil, priceErr
		}
		rentPrice, priceErr := moneyPtr(vdto.RentPricePerDay)
		if priceErr != nil {
			return nil, priceErr
		}
		v, vErr := catalog.RestoreVariant(variantID, id, vdto.Size, vdto.Color, vdto.Stock, salePrice, rentPrice)
		if vErr != nil {
			return nil, vErr
		}
		variants = append(variants, v)
	}

	return catalog.RestoreProduct(id, dto.Name, dto.Description, category, dto.SubCategory,
		dto.Rentable, dto.CreatedAt, variants)
}

func nullMoney(m *kernel.Money) decimal.NullDecimal {
	if m == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(m.Decimal())
}

func moneyPtr(d decimal.NullDecimal) (*kernel.Money, error) {
	if !d.Valid {
		return nil, nil //nolint:nilnil // a missing price is not an error
	}
	m, err := kernel.NewMoney(d.Decimal)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
