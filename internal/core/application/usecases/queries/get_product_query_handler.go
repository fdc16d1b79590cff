package queries

import (
	"context"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}
	id := query.ProductID()

	var products []struct {
		Name        string
		Description string
		Category    string
		SubCategory string
		Rentable    bool
		CreatedAt   time.Time
	}
	if err := h.db.WithContext(ctx).Raw(`
		SELECT name, description, category, sub_category, rentable, created_at
		FROM products
		WHERE id = ?`, id.Bytes()).
		Scan(&products).Error; err != nil {
		return GetProductQueryResponse{}, err
	}
	if len(products) == 0 {
		return GetProductQueryResponse{}, errs.NewObjectNotFoundError("product", id.String())
	}
	p := products[0]

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, size, color, stock, sale_price, rent_price_per_day
		FROM variants
		WHERE product_id = ?
		ORDER BY size, color, id`, id.Bytes()).Rows()
	if err != nil {
		return GetProductQueryResponse{}, err
	}
	defer rows.Close()

	variants := make([]VariantView, 0)
	for rows.Next() {
		var (
			variantID       uuid.UUID
			view            VariantView
			salePrice       decimal.NullDecimal
			rentPricePerDay decimal.NullDecimal
		)
		if err = rows.Scan(&variantID, &view.Size, &view.Color, &view.Stock, &salePrice, &rentPricePerDay); err != nil {
			return GetProductQueryResponse{}, err
		}
		if view.ID, err = toUUID(variantID); err != nil {
			return GetProductQueryResponse{}, err
		}
		if view.SalePrice, err = toOptionalMoney(salePrice); err != nil {
			return GetProductQueryResponse{}, err
		}
		if view.RentPricePerDay, err = toOptionalMoney(rentPricePerDay); err != nil {
			return GetProductQueryResponse{}, err
		}
		variants = append(variants, view)
	}
	if err = rows.Err(); err != nil {
		return GetProductQueryResponse{}, err
	}

	return GetProductQueryResponse{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Rentable:    p.Rentable,
		CreatedAt:   p.CreatedAt,
		Variants:    variants,
	}, nil
}
