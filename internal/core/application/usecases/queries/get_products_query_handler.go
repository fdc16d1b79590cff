package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductsQueryHandler pages through the catalog with the search,
// category and type filters of the storefront listing.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

type productSummaryRow struct {
	ID           uuid.UUID
	Name         string
	Category     string
	SubCategory  string
	Rentable     bool
	CreatedAt    time.Time
	MinSalePrice decimal.NullDecimal
	MinRentPrice decimal.NullDecimal
	Stock        int
}

// Handle fetches one row past the page to tell whether another page exists.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) (GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductsQueryResponse{}, err
	}

	tx := h.db.WithContext(ctx).
		Table("products AS p").
		Select(`p.id, p.name, p.category, p.sub_category, p.rentable, p.created_at,
			(SELECT MIN(v.sale_price) FROM variants v
			 WHERE v.product_id = p.id AND v.sale_price > 0) AS min_sale_price,
			(SELECT MIN(v.rent_price_per_day) FROM variants v
			 WHERE v.product_id = p.id AND v.rent_price_per_day > 0) AS min_rent_price,
			COALESCE((SELECT SUM(v.stock) FROM variants v WHERE v.product_id = p.id), 0) AS stock`)

	if query.Search() != "" {
		pattern := likePattern(query.Search())
		tx = tx.Where("p.name ILIKE ? OR p.sub_category ILIKE ? OR p.description ILIKE ?",
			pattern, pattern, pattern)
	}
	if query.Category() != nil {
		tx = tx.Where("p.category = ?", query.Category().String())
	}
	switch query.Type() {
	case RentType:
		tx = tx.Where("p.rentable")
	case BuyType:
		tx = tx.Where("EXISTS (SELECT 1 FROM variants v WHERE v.product_id = p.id AND v.sale_price > 0)")
	case AnyType:
	}

	var rows []productSummaryRow
	if err := tx.
		Order("p.created_at DESC").
		Order("p.id").
		Limit(ProductsPageSize + 1).
		Offset((query.Page() - 1) * ProductsPageSize).
		Scan(&rows).Error; err != nil {
		return GetProductsQueryResponse{}, err
	}

	resp := GetProductsQueryResponse{
		Products: make([]ProductSummary, 0, min(len(rows), ProductsPageSize)),
		Page:     query.Page(),
		HasNext:  len(rows) > ProductsPageSize,
	}
	for i, row := range rows {
		if i == ProductsPageSize {
			break
		}
		summary, err := row.toSummary()
		if err != nil {
			return GetProductsQueryResponse{}, err
		}
		resp.Products = append(resp.Products, summary)
	}
	return resp, nil
}

func (r productSummaryRow) toSummary() (ProductSummary, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return ProductSummary{}, err
	}
	minSale, err := toOptionalMoney(r.MinSalePrice)
	if err != nil {
		return ProductSummary{}, err
	}
	minRent, err := toOptionalMoney(r.MinRentPrice)
	if err != nil {
		return ProductSummary{}, err
	}
	return ProductSummary{
		ID:           id,
		Name:         r.Name,
		Category:     r.Category,
		SubCategory:  r.SubCategory,
		Rentable:     r.Rentable,
		MinSalePrice: minSale,
		MinRentPrice: minRent,
		InStock:      r.Stock > 0,
		CreatedAt:    r.CreatedAt,
	}, nil
}
