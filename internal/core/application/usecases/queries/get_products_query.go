package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// ProductsPageSize is how many products a listing page holds.
const ProductsPageSize = 9

// ProductType narrows a listing to rentable or purchasable products.
type ProductType string

const (
	AnyType  ProductType = ""
	RentType ProductType = "rent"
	BuyType  ProductType = "buy"
)

// GetProductsQuery browses the catalog newest first.
//
// Example:
//
//	query, err := NewGetProductsQuery("kurta", "Men", RentType, 1)
//	if err != nil {
//	    return err
//	}
//	page, err := NewGetProductsQueryHandler(db).Handle(ctx, query)
type GetProductsQuery struct {
	search      string
	category    *catalog.Category
	productType ProductType
	page        int

	guard guard.ConstructorGuard
}

// NewGetProductsQuery builds a listing query. An empty category or "All"
// lists every category; page counts from 1.
func NewGetProductsQuery(search, category string, productType ProductType, page int) (GetProductsQuery, error) {
	query := GetProductsQuery{
		search:      strings.TrimSpace(search),
		productType: productType,
		page:        page,
		guard:       guard.NewConstructorGuard(),
	}

	var categoryErr, typeErr, pageErr error
	if category = strings.TrimSpace(category); category != "" && !strings.EqualFold(category, "All") {
		c, err := catalog.ParseCategory(category)
		categoryErr = err
		query.category = &c
	}
	switch productType {
	case AnyType, RentType, BuyType:
	default:
		typeErr = errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not rent or buy", productType))
	}
	if page < 1 {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if err := errors.Join(categoryErr, typeErr, pageErr); err != nil {
		return GetProductsQuery{}, err
	}
	return query, nil
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

func (q GetProductsQuery) Search() string { return q.search }
func (q GetProductsQuery) Category() *catalog.Category { return q.category }
func (q GetProductsQuery) Type() ProductType { return q.productType }
func (q GetProductsQuery) Page() int { return q.page }

// ProductSummary is one card of the listing. Prices are the cheapest
// positive variant prices, nil when no variant offers one.
type ProductSummary struct {
	ID           kernel.UUID
	Name         string
	Category     string
	SubCategory  string
	Rentable     bool
	MinSalePrice *kernel.Money
	MinRentPrice *kernel.Money
	InStock      bool
	CreatedAt    time.Time
}

type GetProductsQueryResponse struct {
	Products []ProductSummary
	Page     int
	HasNext  bool
}
