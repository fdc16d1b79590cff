package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
)

// GetProductQuery loads one product with its variants for the detail page.
type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() kernel.UUID { return q.productID }

type VariantView struct {
	ID              kernel.UUID
	Size            string
	Color           string
	Stock           int
	SalePrice       *kernel.Money
	RentPricePerDay *kernel.Money
}

type GetProductQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
	SubCategory string
	Rentable    bool
	CreatedAt   time.Time
	Variants    []VariantView
}
