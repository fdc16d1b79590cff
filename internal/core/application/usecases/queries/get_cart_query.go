package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery renders a customer's cart with per-item costs.
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) CustomerID() kernel.UUID { return q.customerID }

// CartItemView is one cart line. StartDate, EndDate and Days are set for
// rentals only.
type CartItemView struct {
	ID         kernel.UUID
	VariantID  kernel.UUID
	Product    string
	Variant    string
	Kind       string
	StartDate  *time.Time
	EndDate    *time.Time
	Days       int
	Quantity   int
	PriceAtAdd kernel.Money
	Cost       kernel.Money
	InStock    int
}

type GetCartQueryResponse struct {
	Items []CartItemView
	Total kernel.Money
}
