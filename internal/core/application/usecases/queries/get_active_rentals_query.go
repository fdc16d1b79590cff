package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetActiveRentalsQueryIsNotConstructed = errors.New(
		"GetActiveRentalsQuery must be created via NewGetActiveRentalsQuery constructor",
	)
)

// GetActiveRentalsQuery lists the bookings currently out with customers
// (Shipped, Active or Overdue) for the rental manager, newest start first.
type GetActiveRentalsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveRentalsQuery() GetActiveRentalsQuery {
	return GetActiveRentalsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveRentalsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveRentalsQueryIsNotConstructed)
}

type ActiveRentalView struct {
	RentalView
	OrderID       kernel.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}
