package ports

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrInsufficientStock is returned when a reservation would take a variant's
// stock below zero.
var ErrInsufficientStock = errs.NewValueIsInvalidErrorWithCause("stock", errors.New("insufficient stock"))

// StockLedger is the only writer of variant stock. Calls run inside the
// caller's unit of work transaction.
type StockLedger interface {
	// Adjust applies stock = stock + delta as a single atomic update. A
	// negative delta that would leave stock below zero changes nothing and
	// returns ErrInsufficientStock. An unknown variant is not found.
	Adjust(ctx context.Context, variantID kernel.UUID, delta int) error

	// Set overwrites the stock of a variant. quantity must not be negative.
	Set(ctx context.Context, variantID kernel.UUID, quantity int) error
}
