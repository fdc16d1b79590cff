package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand puts a variant in a customer's cart. A nil period buys the
// variant, a period rents it.
type AddToCartCommand struct {
	customerID kernel.UUID
	itemID     kernel.UUID
	variantID  kernel.UUID
	quantity   int
	period     *kernel.DateRange

	guard guard.ConstructorGuard
}

func NewAddToCartCommand(
	customerID, itemID, variantID kernel.UUID,
	quantity int,
	period *kernel.DateRange,
) (AddToCartCommand, error) {
	var quantityErr error
	if quantity < 1 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if err := errors.Join(
		customerID.Validate(),
		itemID.Validate(),
		variantID.Validate(),
		quantityErr,
	); err != nil {
		return AddToCartCommand{}, err
	}

	return AddToCartCommand{
		customerID: customerID,
		itemID:     itemID,
		variantID:  variantID,
		quantity:   quantity,
		period:     period,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

func (c AddToCartCommand) CustomerID() kernel.UUID { return c.customerID }
func (c AddToCartCommand) ItemID() kernel.UUID { return c.itemID }
func (c AddToCartCommand) VariantID() kernel.UUID { return c.variantID }
func (c AddToCartCommand) Quantity() int { return c.quantity }
func (c AddToCartCommand) Period() *kernel.DateRange { return c.period }
