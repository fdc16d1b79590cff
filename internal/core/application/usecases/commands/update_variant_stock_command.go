package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateVariantStockCommandIsNotConstructed = errors.New(
	"UpdateVariantStockCommand must be created via NewUpdateVariantStockCommand constructor",
)

// UpdateVariantStockCommand is the admin correction of a variant's stock
// count, optionally with a new sale price.
type UpdateVariantStockCommand struct {
	variantID kernel.UUID
	quantity  int
	salePrice *kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateVariantStockCommand(
	variantID kernel.UUID,
	quantity int,
	salePrice *kernel.Money,
) (UpdateVariantStockCommand, error) {
	if err := variantID.Validate(); err != nil {
		return UpdateVariantStockCommand{}, err
	}
	if quantity < 0 {
		return UpdateVariantStockCommand{}, errs.NewValueIsOutOfRangeError("stock quantity", quantity, 0, "unbounded")
	}

	return UpdateVariantStockCommand{
		variantID: variantID,
		quantity:  quantity,
		salePrice: salePrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateVariantStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVariantStockCommandIsNotConstructed)
}

func (c UpdateVariantStockCommand) VariantID() kernel.UUID { return c.variantID }
func (c UpdateVariantStockCommand) Quantity() int { return c.quantity }
func (c UpdateVariantStockCommand) SalePrice() *kernel.Money { return c.salePrice }
