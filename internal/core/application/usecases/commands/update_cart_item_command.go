package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand sets the quantity of a cart item. A quantity of zero
// or less removes the item.
type UpdateCartItemCommand struct {
	customerID kernel.UUID
	itemID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemCommand(customerID, itemID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	if err := errors.Join(customerID.Validate(), itemID.Validate()); err != nil {
		return UpdateCartItemCommand{}, err
	}
	return UpdateCartItemCommand{
		customerID: customerID,
		itemID:     itemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

func (c UpdateCartItemCommand) CustomerID() kernel.UUID { return c.customerID }
func (c UpdateCartItemCommand) ItemID() kernel.UUID { return c.itemID }
func (c UpdateCartItemCommand) Quantity() int { return c.quantity }
