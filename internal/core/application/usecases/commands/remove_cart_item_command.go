package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

type RemoveCartItemCommand struct {
	customerID kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(customerID, itemID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := errors.Join(customerID.Validate(), itemID.Validate()); err != nil {
		return RemoveCartItemCommand{}, err
	}
	return RemoveCartItemCommand{
		customerID: customerID,
		itemID:     itemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) CustomerID() kernel.UUID { return c.customerID }
func (c RemoveCartItemCommand) ItemID() kernel.UUID { return c.itemID }
