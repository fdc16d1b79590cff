package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUpdateSaleItemStatusCommandIsNotConstructed = errors.New(
	"UpdateSaleItemStatusCommand must be created via NewUpdateSaleItemStatusCommand constructor",
)

// UpdateSaleItemStatusCommand moves a purchase line to a new status.
type UpdateSaleItemStatusCommand struct {
	itemID kernel.UUID
	status order.SaleStatus

	guard guard.ConstructorGuard
}

func NewUpdateSaleItemStatusCommand(itemID kernel.UUID, status order.SaleStatus) (UpdateSaleItemStatusCommand, error) {
	if err := errors.Join(itemID.Validate(), status.Validate()); err != nil {
		return UpdateSaleItemStatusCommand{}, err
	}
	return UpdateSaleItemStatusCommand{itemID: itemID, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateSaleItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSaleItemStatusCommandIsNotConstructed)
}

func (c UpdateSaleItemStatusCommand) ItemID() kernel.UUID { return c.itemID }
func (c UpdateSaleItemStatusCommand) Status() order.SaleStatus { return c.status }
