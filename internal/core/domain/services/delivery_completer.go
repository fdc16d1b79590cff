package services

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// DeliveryCompleter confirms a hand-over. A confirmed delivery means the
// customer holds the goods, so every rental of the order still on its way
// becomes Active.
type DeliveryCompleter struct{}

func NewDeliveryCompleter() DeliveryCompleter {
	return DeliveryCompleter{}
}

func (DeliveryCompleter) Complete(
	d *delivery.Delivery,
	o *order.Order,
	agentID kernel.UUID,
	code string,
	now time.Time,
) error {
	if err := errors.Join(d.Validate(), o.Validate()); err != nil {
		return err
	}
	if !d.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("delivery belongs to another order"))
	}

	if err := d.Complete(agentID, code, now); err != nil {
		return err
	}
	return o.ActivateRentals(now)
}
