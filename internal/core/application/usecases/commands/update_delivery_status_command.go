package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is the assigned agent reporting progress:
// Out for Delivery confirms pickup, Failed gives up. Delivered needs the
// customer's code and goes through CompleteDeliveryCommand instead.
type UpdateDeliveryStatusCommand struct {
	deliveryID kernel.UUID
	agentID    kernel.UUID
	status     delivery.Status

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(
	deliveryID, agentID kernel.UUID,
	status delivery.Status,
) (UpdateDeliveryStatusCommand, error) {
	var statusErr error
	if status != delivery.StatusOutForDelivery && status != delivery.StatusFailed {
		statusErr = errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("agents may set %s or %s, got %s", delivery.StatusOutForDelivery, delivery.StatusFailed, status))
	}
	if err := errors.Join(deliveryID.Validate(), agentID.Validate(), statusErr); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		deliveryID: deliveryID,
		agentID:    agentID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c UpdateDeliveryStatusCommand) AgentID() kernel.UUID { return c.agentID }
func (c UpdateDeliveryStatusCommand) Status() delivery.Status { return c.status }
