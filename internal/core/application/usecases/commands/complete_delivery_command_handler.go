package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
)

// CompleteDeliveryCommandHandler confirms a hand-over with the customer's
// code. The delivery and the rentals it activates are written together; a
// wrong code writes nothing and can be retried.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	completer  services.DeliveryCompleter
	clock      kernel.Clock
}

func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock kernel.Clock) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		completer:  services.NewDeliveryCompleter(),
		clock:      clock,
	}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.OrderRepository()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	o, err := orderRepo.Get(ctx, d.OrderID())
	if err != nil {
		return err
	}

	if err = h.completer.Complete(d, o, cmd.AgentID(), cmd.Code(), h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
