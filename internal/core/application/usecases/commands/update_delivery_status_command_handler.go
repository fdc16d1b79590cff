package commands

import (
	"context"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
)

type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	codes      kernel.CodeGenerator
	clock      kernel.Clock
}

func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	codes kernel.CodeGenerator,
	clock kernel.Clock,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{uowFactory: uowFactory, codes: codes, clock: clock}
}

func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if cmd.Status() == delivery.StatusFailed {
		err = d.Fail(cmd.AgentID(), h.clock.Now())
	} else {
		err = d.StartDelivery(cmd.AgentID(), h.codes, h.clock.Now())
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
