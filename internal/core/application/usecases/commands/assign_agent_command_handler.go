package commands

import (
	"context"
)

type AssignAgentCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAssignAgentCommandHandler(uowFactory DeliveryUoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{uowFactory: uowFactory}
}

func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
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
	d, err := deliveryRepo.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	a, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = d.AssignAgent(a); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
