package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

var ErrNoActiveAgentsFound = errors.New("no active agents found")

// DispatchDeliveryCommandHandler assigns an agent, moves the delivery Out for
// Delivery and issues the first code in one transaction. The customer gets
// the code once the transaction commits.
//
// Example:
//
//	handler := NewDispatchDeliveryCommandHandler(uowFactory, kernel.RandomCodeGenerator{}, clock)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, ErrNoActiveAgentsFound):
//	    log.Println("All agents are off duty")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type DispatchDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher services.DeliveryDispatcher
	clock      kernel.Clock
}

func NewDispatchDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	codes kernel.CodeGenerator,
	clock kernel.Clock,
) DispatchDeliveryCommandHandler {
	return DispatchDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDeliveryDispatcher(codes),
		clock:      clock,
	}
}

func (h DispatchDeliveryCommandHandler) Handle(ctx context.Context, cmd DispatchDeliveryCommand) error {
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

	if cmd.AgentID() != nil {
		err = h.dispatchTo(ctx, uow.AgentRepository(), d, *cmd.AgentID())
	} else {
		err = h.dispatchToLeastBusy(ctx, uow.AgentRepository(), deliveryRepo, d)
	}
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h DispatchDeliveryCommandHandler) dispatchTo(
	ctx context.Context,
	agents ports.AgentRepository,
	d *delivery.Delivery,
	agentID kernel.UUID,
) error {
	a, err := agents.Get(ctx, agentID)
	if err != nil {
		return err
	}
	return h.dispatcher.Dispatch(d, a, h.clock.Now())
}

func (h DispatchDeliveryCommandHandler) dispatchToLeastBusy(
	ctx context.Context,
	agents ports.AgentRepository,
	deliveries ports.DeliveryRepository,
	d *delivery.Delivery,
) error {
	active, err := agents.GetAllActive(ctx)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		return ErrNoActiveAgentsFound
	}

	open, err := deliveries.CountOpenByAgent(ctx)
	if err != nil {
		return err
	}

	candidates := make([]services.AgentWorkload, 0, len(active))
	for _, a := range active {
		candidates = append(candidates, services.AgentWorkload{Agent: a, OpenDeliveries: open[a.ID()]})
	}

	_, err = h.dispatcher.DispatchToLeastBusy(d, candidates, h.clock.Now())
	if errors.Is(err, services.ErrAgentNotFound) {
		return ErrNoActiveAgentsFound
	}
	return err
}
