package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

type IssueArrivalCodeCommandHandler struct {
	uowFactory DeliveryUoWFactory
	codes      kernel.CodeGenerator
	clock      kernel.Clock
}

func NewIssueArrivalCodeCommandHandler(
	uowFactory DeliveryUoWFactory,
	codes kernel.CodeGenerator,
	clock kernel.Clock,
) IssueArrivalCodeCommandHandler {
	return IssueArrivalCodeCommandHandler{uowFactory: uowFactory, codes: codes, clock: clock}
}

func (h IssueArrivalCodeCommandHandler) Handle(ctx context.Context, cmd IssueArrivalCodeCommand) error {
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
	if err = d.ReissueCode(cmd.AgentID(), h.codes, h.clock.Now()); err != nil {
		return err
	}
	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
