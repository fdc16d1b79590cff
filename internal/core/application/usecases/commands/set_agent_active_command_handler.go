package commands

import (
	"context"
)

type SetAgentActiveCommandHandler struct {
	uowFactory AgentUoWFactory
}

func NewSetAgentActiveCommandHandler(uowFactory AgentUoWFactory) SetAgentActiveCommandHandler {
	return SetAgentActiveCommandHandler{uowFactory: uowFactory}
}

func (h SetAgentActiveCommandHandler) Handle(ctx context.Context, cmd SetAgentActiveCommand) error {
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

	repo := uow.AgentRepository()
	a, err := repo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}
	a.SetActive(cmd.Active())
	if err = repo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
