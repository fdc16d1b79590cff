package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// RegisterAgentCommandHandler creates the agent and switches the user's role
// to agent in one transaction.
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
	clock      kernel.Clock
}

func NewRegisterAgentCommandHandler(uowFactory AgentUoWFactory, clock kernel.Clock) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) error {
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

	userRepo := uow.UserRepository()
	agentRepo := uow.AgentRepository()

	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	_, err = agentRepo.GetByUser(ctx, cmd.UserID())
	switch {
	case err == nil:
		return errs.NewConflictError("agent", errors.New("user is already an agent"))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	a, err := agent.NewAgent(cmd.AgentID(), u.ID(), cmd.VehicleNumber(), cmd.VehicleType(), h.clock.Now())
	if err != nil {
		return err
	}
	if err = u.PromoteToAgent(); err != nil {
		return err
	}

	if err = agentRepo.Add(ctx, a); err != nil {
		return err
	}
	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
