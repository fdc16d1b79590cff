package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	u := customer(t, "s3cret-pass")
	agentID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAgentCommand(agentID, u.ID(), "ka-01-ab-1234", agent.VehicleBike)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		userRepo.On("Get", ctx, u.ID()).Return(u, nil).Once(),
		agentRepo.On("GetByUser", ctx, u.ID()).Return(nil, errs.NewObjectNotFoundError("agent", u.ID())).Once(),
		agentRepo.On("Add", ctx, mock.MatchedBy(func(a *agent.Agent) bool {
			return a.ID().IsEqual(agentID) && a.VehicleNumber() == "KA-01-AB-1234" && a.IsActive()
		})).Return(nil).Once(),
		userRepo.On("Update", ctx, u).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.AgentUoW])
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAgentCommandHandler(factory, clock)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, user.RoleAgent, u.Role())
	userRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterAgentCommandHandler_Handle_AlreadyAgent(t *testing.T) {
	ctx := t.Context()
	u := customer(t, "s3cret-pass")
	existing := activeAgent(t)
	cmd, err := commands.NewRegisterAgentCommand(kernel.NewUUID(), u.ID(), "KA-02", agent.VehicleCar)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		userRepo.On("Get", ctx, u.ID()).Return(u, nil).Once(),
		agentRepo.On("GetByUser", ctx, u.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.AgentUoW])
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAgentCommandHandler(factory, clock)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	agentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	assert.Equal(t, user.RoleCustomer, u.Role())
}

func TestSetAgentActiveCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	a := activeAgent(t)
	cmd, err := commands.NewSetAgentActiveCommand(a.ID(), false)
	require.NoError(t, err)

	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		agentRepo.On("Update", ctx, a).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.AgentUoW])
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetAgentActiveCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.False(t, a.IsActive())
	uow.AssertExpectations(t)
}
