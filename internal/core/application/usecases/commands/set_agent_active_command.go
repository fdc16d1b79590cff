package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSetAgentActiveCommandIsNotConstructed = errors.New(
	"SetAgentActiveCommand must be created via NewSetAgentActiveCommand constructor",
)

// SetAgentActiveCommand puts an agent on or off duty.
type SetAgentActiveCommand struct {
	agentID kernel.UUID
	active  bool

	guard guard.ConstructorGuard
}

func NewSetAgentActiveCommand(agentID kernel.UUID, active bool) (SetAgentActiveCommand, error) {
	if err := agentID.Validate(); err != nil {
		return SetAgentActiveCommand{}, err
	}
	return SetAgentActiveCommand{agentID: agentID, active: active, guard: guard.NewConstructorGuard()}, nil
}

func (c SetAgentActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetAgentActiveCommandIsNotConstructed)
}

func (c SetAgentActiveCommand) AgentID() kernel.UUID { return c.agentID }
func (c SetAgentActiveCommand) Active() bool { return c.active }
