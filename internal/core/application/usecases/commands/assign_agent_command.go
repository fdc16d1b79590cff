package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand pre-assigns an agent to an order's delivery without
// dispatching it. The agent later confirms pickup.
type AssignAgentCommand struct {
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignAgentCommand(orderID, agentID kernel.UUID) (AssignAgentCommand, error) {
	if err := errors.Join(orderID.Validate(), agentID.Validate()); err != nil {
		return AssignAgentCommand{}, err
	}
	return AssignAgentCommand{orderID: orderID, agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

func (c AssignAgentCommand) OrderID() kernel.UUID { return c.orderID }
func (c AssignAgentCommand) AgentID() kernel.UUID { return c.agentID }
