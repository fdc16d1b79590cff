package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDispatchDeliveryCommandIsNotConstructed = errors.New(
	"DispatchDeliveryCommand must be created via NewDispatchDeliveryCommand constructor",
)

// DispatchDeliveryCommand sends an order out for delivery. With a nil agent
// the least busy active agent is chosen.
//
// Example:
//
//	cmd, _ := NewDispatchDeliveryCommand(orderID, nil)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoActiveAgentsFound) {
//	    log.Println("All agents are off duty")
//	}
type DispatchDeliveryCommand struct {
	orderID kernel.UUID
	agentID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewDispatchDeliveryCommand(orderID kernel.UUID, agentID *kernel.UUID) (DispatchDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DispatchDeliveryCommand{}, err
	}
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return DispatchDeliveryCommand{}, err
		}
	}
	return DispatchDeliveryCommand{orderID: orderID, agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDeliveryCommandIsNotConstructed)
}

func (c DispatchDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// AgentID is nil when the agent should be picked automatically.
func (c DispatchDeliveryCommand) AgentID() *kernel.UUID { return c.agentID }
