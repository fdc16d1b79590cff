package commands

import (
	"errors"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRegisterAgentCommandIsNotConstructed = errors.New(
	"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
)

// RegisterAgentCommand turns an existing customer account into a delivery agent.
type RegisterAgentCommand struct {
	agentID       kernel.UUID
	userID        kernel.UUID
	vehicleNumber string
	vehicleType   agent.VehicleType

	guard guard.ConstructorGuard
}

func NewRegisterAgentCommand(
	agentID, userID kernel.UUID,
	vehicleNumber string,
	vehicleType agent.VehicleType,
) (RegisterAgentCommand, error) {
	if err := errors.Join(agentID.Validate(), userID.Validate(), vehicleType.Validate()); err != nil {
		return RegisterAgentCommand{}, err
	}
	return RegisterAgentCommand{
		agentID:       agentID,
		userID:        userID,
		vehicleNumber: vehicleNumber,
		vehicleType:   vehicleType,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

func (c RegisterAgentCommand) AgentID() kernel.UUID { return c.agentID }
func (c RegisterAgentCommand) UserID() kernel.UUID { return c.userID }
func (c RegisterAgentCommand) VehicleNumber() string { return c.vehicleNumber }
func (c RegisterAgentCommand) VehicleType() agent.VehicleType { return c.vehicleType }
