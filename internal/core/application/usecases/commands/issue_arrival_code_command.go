package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrIssueArrivalCodeCommandIsNotConstructed = errors.New(
	"IssueArrivalCodeCommand must be created via NewIssueArrivalCodeCommand constructor",
)

// IssueArrivalCodeCommand is the agent announcing arrival; the customer
// receives a fresh code to read out.
type IssueArrivalCodeCommand struct {
	deliveryID kernel.UUID
	agentID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewIssueArrivalCodeCommand(deliveryID, agentID kernel.UUID) (IssueArrivalCodeCommand, error) {
	if err := errors.Join(deliveryID.Validate(), agentID.Validate()); err != nil {
		return IssueArrivalCodeCommand{}, err
	}
	return IssueArrivalCodeCommand{deliveryID: deliveryID, agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (c IssueArrivalCodeCommand) Validate() error {
	return c.guard.Validate(ErrIssueArrivalCodeCommandIsNotConstructed)
}

func (c IssueArrivalCodeCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c IssueArrivalCodeCommand) AgentID() kernel.UUID { return c.agentID }
