package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand carries the code the customer read out to the agent.
type CompleteDeliveryCommand struct {
	deliveryID kernel.UUID
	agentID    kernel.UUID
	code       string

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(deliveryID, agentID kernel.UUID, code string) (CompleteDeliveryCommand, error) {
	var codeErr error
	if strings.TrimSpace(code) == "" {
		codeErr = errs.NewValueIsRequiredError("code")
	}
	if err := errors.Join(deliveryID.Validate(), agentID.Validate(), codeErr); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		deliveryID: deliveryID,
		agentID:    agentID,
		code:       code,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c CompleteDeliveryCommand) AgentID() kernel.UUID { return c.agentID }
func (c CompleteDeliveryCommand) Code() string { return c.code }
