package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeleteVariantCommandIsNotConstructed = errors.New(
	"DeleteVariantCommand must be created via NewDeleteVariantCommand constructor",
)

type DeleteVariantCommand struct {
	variantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteVariantCommand(variantID kernel.UUID) (DeleteVariantCommand, error) {
	if err := variantID.Validate(); err != nil {
		return DeleteVariantCommand{}, err
	}
	return DeleteVariantCommand{variantID: variantID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteVariantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVariantCommandIsNotConstructed)
}

func (c DeleteVariantCommand) VariantID() kernel.UUID { return c.variantID }
