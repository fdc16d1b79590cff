package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAddVariantCommandIsNotConstructed = errors.New(
	"AddVariantCommand must be created via NewAddVariantCommand constructor",
)

// AddVariantCommand attaches a new size/color variant to an existing product.
type AddVariantCommand struct {
	productID kernel.UUID
	variant   VariantSpec

	guard guard.ConstructorGuard
}

func NewAddVariantCommand(productID kernel.UUID, variant VariantSpec) (AddVariantCommand, error) {
	if err := errors.Join(productID.Validate(), variant.ID.Validate()); err != nil {
		return AddVariantCommand{}, err
	}

	return AddVariantCommand{
		productID: productID,
		variant:   variant,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddVariantCommand) Validate() error {
	return c.guard.Validate(ErrAddVariantCommandIsNotConstructed)
}

func (c AddVariantCommand) ProductID() kernel.UUID { return c.productID }
func (c AddVariantCommand) Variant() VariantSpec { return c.variant }
