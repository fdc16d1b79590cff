package commands

import (
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// VariantSpec describes a variant to create. A nil price means the variant is
// not offered that way; RentPricePerDay nil on a rentable product is derived
// from SalePrice.
type VariantSpec struct {
	ID              kernel.UUID
	Size            string
	Color           string
	Stock           int
	SalePrice       *kernel.Money
	RentPricePerDay *kernel.Money
}

// CreateProductCommand adds a product, optionally with its first variants.
//
// Example:
//
//	productID := kernel.NewUUID()
//	cmd, err := NewCreateProductCommand(productID, "Linen shirt", "", catalog.Men, "Shirts", true, nil)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateProductCommand struct {
	productID   kernel.UUID
	name        string
	description string
	category    catalog.Category
	subCategory string
	rentable    bool
	variants    []VariantSpec

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID kernel.UUID,
	name, description string,
	category catalog.Category,
	subCategory string,
	rentable bool,
	variants []VariantSpec,
) (CreateProductCommand, error) {
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(productID.Validate(), nameErr, category.Validate()); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		productID:   productID,
		name:        name,
		description: description,
		category:    category,
		subCategory: subCategory,
		rentable:    rentable,
		variants:    variants,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c CreateProductCommand) Name() string { return c.name }
func (c CreateProductCommand) Description() string { return c.description }
func (c CreateProductCommand) Category() catalog.Category { return c.category }
func (c CreateProductCommand) SubCategory() string { return c.subCategory }
func (c CreateProductCommand) Rentable() bool { return c.rentable }
func (c CreateProductCommand) Variants() []VariantSpec { return c.variants }
