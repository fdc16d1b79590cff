package commands

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
)

// CreateProductCommandHandler persists a new product and its variants.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := catalog.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Description(),
		cmd.Category(), cmd.SubCategory(), cmd.Rentable(), h.clock.Now())
	if err != nil {
		return err
	}
	for _, spec := range cmd.Variants() {
		if _, err = product.AddVariant(spec.ID, spec.Size, spec.Color, spec.Stock,
			spec.SalePrice, spec.RentPricePerDay); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
