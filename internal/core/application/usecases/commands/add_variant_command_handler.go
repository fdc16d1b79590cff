package commands

import (
	"context"
)

type AddVariantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddVariantCommandHandler(uowFactory CatalogUoWFactory) AddVariantCommandHandler {
	return AddVariantCommandHandler{uowFactory: uowFactory}
}

// Handle loads the product, lets it derive the rent price and reject
// duplicates, and stores the new variant with its opening stock.
func (h AddVariantCommandHandler) Handle(ctx context.Context, cmd AddVariantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	product, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	spec := cmd.Variant()
	if _, err = product.AddVariant(spec.ID, spec.Size, spec.Color, spec.Stock,
		spec.SalePrice, spec.RentPricePerDay); err != nil {
		return err
	}

	if err = repo.Update(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
