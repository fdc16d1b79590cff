package commands

import (
	"context"
)

type DeleteVariantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteVariantCommandHandler(uowFactory CatalogUoWFactory) DeleteVariantCommandHandler {
	return DeleteVariantCommandHandler{uowFactory: uowFactory}
}

func (h DeleteVariantCommandHandler) Handle(ctx context.Context, cmd DeleteVariantCommand) error {
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
	product, err := repo.GetByVariant(ctx, cmd.VariantID())
	if err != nil {
		return err
	}
	if err = product.RemoveVariant(cmd.VariantID()); err != nil {
		return err
	}
	if err = repo.Update(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
