package commands

import (
	"context"
)

// UpdateVariantStockCommandHandler overwrites stock through the ledger and,
// when a sale price is given, updates it through the product.
type UpdateVariantStockCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateVariantStockCommandHandler(uowFactory CatalogUoWFactory) UpdateVariantStockCommandHandler {
	return UpdateVariantStockCommandHandler{uowFactory: uowFactory}
}

func (h UpdateVariantStockCommandHandler) Handle(ctx context.Context, cmd UpdateVariantStockCommand) error {
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

	if err := uow.StockLedger().Set(ctx, cmd.VariantID(), cmd.Quantity()); err != nil {
		return err
	}

	if cmd.SalePrice() != nil {
		repo := uow.ProductRepository()
		product, err := repo.GetByVariant(ctx, cmd.VariantID())
		if err != nil {
			return err
		}
		variant, err := product.Variant(cmd.VariantID())
		if err != nil {
			return err
		}
		variant.ChangeSalePrice(cmd.SalePrice())
		if err = repo.Update(ctx, product); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
