package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// AddToCartCommandHandler checks the selection against the current catalog
// and stores the cart with the price frozen at this moment.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
	clock      kernel.Clock
}

func NewAddToCartCommandHandler(uowFactory CartUoWFactory, clock kernel.Clock) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
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

	product, err := uow.ProductRepository().GetByVariant(ctx, cmd.VariantID())
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	c, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if _, err = c.Add(cmd.ItemID(), product, cmd.VariantID(), cmd.Quantity(), cmd.Period(), h.clock.Now()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
