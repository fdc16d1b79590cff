package commands

import (
	"context"
)

type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{uowFactory: uowFactory}
}

func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	cartRepo := uow.CartRepository()
	c, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if err = c.Remove(cmd.ItemID()); err != nil {
		return err
	}
	if err = cartRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
