package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
)

// CheckoutCommandHandler places an order from the customer's cart.
// The order, its delivery, every stock reservation and the emptied cart are
// written in one transaction; any failure leaves all of them untouched.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, kernel.SystemClock{})
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ports.ErrInsufficientStock) {
//	    // someone else bought the last one
//	}
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	clock      kernel.Clock
	placer     services.OrderPlacer
}

func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, clock kernel.Clock) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		placer:     services.NewOrderPlacer(),
	}
}

func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
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

	placed, err := h.placer.Place(cmd.OrderID(), cmd.DeliveryID(), c, cmd.Address(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placed.Order); err != nil {
		return err
	}

	ledger := uow.StockLedger()
	for _, reservation := range placed.Reservations {
		if err = ledger.Adjust(ctx, reservation.VariantID, reservation.Delta); err != nil {
			return fmt.Errorf("reserve variant %s: %w", reservation.VariantID, err)
		}
	}

	if err = uow.DeliveryRepository().Add(ctx, placed.Delivery); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
