package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
)

// UpdateRentBookingStatusCommandHandler applies a rent booking transition.
// Returning stamps the return time and freezes the late fee; Returned and
// Cancelled put the quantity back in stock.
type UpdateRentBookingStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewUpdateRentBookingStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) UpdateRentBookingStatusCommandHandler {
	return UpdateRentBookingStatusCommandHandler{uowFactory: uowFactory, clock: clock, logger: logger}
}

func (h UpdateRentBookingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateRentBookingStatusCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.GetByRentBooking(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	movement, err := o.TransitionRentBooking(cmd.BookingID(), cmd.Status(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}
	if err = restock(ctx, uow.StockLedger(), movement, h.logger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
