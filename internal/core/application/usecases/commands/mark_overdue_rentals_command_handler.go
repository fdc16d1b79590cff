package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// MarkOverdueRentalsCommandHandler moves past-due Active bookings to Overdue
// through the rent state machine and reports how many moved.
type MarkOverdueRentalsCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewMarkOverdueRentalsCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) MarkOverdueRentalsCommandHandler {
	return MarkOverdueRentalsCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkOverdueRentalsCommandHandler) Handle(ctx context.Context, cmd MarkOverdueRentalsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	repo := uow.OrderRepository()
	orders, err := repo.GetWithPastDueRentals(ctx, now)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, o := range orders {
		changed, markErr := o.MarkOverdue(now)
		if markErr != nil {
			return 0, markErr
		}
		if changed == 0 {
			continue
		}
		if err = repo.Update(ctx, o); err != nil {
			return 0, err
		}
		total += changed
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return total, nil
}
