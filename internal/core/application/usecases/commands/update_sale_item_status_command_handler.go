package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// UpdateSaleItemStatusCommandHandler applies a sale item transition. When the
// new status is Returned or Cancelled the quantity goes back to stock in the
// same transaction as the status write, so it happens exactly once.
type UpdateSaleItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewUpdateSaleItemStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) UpdateSaleItemStatusCommandHandler {
	return UpdateSaleItemStatusCommandHandler{uowFactory: uowFactory, clock: clock, logger: logger}
}

func (h UpdateSaleItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateSaleItemStatusCommand) error {
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
	o, err := repo.GetBySaleItem(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	movement, err := o.TransitionSaleItem(cmd.ItemID(), cmd.Status(), h.clock.Now())
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

// restock returns a released quantity to the ledger; nil means nothing to do.
// A variant deleted from the catalog has no stock to return to, so the line
// still moves and the quantity is dropped.
func restock(ctx context.Context, ledger ports.StockLedger, movement *order.StockMovement, logger *slog.Logger) error {
	if movement == nil {
		return nil
	}
	err := ledger.Adjust(ctx, movement.VariantID, movement.Delta)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrObjectNotFound):
		logger.WarnContext(ctx, "restock skipped, variant no longer exists",
			"variant_id", movement.VariantID.String(), "quantity", movement.Delta)
		return nil
	default:
		return fmt.Errorf("restock variant %s: %w", movement.VariantID, err)
	}
}
