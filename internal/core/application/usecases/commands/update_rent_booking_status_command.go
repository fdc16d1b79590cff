package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUpdateRentBookingStatusCommandIsNotConstructed = errors.New(
	"UpdateRentBookingStatusCommand must be created via NewUpdateRentBookingStatusCommand constructor",
)

// UpdateRentBookingStatusCommand moves a rental line to a new status.
type UpdateRentBookingStatusCommand struct {
	bookingID kernel.UUID
	status    order.RentStatus

	guard guard.ConstructorGuard
}

func NewUpdateRentBookingStatusCommand(
	bookingID kernel.UUID,
	status order.RentStatus,
) (UpdateRentBookingStatusCommand, error) {
	if err := errors.Join(bookingID.Validate(), status.Validate()); err != nil {
		return UpdateRentBookingStatusCommand{}, err
	}
	return UpdateRentBookingStatusCommand{bookingID: bookingID, status: status, guard: guard.NewConstructorGuard()}, nil
}

// NewProcessRentalReturnCommand is the admin "goods are back" action.
func NewProcessRentalReturnCommand(bookingID kernel.UUID) (UpdateRentBookingStatusCommand, error) {
	return NewUpdateRentBookingStatusCommand(bookingID, order.RentReturned)
}

func (c UpdateRentBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRentBookingStatusCommandIsNotConstructed)
}

func (c UpdateRentBookingStatusCommand) BookingID() kernel.UUID { return c.bookingID }
func (c UpdateRentBookingStatusCommand) Status() order.RentStatus { return c.status }
