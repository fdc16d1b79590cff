package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository persists orders with their sale items and rent bookings.
type OrderRepository interface {
	// Add persists a newly placed order and all its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the line items whose status changed. Each write is
	// conditional on the status the line had when it was loaded; when another
	// transaction changed it first, Update returns a conflict error.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetBySaleItem retrieves the order owning a sale item.
	GetBySaleItem(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// GetByRentBooking retrieves the order owning a rent booking.
	GetByRentBooking(ctx context.Context, bookingID kernel.UUID) (*order.Order, error)

	// GetWithPastDueRentals retrieves orders holding an Active booking whose
	// period ended before the calendar day of now.
	GetWithPastDueRentals(ctx context.Context, now time.Time) ([]*order.Order, error)
}
