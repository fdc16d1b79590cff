package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

const (
	EventOrderPlaced              = "order.placed"
	EventSaleItemStatusChanged    = "order.sale_item.status_changed"
	EventRentBookingStatusChanged = "order.rent_booking.status_changed"
)

type OrderPlaced struct {
	kernel.BaseEvent
	CustomerID kernel.UUID
	Total      kernel.Money
}

type SaleItemStatusChanged struct {
	kernel.BaseEvent
	ItemID    kernel.UUID
	VariantID kernel.UUID
	From      SaleStatus
	To        SaleStatus
}

type RentBookingStatusChanged struct {
	kernel.BaseEvent
	BookingID kernel.UUID
	VariantID kernel.UUID
	Period    kernel.DateRange
	From      RentStatus
	To        RentStatus
}

func newOrderPlaced(o *Order, now time.Time) OrderPlaced {
	return OrderPlaced{
		BaseEvent:  kernel.NewBaseEvent(EventOrderPlaced, o.id, now),
		CustomerID: o.customerID,
		Total:      o.totalPrice,
	}
}
