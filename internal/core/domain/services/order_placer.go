package services

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checking out a cart with nothing in it.
var ErrCartIsEmpty = errs.NewConflictError("cart", errors.New("cart is empty"))

// PlacedOrder is everything a checkout creates.
type PlacedOrder struct {
	Order        *order.Order
	Delivery     *delivery.Delivery
	Reservations []order.StockMovement
}

// OrderPlacer converts a cart into an order.
//
// Business rules:
//   - The cart must not be empty
//   - Each cart item becomes one sale item or one rent booking at the price frozen in the cart
//   - The order total equals the cart total
//   - Every order gets a Pending delivery
//   - The cart is cleared
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place builds the order for c. The caller applies the returned reservations
// to the stock ledger in the same transaction that stores the order.
func (OrderPlacer) Place(
	orderID, deliveryID kernel.UUID,
	c *cart.Cart,
	address order.ShippingAddress,
	now time.Time,
) (PlacedOrder, error) {
	if c == nil || c.IsEmpty() {
		return PlacedOrder{}, ErrCartIsEmpty
	}

	o, err := order.NewOrder(orderID, c.CustomerID(), address, now)
	if err != nil {
		return PlacedOrder{}, err
	}

	for _, item := range c.Items() {
		if item.IsRental() {
			_, err = o.AddRentBooking(kernel.NewUUID(), item.VariantID(), item.Period(), item.Quantity(), item.PriceAtAdd())
		} else {
			_, err = o.AddSaleItem(kernel.NewUUID(), item.VariantID(), item.Quantity(), item.PriceAtAdd())
		}
		if err != nil {
			return PlacedOrder{}, err
		}
	}

	reservations, err := o.Place(now)
	if err != nil {
		return PlacedOrder{}, err
	}

	d, err := delivery.NewDelivery(deliveryID, o.ID(), now)
	if err != nil {
		return PlacedOrder{}, err
	}

	c.Clear()
	return PlacedOrder{Order: o, Delivery: d, Reservations: reservations}, nil
}
