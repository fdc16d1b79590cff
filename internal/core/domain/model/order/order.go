package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrOrderHasNoItems       = errors.New("order must contain at least one item")
	ErrOrderAlreadyPlaced    = errors.New("items cannot be added to a placed order")
)

// Order is the package created at checkout. It owns its sale items and rent
// bookings and is the only way to change their status.
//
// Order follows these invariants:
//   - Has a customer and a shipping address
//   - Holds at least one line item once placed
//   - Total price is the sum of its line item totals at checkout
//   - Line item statuses only follow their transition tables
type Order struct {
	kernel.EventRecorder

	id           kernel.UUID
	customerID   kernel.UUID
	address      ShippingAddress
	totalPrice   kernel.Money
	createdAt    time.Time
	saleItems    []*SaleItem
	rentBookings []*RentBooking
	placed       bool

	isConstructed bool
}

// NewOrder starts an empty order. Items are added with AddSaleItem and
// AddRentBooking, then Place seals it.
func NewOrder(id, customerID kernel.UUID, address ShippingAddress, createdAt time.Time) (*Order, error) {
	o := &Order{
		address:       address,
		totalPrice:    kernel.ZeroMoney,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a placed order from persistence.
func RestoreOrder(
	id, customerID kernel.UUID,
	address ShippingAddress,
	totalPrice kernel.Money,
	createdAt time.Time,
	saleItems []*SaleItem,
	rentBookings []*RentBooking,
) (*Order, error) {
	o, err := NewOrder(id, customerID, address, createdAt)
	if err != nil {
		return nil, err
	}

	for _, item := range saleItems {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}
	for _, booking := range rentBookings {
		if err = booking.Validate(); err != nil {
			return nil, err
		}
	}

	o.totalPrice = totalPrice
	o.saleItems = saleItems
	o.rentBookings = rentBookings
	o.placed = true
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// MarkPersisted records the current line statuses as the stored ones.
// Repositories call it after a successful write.
func (o *Order) MarkPersisted() {
	for _, item := range o.saleItems {
		item.markPersisted()
	}
	for _, booking := range o.rentBookings {
		booking.markPersisted()
	}
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) CustomerID() kernel.UUID { return o.customerID }
func (o *Order) Address() ShippingAddress { return o.address }
func (o *Order) TotalPrice() kernel.Money { return o.totalPrice }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) SaleItems() []*SaleItem {
	out := make([]*SaleItem, len(o.saleItems))
	copy(out, o.saleItems)
	return out
}

func (o *Order) RentBookings() []*RentBooking {
	out := make([]*RentBooking, len(o.rentBookings))
	copy(out, o.rentBookings)
	return out
}

// AddSaleItem adds a Pending purchase line priced at unitPrice x quantity.
func (o *Order) AddSaleItem(id, variantID kernel.UUID, quantity int, unitPrice kernel.Money) (*SaleItem, error) {
	if o.placed {
		return nil, ErrOrderAlreadyPlaced
	}

	item, err := RestoreSaleItem(id, o.id, variantID, quantity, unitPrice, unitPrice.MulInt(quantity), SalePending)
	if err != nil {
		return nil, err
	}

	o.saleItems = append(o.saleItems, item)
	o.totalPrice = o.totalPrice.Add(item.totalPrice)
	return item, nil
}

// AddRentBooking adds a Pending rental priced at dailyRate x days x quantity.
func (o *Order) AddRentBooking(
	id, variantID kernel.UUID,
	period kernel.DateRange,
	quantity int,
	dailyRate kernel.Money,
) (*RentBooking, error) {
	if o.placed {
		return nil, ErrOrderAlreadyPlaced
	}

	total := dailyRate.MulInt(period.Days()).MulInt(quantity)
	booking, err := RestoreRentBooking(id, o.id, variantID, period, quantity, dailyRate, total,
		RentPending, nil, kernel.ZeroMoney)
	if err != nil {
		return nil, err
	}

	o.rentBookings = append(o.rentBookings, booking)
	o.totalPrice = o.totalPrice.Add(booking.totalPrice)
	return booking, nil
}

// Place seals the order and returns the stock reservations its lines need.
func (o *Order) Place(now time.Time) ([]StockMovement, error) {
	if o.placed {
		return nil, ErrOrderAlreadyPlaced
	}
	if len(o.saleItems) == 0 && len(o.rentBookings) == 0 {
		return nil, ErrOrderHasNoItems
	}

	reservations := make([]StockMovement, 0, len(o.saleItems)+len(o.rentBookings))
	for _, item := range o.saleItems {
		reservations = append(reservations, StockMovement{VariantID: item.variantID, Delta: -item.quantity})
	}
	for _, booking := range o.rentBookings {
		reservations = append(reservations, StockMovement{VariantID: booking.variantID, Delta: -booking.quantity})
	}

	o.placed = true
	o.Record(newOrderPlaced(o, now))
	return reservations, nil
}

// SaleItem looks up a purchase line.
func (o *Order) SaleItem(id kernel.UUID) (*SaleItem, error) {
	for _, item := range o.saleItems {
		if item.id.IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("sale item", id.String())
}

// RentBooking looks up a rental line.
func (o *Order) RentBooking(id kernel.UUID) (*RentBooking, error) {
	for _, booking := range o.rentBookings {
		if booking.id.IsEqual(id) {
			return booking, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("rent booking", id.String())
}

// TransitionSaleItem moves a purchase line along its transition table. The
// returned movement is non-nil when the new status puts stock back.
func (o *Order) TransitionSaleItem(itemID kernel.UUID, to SaleStatus, now time.Time) (*StockMovement, error) {
	item, err := o.SaleItem(itemID)
	if err != nil {
		return nil, err
	}

	from := item.status
	movement, err := item.transition(to)
	if err != nil {
		return nil, err
	}

	o.Record(SaleItemStatusChanged{
		BaseEvent: kernel.NewBaseEvent(EventSaleItemStatusChanged, o.id, now),
		ItemID:    item.id,
		VariantID: item.variantID,
		From:      from,
		To:        to,
	})
	return movement, nil
}

// TransitionRentBooking moves a rental line along its transition table.
// Returning a booking stamps returnedAt and freezes the late fee.
func (o *Order) TransitionRentBooking(bookingID kernel.UUID, to RentStatus, now time.Time) (*StockMovement, error) {
	booking, err := o.RentBooking(bookingID)
	if err != nil {
		return nil, err
	}
	return o.transitionBooking(booking, to, now)
}

// ActivateRentals marks every booking that is still on its way as Active.
// Called when the delivery of this order is confirmed.
func (o *Order) ActivateRentals(now time.Time) error {
	for _, booking := range o.rentBookings {
		if booking.status == RentActive || !booking.status.CanTransitionTo(RentActive) {
			continue
		}
		if _, err := o.transitionBooking(booking, RentActive, now); err != nil {
			return err
		}
	}
	return nil
}

// MarkOverdue moves Active bookings whose period has ended to Overdue and
// returns how many changed.
func (o *Order) MarkOverdue(now time.Time) (int, error) {
	changed := 0
	for _, booking := range o.rentBookings {
		if booking.status != RentActive || !booking.IsPastDue(now) {
			continue
		}
		if _, err := o.transitionBooking(booking, RentOverdue, now); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

func (o *Order) transitionBooking(booking *RentBooking, to RentStatus, now time.Time) (*StockMovement, error) {
	from := booking.status
	movement, err := booking.transition(to, now)
	if err != nil {
		return nil, err
	}

	o.Record(RentBookingStatusChanged{
		BaseEvent: kernel.NewBaseEvent(EventRentBookingStatusChanged, o.id, now),
		BookingID: booking.id,
		VariantID: booking.variantID,
		Period:    booking.period,
		From:      from,
		To:        to,
	})
	return movement, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address ShippingAddress) error {
	if address.street == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	return nil
}
