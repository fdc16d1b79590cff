package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	ErrSaleItemIsNotConstructed    = errors.New("SaleItem must be created via Order.AddSaleItem or RestoreSaleItem")
	ErrRentBookingIsNotConstructed = errors.New("RentBooking must be created via Order.AddRentBooking or RestoreRentBooking")
)

// StockMovement is the ledger adjustment a line item change requires.
type StockMovement struct {
	VariantID kernel.UUID
	Delta     int
}

// SaleItem is one purchased variant within an order.
type SaleItem struct {
	id         kernel.UUID
	orderID    kernel.UUID
	variantID  kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	totalPrice kernel.Money
	status     SaleStatus

	// storedStatus is the status the row had when it was read; writes are
	// conditional on it so two racing transitions cannot both win.
	storedStatus SaleStatus

	isConstructed bool
}

// RestoreSaleItem rebuilds a sale item from persistence.
func RestoreSaleItem(
	id, orderID, variantID kernel.UUID,
	quantity int,
	unitPrice, totalPrice kernel.Money,
	status SaleStatus,
) (*SaleItem, error) {
	item := &SaleItem{
		orderID:       orderID,
		variantID:     variantID,
		unitPrice:     unitPrice,
		totalPrice:    totalPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		validateIDs(id, orderID, variantID),
		validateQuantity(quantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	item.id = id
	item.quantity = quantity
	item.status = status
	item.storedStatus = status
	return item, nil
}

func (i *SaleItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrSaleItemIsNotConstructed
	}
	return nil
}

func (i *SaleItem) ID() kernel.UUID { return i.id }
func (i *SaleItem) OrderID() kernel.UUID { return i.orderID }
func (i *SaleItem) VariantID() kernel.UUID { return i.variantID }
func (i *SaleItem) Quantity() int { return i.quantity }
func (i *SaleItem) UnitPrice() kernel.Money { return i.unitPrice }
func (i *SaleItem) TotalPrice() kernel.Money { return i.totalPrice }
func (i *SaleItem) Status() SaleStatus { return i.status }
func (i *SaleItem) StoredStatus() SaleStatus { return i.storedStatus }

// IsChanged reports whether the status differs from the stored one.
func (i *SaleItem) IsChanged() bool {
	return i.status != i.storedStatus
}

func (i *SaleItem) markPersisted() { i.storedStatus = i.status }

func (i *SaleItem) transition(to SaleStatus) (*StockMovement, error) {
	next, err := i.status.TransitionTo(to)
	if err != nil {
		return nil, err
	}

	var movement *StockMovement
	if next.Restocks() && !i.status.Restocks() {
		movement = &StockMovement{VariantID: i.variantID, Delta: i.quantity}
	}
	i.status = next
	return movement, nil
}

// RentBooking is one rented variant within an order.
type RentBooking struct {
	id         kernel.UUID
	orderID    kernel.UUID
	variantID  kernel.UUID
	period     kernel.DateRange
	quantity   int
	dailyRate  kernel.Money
	totalPrice kernel.Money
	status     RentStatus
	returnedAt *time.Time
	lateFee    kernel.Money

	storedStatus RentStatus

	isConstructed bool
}

// RestoreRentBooking rebuilds a booking from persistence.
func RestoreRentBooking(
	id, orderID, variantID kernel.UUID,
	period kernel.DateRange,
	quantity int,
	dailyRate, totalPrice kernel.Money,
	status RentStatus,
	returnedAt *time.Time,
	lateFee kernel.Money,
) (*RentBooking, error) {
	b := &RentBooking{
		orderID:       orderID,
		variantID:     variantID,
		period:        period,
		dailyRate:     dailyRate,
		totalPrice:    totalPrice,
		returnedAt:    returnedAt,
		lateFee:       lateFee,
		isConstructed: true,
	}

	var periodErr error
	if period.IsZero() {
		periodErr = errs.NewValueIsRequiredError("rental period")
	}

	if err := errors.Join(
		validateIDs(id, orderID, variantID),
		validateQuantity(quantity),
		status.Validate(),
		periodErr,
	); err != nil {
		return nil, err
	}

	b.id = id
	b.quantity = quantity
	b.status = status
	b.storedStatus = status
	return b, nil
}

func (b *RentBooking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrRentBookingIsNotConstructed
	}
	return nil
}

func (b *RentBooking) ID() kernel.UUID { return b.id }
func (b *RentBooking) OrderID() kernel.UUID { return b.orderID }
func (b *RentBooking) VariantID() kernel.UUID { return b.variantID }
func (b *RentBooking) Period() kernel.DateRange { return b.period }
func (b *RentBooking) Quantity() int { return b.quantity }
func (b *RentBooking) DailyRate() kernel.Money { return b.dailyRate }
func (b *RentBooking) TotalPrice() kernel.Money { return b.totalPrice }
func (b *RentBooking) Status() RentStatus { return b.status }
func (b *RentBooking) StoredStatus() RentStatus { return b.storedStatus }
func (b *RentBooking) ReturnedAt() *time.Time { return b.returnedAt }
func (b *RentBooking) LateFee() kernel.Money { return b.lateFee }

func (b *RentBooking) IsChanged() bool {
	return b.status != b.storedStatus
}

func (b *RentBooking) markPersisted() { b.storedStatus = b.status }

// PendingLateFee is the fee owed so far: the frozen fee once returned,
// otherwise overdue days times the daily rate.
func (b *RentBooking) PendingLateFee(now time.Time) kernel.Money {
	if b.status == RentReturned {
		return b.lateFee
	}
	return b.dailyRate.MulInt(b.period.DaysOverdue(now))
}

// IsPastDue reports whether the rental period ended before today.
func (b *RentBooking) IsPastDue(now time.Time) bool {
	return b.period.DaysOverdue(now) > 0
}

func (b *RentBooking) transition(to RentStatus, now time.Time) (*StockMovement, error) {
	next, err := b.status.TransitionTo(to)
	if err != nil {
		return nil, err
	}

	if next == RentReturned {
		if b.returnedAt == nil {
			returned := now.UTC()
			b.returnedAt = &returned
		}
		b.lateFee = b.dailyRate.MulInt(b.period.DaysOverdue(*b.returnedAt))
	}

	var movement *StockMovement
	if next.Restocks() && !b.status.Restocks() {
		movement = &StockMovement{VariantID: b.variantID, Delta: b.quantity}
	}
	b.status = next
	return movement, nil
}

func validateIDs(ids ...kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
