// Package orderrepo persists the order aggregate: the orders row, its sale
// items and its rent bookings.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO maps the orders table with its two kinds of lines.
type OrderDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Address      AddressDTO       `gorm:"embedded"`
	TotalPrice   decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	CreatedAt    time.Time        `gorm:"not null"`
	SaleItems    []SaleItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	RentBookings []RentBookingDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the shipping address embedded in the orders row.
type AddressDTO struct {
	Phone   string `gorm:"not null"`
	Street  string `gorm:"not null"`
	City    string `gorm:"not null"`
	State   string `gorm:"not null"`
	ZipCode string `gorm:"not null"`
}

type SaleItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status     string          `gorm:"not null"`
}

func (SaleItemDTO) TableName() string {
	return "sale_items"
}

type RentBookingDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID  uuid.UUID       `gorm:"type:uuid;not null"`
	StartDate  time.Time       `gorm:"type:date;not null"`
	EndDate    time.Time       `gorm:"type:date;not null"`
	Quantity   int             `gorm:"not null"`
	DailyRate  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status     string          `gorm:"not null"`
	ReturnedAt *time.Time
	LateFee    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (RentBookingDTO) TableName() string {
	return "rent_bookings"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	saleItems := make([]SaleItemDTO, 0, len(o.SaleItems()))
	for _, item := range o.SaleItems() {
		saleItems = append(saleItems, saleItemFromDomain(orderID, item))
	}
	bookings := make([]RentBookingDTO, 0, len(o.RentBookings()))
	for _, booking := range o.RentBookings() {
		bookings = append(bookings, rentBookingFromDomain(orderID, booking))
	}

	address := o.Address()
	return OrderDTO{
		ID:         orderID,
		CustomerID: o.CustomerID().Bytes(),
		Address: AddressDTO{
			Phone:   address.Phone(),
			Street:  address.Street(),
			City:    address.City(),
			State:   address.State(),
			ZipCode: address.ZipCode(),
		},
		TotalPrice:   o.TotalPrice().Decimal(),
		CreatedAt:    o.CreatedAt(),
		SaleItems:    saleItems,
		RentBookings: bookings,
	}
}

func saleItemFromDomain(orderID uuid.UUID, item *order.SaleItem) SaleItemDTO {
	return SaleItemDTO{
		ID:         item.ID().Bytes(),
		OrderID:    orderID,
		VariantID:  item.VariantID().Bytes(),
		Quantity:   item.Quantity(),
		UnitPrice:  item.UnitPrice().Decimal(),
		TotalPrice: item.TotalPrice().Decimal(),
		Status:     item.Status().String(),
	}
}

func rentBookingFromDomain(orderID uuid.UUID, booking *order.RentBooking) RentBookingDTO {
	return RentBookingDTO{
		ID:         booking.ID().Bytes(),
		OrderID:    orderID,
		VariantID:  booking.VariantID().Bytes(),
		StartDate:  booking.Period().Start(),
		EndDate:    booking.Period().End(),
		Quantity:   booking.Quantity(),
		DailyRate:  booking.DailyRate().Decimal(),
		TotalPrice: booking.TotalPrice().Decimal(),
		Status:     booking.Status().String(),
		ReturnedAt: booking.ReturnedAt(),
		LateFee:    booking.LateFee().Decimal(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	address, err := order.NewShippingAddress(dto.Address.Phone, dto.Address.Street, dto.Address.City,
		dto.Address.State, dto.Address.ZipCode)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	saleItems := make([]*order.SaleItem, 0, len(dto.SaleItems))
	for _, itemDTO := range dto.SaleItems {
		item, itemErr := saleItemToDomain(id, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		saleItems = append(saleItems, item)
	}
	bookings := make([]*order.RentBooking, 0, len(dto.RentBookings))
	for _, bookingDTO := range dto.RentBookings {
		booking, bookingErr := rentBookingToDomain(id, bookingDTO)
		if bookingErr != nil {
			return nil, bookingErr
		}
		bookings = append(bookings, booking)
	}

	return order.RestoreOrder(id, customerID, address, total, dto.CreatedAt, saleItems, bookings)
}

func saleItemToDomain(orderID kernel.UUID, dto SaleItemDTO) (*order.SaleItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	variantID, err := kernel.UUIDFromBytes(dto.VariantID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseSaleStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	unit, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}
	return order.RestoreSaleItem(id, orderID, variantID, dto.Quantity, unit, total, status)
}

func rentBookingToDomain(orderID kernel.UUID, dto RentBookingDTO) (*order.RentBooking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	variantID, err := kernel.UUIDFromBytes(dto.VariantID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseRentStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	period, err := kernel.NewDateRange(dto.StartDate, dto.EndDate)
	if err != nil {
		return nil, err
	}
	rate, err := kernel.NewMoney(dto.DailyRate)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}
	lateFee, err := kernel.NewMoney(dto.LateFee)
	if err != nil {
		return nil, err
	}
	return order.RestoreRentBooking(id, orderID, variantID, period, dto.Quantity, rate, total,
		status, dto.ReturnedAt, lateFee)
}
