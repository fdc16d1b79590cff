// Package cartrepo persists customer carts as rows of cart_items.
package cartrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemDTO maps one row of cart_items. Period columns are set for
// rentals only.
type CartItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID   uuid.UUID       `gorm:"type:uuid;not null"`
	Kind        string          `gorm:"not null"`
	PeriodStart *time.Time      `gorm:"type:date"`
	PeriodEnd   *time.Time      `gorm:"type:date"`
	Quantity    int             `gorm:"not null"`
	PriceAtAdd  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AddedAt     time.Time       `gorm:"not null"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(c *cart.Cart) []CartItemDTO {
	customerID := c.CustomerID().Bytes()
	dtos := make([]CartItemDTO, 0, len(c.Items()))
	for _, item := range c.Items() {
		dto := CartItemDTO{
			ID:         item.ID().Bytes(),
			CustomerID: customerID,
			VariantID:  item.VariantID().Bytes(),
			Kind:       item.Kind().String(),
			Quantity:   item.Quantity(),
			PriceAtAdd: item.PriceAtAdd().Decimal(),
			AddedAt:    item.AddedAt(),
		}
		if item.IsRental() {
			start, end := item.Period().Start(), item.Period().End()
			dto.PeriodStart = &start
			dto.PeriodEnd = &end
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

func toDomain(customerID kernel.UUID, dtos []CartItemDTO) (*cart.Cart, error) {
	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		variantID, err := kernel.UUIDFromBytes(dto.VariantID[:])
		if err != nil {
			return nil, err
		}
		kind, err := cart.ParseItemKind(dto.Kind)
		if err != nil {
			return nil, err
		}
		var period kernel.DateRange
		if dto.PeriodStart != nil && dto.PeriodEnd != nil {
			if period, err = kernel.NewDateRange(*dto.PeriodStart, *dto.PeriodEnd); err != nil {
				return nil, err
			}
		}
		price, err := kernel.NewMoney(dto.PriceAtAdd)
		if err != nil {
			return nil, err
		}

		item, err := cart.RestoreItem(id, variantID, kind, period, dto.Quantity, price, dto.AddedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return cart.RestoreCart(customerID, items)
}
