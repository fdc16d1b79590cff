package deliveryrepo

import (
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DeliveryDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	AgentID     *uuid.UUID     `gorm:"type:uuid;index"`
	Status      string         `gorm:"not null"`
	Code        string         `gorm:"not null"`
	IssuedCodes pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	DeliveredAt *time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:          d.ID().Bytes(),
		OrderID:     d.OrderID().Bytes(),
		Status:      d.Status().String(),
		Code:        d.Code(),
		IssuedCodes: pq.StringArray(d.IssuedCodes()),
		CreatedAt:   d.CreatedAt(),
		DeliveredAt: d.DeliveredAt(),
	}
	if dto.IssuedCodes == nil {
		dto.IssuedCodes = pq.StringArray{}
	}
	if d.HasAgent() {
		agentID := d.AgentID().Bytes()
		dto.AgentID = &agentID
	}
	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	var agentID kernel.UUID
	if dto.AgentID != nil {
		if agentID, err = kernel.UUIDFromBytes(dto.AgentID[:]); err != nil {
			return nil, err
		}
	}
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, agentID, status, dto.Code, dto.IssuedCodes,
		dto.CreatedAt, dto.DeliveredAt)
}
