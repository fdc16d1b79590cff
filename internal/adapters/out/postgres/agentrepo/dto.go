package agentrepo

import (
	"time"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AgentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	VehicleNumber string    `gorm:"not null"`
	VehicleType   string    `gorm:"not null"`
	Active        bool      `gorm:"not null"`
	JoinedAt      time.Time `gorm:"not null"`
}

func (AgentDTO) TableName() string {
	return "agents"
}

func fromDomain(a *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:            a.ID().Bytes(),
		UserID:        a.UserID().Bytes(),
		VehicleNumber: a.VehicleNumber(),
		VehicleType:   a.VehicleType().String(),
		Active:        a.IsActive(),
		JoinedAt:      a.JoinedAt(),
	}
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	vehicleType, err := agent.ParseVehicleType(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, userID, dto.VehicleNumber, vehicleType, dto.Active, dto.JoinedAt)
}
