package userrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"not null"`
	LastName     string    `gorm:"not null"`
	Email        string    `gorm:"not null;uniqueIndex"`
	Phone        string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

type RegistrationSessionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"not null"`
	Code      string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`

	FailedAttempts int `gorm:"not null;default:0"`
}

func (RegistrationSessionDTO) TableName() string {
	return "registration_sessions"
}

func userFromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		Role:         u.Role().String(),
		PasswordHash: u.PasswordHash().String(),
		CreatedAt:    u.CreatedAt(),
	}
}

func userToDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	password, err := user.RestorePasswordHash(dto.PasswordHash)
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, dto.FirstName, dto.LastName, dto.Email, dto.Phone, role, password, dto.CreatedAt)
}

func sessionFromDomain(s *user.RegistrationSession) RegistrationSessionDTO {
	return RegistrationSessionDTO{
		ID:        s.ID().Bytes(),
		Email:     s.Email(),
		Code:      s.Code(),
		ExpiresAt: s.ExpiresAt(),

		FailedAttempts: s.FailedAttempts(),
	}
}

func sessionToDomain(dto RegistrationSessionDTO) (*user.RegistrationSession, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return user.RestoreRegistrationSession(id, dto.Email, dto.Code, dto.ExpiresAt, dto.FailedAttempts)
}
