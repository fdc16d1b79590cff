package userrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRegistrationSessionRepository stores pending e-mail verifications.
type GormRegistrationSessionRepository struct {
	db *gorm.DB
}

func NewGormRegistrationSessionRepository(db *gorm.DB) *GormRegistrationSessionRepository {
	return &GormRegistrationSessionRepository{db: db}
}

func (r *GormRegistrationSessionRepository) Add(ctx context.Context, session *user.RegistrationSession) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := sessionFromDomain(session)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRegistrationSessionRepository) Get(ctx context.Context, id kernel.UUID) (*user.RegistrationSession, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RegistrationSessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("registration session", id.String())
		}
		return nil, err
	}
	return sessionToDomain(dto)
}

// Update stores the failed-attempt count, the only field that changes after
// the session is created.
func (r *GormRegistrationSessionRepository) Update(ctx context.Context, session *user.RegistrationSession) error {
	if err := session.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RegistrationSessionDTO{}).
		Where("id = ?", session.ID().Bytes()).
		Update("failed_attempts", session.FailedAttempts())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("registration session", session.ID().String())
	}
	return nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (r *GormRegistrationSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.db.WithContext(ctx).Delete(&RegistrationSessionDTO{}, "id = ?", id.Bytes()).Error
}
