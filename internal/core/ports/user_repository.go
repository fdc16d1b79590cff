package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
)

// UserRepository persists accounts. Email lookups are case-insensitive.
type UserRepository interface {
	// Add persists a new user. A taken email yields a conflict error.
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RegistrationSessionRepository stores pending e-mail verifications.
type RegistrationSessionRepository interface {
	Add(ctx context.Context, session *user.RegistrationSession) error
	Get(ctx context.Context, id kernel.UUID) (*user.RegistrationSession, error)
	Update(ctx context.Context, session *user.RegistrationSession) error
	Delete(ctx context.Context, id kernel.UUID) error
}
