package user

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// PasswordHash is a bcrypt hash. The plain password never leaves NewPasswordHash.
type PasswordHash struct {
	hash string
}

func NewPasswordHash(plain string) (PasswordHash, error) {
	if len(plain) < minPasswordLength || len(plain) > maxPasswordLength {
		return PasswordHash{}, errs.NewValueIsOutOfRangeError("password length", len(plain),
			minPasswordLength, maxPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return PasswordHash{}, fmt.Errorf("hash password: %w", err)
	}
	return PasswordHash{hash: string(hash)}, nil
}

// RestorePasswordHash wraps a hash read from persistence.
func RestorePasswordHash(hash string) (PasswordHash, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return PasswordHash{}, errs.NewValueIsInvalidErrorWithCause("password hash", err)
	}
	return PasswordHash{hash: hash}, nil
}

func (p PasswordHash) String() string { return p.hash }

// Matches reports whether plain is the password this hash was built from.
func (p PasswordHash) Matches(plain string) bool {
	if p.hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}
