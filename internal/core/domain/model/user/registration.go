package user

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// MaxVerifyAttempts is how many wrong codes a session accepts before it is
// spent and a new code has to be requested.
const MaxVerifyAttempts = 5

var (
	ErrRegistrationSessionIsNotConstructed = errors.New("RegistrationSession must be created via NewRegistrationSession constructor")
	ErrRegistrationExpired                 = errs.NewValueIsInvalidErrorWithCause("verification code", errors.New("code has expired"))
	ErrVerificationCodeMismatch            = errs.NewValueIsInvalidErrorWithCause("verification code", errors.New("code does not match"))
	ErrRegistrationEmailMismatch           = errs.NewValueIsInvalidErrorWithCause("email", errors.New("email does not match the verified address"))
	ErrVerificationAttemptsExhausted       = errs.NewValueIsInvalidErrorWithCause("verification code", errors.New("too many failed attempts, request a new code"))
)

// RegistrationSession holds the code e-mailed to an address until the
// account for it is created. Its ID is the token handed to the client.
type RegistrationSession struct {
	id        kernel.UUID
	email     string
	code      string
	expiresAt time.Time

	failedAttempts int

	isConstructed bool
}

// NewRegistrationSession starts a session for email that expires after ttl.
func NewRegistrationSession(
	id kernel.UUID,
	email string,
	codes kernel.CodeGenerator,
	now time.Time,
	ttl time.Duration,
) (*RegistrationSession, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}
	code, err := codes.Generate()
	if err != nil {
		return nil, err
	}

	return RestoreRegistrationSession(id, normalized, code, now.Add(ttl), 0)
}

func RestoreRegistrationSession(
	id kernel.UUID,
	email, code string,
	expiresAt time.Time,
	failedAttempts int,
) (*RegistrationSession, error) {
	var codeErr, attemptsErr error
	if code == "" {
		codeErr = errs.NewValueIsRequiredError("verification code")
	}
	if failedAttempts < 0 || failedAttempts > MaxVerifyAttempts {
		attemptsErr = errs.NewValueIsOutOfRangeError("failed attempts", failedAttempts, 0, MaxVerifyAttempts)
	}
	if err := errors.Join(id.Validate(), codeErr, attemptsErr); err != nil {
		return nil, err
	}

	return &RegistrationSession{
		id:             id,
		email:          email,
		code:           code,
		expiresAt:      expiresAt.UTC(),
		failedAttempts: failedAttempts,
		isConstructed:  true,
	}, nil
}

func (s *RegistrationSession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrRegistrationSessionIsNotConstructed
	}
	return nil
}

func (s *RegistrationSession) ID() kernel.UUID { return s.id }
func (s *RegistrationSession) Email() string { return s.email }
func (s *RegistrationSession) Code() string { return s.code }
func (s *RegistrationSession) ExpiresAt() time.Time { return s.expiresAt }
func (s *RegistrationSession) FailedAttempts() int { return s.failedAttempts }

// IsExhausted reports whether the session has used up its wrong guesses.
func (s *RegistrationSession) IsExhausted() bool { return s.failedAttempts >= MaxVerifyAttempts }

// Verify checks the code and that the account is being opened for the
// address the code was sent to. A wrong code counts against the session;
// the guess that reaches MaxVerifyAttempts returns
// ErrVerificationAttemptsExhausted and so does every call after it.
func (s *RegistrationSession) Verify(code, email string, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsExhausted() {
		return ErrVerificationAttemptsExhausted
	}
	if !now.Before(s.expiresAt) {
		return ErrRegistrationExpired
	}
	if code != s.code {
		s.failedAttempts++
		if s.IsExhausted() {
			return ErrVerificationAttemptsExhausted
		}
		return ErrVerificationCodeMismatch
	}
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	if normalized != s.email {
		return ErrRegistrationEmailMismatch
	}
	return nil
}
