package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordsDoNotMatch = errs.NewValueIsInvalidErrorWithCause("password", errors.New("passwords do not match"))
)

// RegisterUserCommand completes sign-up with the e-mailed code.
type RegisterUserCommand struct {
	sessionID kernel.UUID
	code      string
	userID    kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	password  string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	sessionID kernel.UUID,
	code string,
	userID kernel.UUID,
	firstName, lastName, email, phone, password, confirmPassword string,
) (RegisterUserCommand, error) {
	var codeErr, passwordErr error
	if strings.TrimSpace(code) == "" {
		codeErr = errs.NewValueIsRequiredError("verification code")
	}
	if password != confirmPassword {
		passwordErr = ErrPasswordsDoNotMatch
	}
	if err := errors.Join(sessionID.Validate(), userID.Validate(), codeErr, passwordErr); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		sessionID: sessionID,
		code:      strings.TrimSpace(code),
		userID:    userID,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		password:  password,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) SessionID() kernel.UUID { return c.sessionID }
func (c RegisterUserCommand) Code() string { return c.code }
func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }
func (c RegisterUserCommand) FirstName() string { return c.firstName }
func (c RegisterUserCommand) LastName() string { return c.lastName }
func (c RegisterUserCommand) Email() string { return c.email }
func (c RegisterUserCommand) Phone() string { return c.phone }
func (c RegisterUserCommand) Password() string { return c.password }
