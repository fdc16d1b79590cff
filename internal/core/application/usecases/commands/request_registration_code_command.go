package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/guard"
)

var ErrRequestRegistrationCodeCommandIsNotConstructed = errors.New(
	"RequestRegistrationCodeCommand must be created via NewRequestRegistrationCodeCommand constructor",
)

// RequestRegistrationCodeCommand starts sign-up: a code is e-mailed to the
// address and the session ID is handed back to the client.
type RequestRegistrationCodeCommand struct {
	sessionID kernel.UUID
	email     string

	guard guard.ConstructorGuard
}

func NewRequestRegistrationCodeCommand(sessionID kernel.UUID, email string) (RequestRegistrationCodeCommand, error) {
	normalized, emailErr := user.NormalizeEmail(email)
	if err := errors.Join(sessionID.Validate(), emailErr); err != nil {
		return RequestRegistrationCodeCommand{}, err
	}
	return RequestRegistrationCodeCommand{
		sessionID: sessionID,
		email:     normalized,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RequestRegistrationCodeCommand) Validate() error {
	return c.guard.Validate(ErrRequestRegistrationCodeCommandIsNotConstructed)
}

func (c RequestRegistrationCodeCommand) SessionID() kernel.UUID { return c.sessionID }
func (c RequestRegistrationCodeCommand) Email() string { return c.email }
