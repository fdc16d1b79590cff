package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when signing up with a taken address.
var ErrEmailAlreadyRegistered = errs.NewValueIsInvalidErrorWithCause("email", errors.New("email already registered"))

// RegistrationCodeSender delivers a sign-up code to an address.
type RegistrationCodeSender interface {
	SendRegistrationCode(ctx context.Context, email, code string, expiresAt time.Time) error
}

type RequestRegistrationCodeCommandHandler struct {
	uowFactory UserUoWFactory
	codes      kernel.CodeGenerator
	sender     RegistrationCodeSender
	clock      kernel.Clock
	ttl        time.Duration
}

func NewRequestRegistrationCodeCommandHandler(
	uowFactory UserUoWFactory,
	codes kernel.CodeGenerator,
	sender RegistrationCodeSender,
	clock kernel.Clock,
	ttl time.Duration,
) RequestRegistrationCodeCommandHandler {
	return RequestRegistrationCodeCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		sender:     sender,
		clock:      clock,
		ttl:        ttl,
	}
}

// Handle stores the session and then mails the code. A failed send is
// returned so the client can ask again; the stale session simply expires.
func (h RequestRegistrationCodeCommandHandler) Handle(ctx context.Context, cmd RequestRegistrationCodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.UserRepository().ExistsByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyRegistered
	}

	session, err := user.NewRegistrationSession(cmd.SessionID(), cmd.Email(), h.codes, h.clock.Now(), h.ttl)
	if err != nil {
		return err
	}
	if err = uow.RegistrationSessionRepository().Add(ctx, session); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.sender.SendRegistrationCode(ctx, session.Email(), session.Code(), session.ExpiresAt()); err != nil {
		return fmt.Errorf("send registration code: %w", err)
	}
	return nil
}
