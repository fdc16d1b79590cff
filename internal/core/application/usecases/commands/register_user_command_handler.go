package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
)

// RegisterUserCommandHandler verifies the code, creates a customer account
// and consumes the registration session. Wrong codes are counted and a
// session that runs out of attempts is deleted.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	clock      kernel.Clock
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, clock kernel.Clock) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
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

	sessions := uow.RegistrationSessionRepository()
	session, err := sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = session.Verify(cmd.Code(), cmd.Email(), now); err != nil {
		return h.recordFailedAttempt(ctx, uow, sessions, session, err)
	}

	users := uow.UserRepository()
	exists, err := users.ExistsByEmail(ctx, session.Email())
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyRegistered
	}

	hash, err := user.NewPasswordHash(cmd.Password())
	if err != nil {
		return err
	}
	u, err := user.NewUser(cmd.UserID(), cmd.FirstName(), cmd.LastName(), session.Email(), cmd.Phone(),
		user.RoleCustomer, hash, now)
	if err != nil {
		return err
	}

	if err = users.Add(ctx, u); err != nil {
		return err
	}
	if err = sessions.Delete(ctx, session.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// recordFailedAttempt commits the attempt count a wrong code left on the
// session and returns verifyErr. Other verification errors change nothing.
func (h RegisterUserCommandHandler) recordFailedAttempt(
	ctx context.Context,
	uow UserUoW,
	sessions ports.RegistrationSessionRepository,
	session *user.RegistrationSession,
	verifyErr error,
) error {
	var err error
	switch {
	case errors.Is(verifyErr, user.ErrVerificationAttemptsExhausted):
		err = sessions.Delete(ctx, session.ID())
	case errors.Is(verifyErr, user.ErrVerificationCodeMismatch):
		err = sessions.Update(ctx, session)
	default:
		return verifyErr
	}
	if err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}
	return verifyErr
}
