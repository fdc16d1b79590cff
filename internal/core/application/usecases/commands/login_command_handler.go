package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginCommandHandler checks credentials and issues an access token carrying
// the user's role and, for agents, the agent ID.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	tokens     ports.TokenIssuer
}

func NewLoginCommandHandler(uowFactory UserUoWFactory, tokens ports.TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, tokens: tokens}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !u.CheckPassword(cmd.Password()) {
		return "", ErrInvalidCredentials
	}

	identity := ports.Identity{UserID: u.ID(), Role: u.Role()}
	if u.Role() == user.RoleAgent {
		a, agentErr := uow.AgentRepository().GetByUser(ctx, u.ID())
		if agentErr != nil {
			return "", agentErr
		}
		identity.AgentID = a.ID()
	}

	return h.tokens.Issue(identity)
}
