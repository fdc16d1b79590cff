package ports

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
)

// Identity is who a request acts as.
type Identity struct {
	UserID kernel.UUID
	Role   user.Role
	// AgentID is set only for delivery agents.
	AgentID kernel.UUID
}

func (i Identity) IsAgent() bool { return i.Role == user.RoleAgent && i.AgentID.Validate() == nil }

// TokenIssuer signs and verifies access tokens.
type TokenIssuer interface {
	Issue(identity Identity) (string, error)
	Parse(token string) (Identity, error)
}
