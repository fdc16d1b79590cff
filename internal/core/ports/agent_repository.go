package ports

import (
	"context"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
)

// AgentRepository persists delivery agents.
type AgentRepository interface {
	Add(ctx context.Context, aggregate *agent.Agent) error
	Update(ctx context.Context, aggregate *agent.Agent) error
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)
	GetByUser(ctx context.Context, userID kernel.UUID) (*agent.Agent, error)
	GetAllActive(ctx context.Context) ([]*agent.Agent, error)
}
