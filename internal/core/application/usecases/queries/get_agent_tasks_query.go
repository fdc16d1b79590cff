package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetAgentTasksQueryIsNotConstructed = errors.New(
		"GetAgentTasksQuery must be created via NewGetAgentTasksQuery constructor",
	)
)

// GetAgentTasksQuery lists the open deliveries assigned to an agent.
//
// Example:
//
//	query, err := NewGetAgentTasksQuery(agentID)
//	if err != nil {
//	    return err
//	}
//	tasks, err := NewGetAgentTasksQueryHandler(db, clock).Handle(ctx, query)
//	for _, task := range tasks {
//	    fmt.Printf("%s: %s\n", task.DeliveryStatus, task.Address)
//	}
type GetAgentTasksQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAgentTasksQuery(agentID kernel.UUID) (GetAgentTasksQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentTasksQuery{}, err
	}
	return GetAgentTasksQuery{agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAgentTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentTasksQueryIsNotConstructed)
}

func (q GetAgentTasksQuery) AgentID() kernel.UUID { return q.agentID }
