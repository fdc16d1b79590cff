package queries

import (
	"context"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAgentTasksQueryHandler returns the agent's deliveries that are neither
// Delivered nor Failed, newest first, with the lines to hand over.
type GetAgentTasksQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetAgentTasksQueryHandler(db *gorm.DB, clock kernel.Clock) GetAgentTasksQueryHandler {
	return GetAgentTasksQueryHandler{db: db, clock: clock}
}

func (h GetAgentTasksQueryHandler) Handle(ctx context.Context, query GetAgentTasksQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return findOrders(ctx, h.db, orderFilter{
		where: "d.agent_id = ? AND d.status NOT IN ?",
		args: []any{
			query.AgentID().Bytes(),
			[]string{delivery.StatusDelivered.String(), delivery.StatusFailed.String()},
		},
		withLines: true,
	}, h.clock.Now())
}
