package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GetOrdersQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetOrdersQueryHandler(db *gorm.DB, clock kernel.Clock) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, clock: clock}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return findOrders(ctx, h.db, orderFilter{withLines: true}, h.clock.Now())
}
