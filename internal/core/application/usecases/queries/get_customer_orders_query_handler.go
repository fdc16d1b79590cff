package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB, clock kernel.Clock) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db, clock: clock}
}

func (h GetCustomerOrdersQueryHandler) Handle(ctx context.Context, query GetCustomerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return findOrders(ctx, h.db, orderFilter{
		where:     "o.customer_id = ?",
		args:      []any{query.CustomerID().Bytes()},
		withLines: true,
	}, h.clock.Now())
}
