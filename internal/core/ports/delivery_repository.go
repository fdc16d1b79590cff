package ports

import (
	"context"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
)

// DeliveryRepository persists delivery tasks.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update is conditional on the status the delivery had when loaded and
	// returns a conflict error when it changed meanwhile.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// CountOpenByAgent returns, per agent, how many assigned deliveries are
	// neither Delivered nor Failed. Agents without any are absent.
	CountOpenByAgent(ctx context.Context) (map[kernel.UUID]int, error)
}
