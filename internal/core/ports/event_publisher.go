package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events after the transaction that recorded
// them committed. Implementations must not block the caller on slow consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
