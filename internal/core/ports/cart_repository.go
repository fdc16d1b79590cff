package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository persists one cart per customer.
type CartRepository interface {
	// Get returns the customer's cart; a customer without one gets an empty cart.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save replaces the stored items of the cart with its current items.
	Save(ctx context.Context, c *cart.Cart) error
}
