// Package ports defines the contracts between the storefront core and its
// adapters: repositories, the stock ledger, outgoing events and mail, and
// token issuing.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
)

// ProductRepository persists catalog products together with their variants.
type ProductRepository interface {
	// Add persists a new product and every variant with its initial stock.
	Add(ctx context.Context, product *catalog.Product) error

	// Update persists product fields and variant prices. Variants added since
	// the product was loaded are inserted with their initial stock, removed
	// ones are deleted. Stock of existing variants is never written here; it
	// belongs to the StockLedger.
	Update(ctx context.Context, product *catalog.Product) error

	// Get retrieves a product with all its variants.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetByVariant retrieves the product owning the given variant.
	GetByVariant(ctx context.Context, variantID kernel.UUID) (*catalog.Product, error)

	// Delete removes a product and its variants.
	Delete(ctx context.Context, id kernel.UUID) error
}
