package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// Recipient is the customer to notify about an order.
type Recipient struct {
	OrderID kernel.UUID
	Name    string
	// Email is empty when the customer has none; such customers are skipped.
	Email string
}

// InvoiceLine is one row of an order invoice.
type InvoiceLine struct {
	Product  string
	Variant  string
	Kind     string
	Period   string
	Quantity int
	Total    kernel.Money
}

// Invoice is the read model rendered into the delivered-order e-mail.
type Invoice struct {
	Recipient
	PlacedAt    time.Time
	DeliveredAt time.Time
	Address     string
	Lines       []InvoiceLine
	Total       kernel.Money
}

// RecipientDirectory resolves who to notify about an order.
type RecipientDirectory interface {
	Recipient(ctx context.Context, orderID kernel.UUID) (Recipient, error)
	Invoice(ctx context.Context, orderID kernel.UUID) (Invoice, error)
	// BookingItem names the product and variant of a rent booking.
	BookingItem(ctx context.Context, bookingID kernel.UUID) (string, error)
}
