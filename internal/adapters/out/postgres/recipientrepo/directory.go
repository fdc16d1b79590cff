// Package recipientrepo resolves who gets notified about an order and the
// invoice rendered for them. It reads across the order, user and catalog
// tables and never writes.
package recipientrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// removedProduct names lines whose variant was deleted from the catalog.
const removedProduct = "Removed product"

// GormRecipientDirectory implements RecipientDirectory using GORM.
type GormRecipientDirectory struct {
	db *gorm.DB
}

func NewGormRecipientDirectory(db *gorm.DB) *GormRecipientDirectory {
	return &GormRecipientDirectory{db: db}
}

type recipientRow struct {
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
	Phone     string
	Street    string
	City      string
	State     string
	ZipCode   string
	Total     decimal.Decimal
}

func (r *GormRecipientDirectory) Recipient(ctx context.Context, orderID kernel.UUID) (ports.Recipient, error) {
	row, err := r.recipientRow(ctx, orderID)
	if err != nil {
		return ports.Recipient{}, err
	}
	return toRecipient(orderID, row), nil
}

func (r *GormRecipientDirectory) recipientRow(ctx context.Context, orderID kernel.UUID) (recipientRow, error) {
	if err := orderID.Validate(); err != nil {
		return recipientRow{}, err
	}

	var rows []recipientRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT u.first_name, u.last_name, u.email,
		       o.created_at, o.phone, o.street, o.city, o.state, o.zip_code,
		       o.total_price AS total
		FROM orders o
		JOIN users u ON u.id = o.customer_id
		WHERE o.id = ?`, orderID.Bytes()).
		Scan(&rows).Error; err != nil {
		return recipientRow{}, err
	}
	if len(rows) == 0 {
		return recipientRow{}, errs.NewObjectNotFoundError("order", orderID.String())
	}
	return rows[0], nil
}

func toRecipient(orderID kernel.UUID, row recipientRow) ports.Recipient {
	return ports.Recipient{
		OrderID: orderID,
		Name:    strings.TrimSpace(row.FirstName + " " + row.LastName),
		Email:   row.Email,
	}
}

type invoiceLineRow struct {
	Kind      string
	Product   *string
	Size      *string
	Color     *string
	StartDate *time.Time
	EndDate   *time.Time
	Quantity  int
	Total     decimal.Decimal
}

// Invoice collects the order header, its lines in sale-then-rental order and
// the hand-over time of its delivery.
func (r *GormRecipientDirectory) Invoice(ctx context.Context, orderID kernel.UUID) (ports.Invoice, error) {
	row, err := r.recipientRow(ctx, orderID)
	if err != nil {
		return ports.Invoice{}, err
	}
	total, err := kernel.NewMoney(row.Total)
	if err != nil {
		return ports.Invoice{}, err
	}

	var deliveredAt []time.Time
	if err = r.db.WithContext(ctx).Raw(
		`SELECT delivered_at FROM deliveries WHERE order_id = ? AND delivered_at IS NOT NULL`,
		orderID.Bytes()).
		Scan(&deliveredAt).Error; err != nil {
		return ports.Invoice{}, err
	}

	var lineRows []invoiceLineRow
	if err = r.db.WithContext(ctx).Raw(`
		SELECT 'Purchase' AS kind, p.name AS product, v.size, v.color,
		       NULL::date AS start_date, NULL::date AS end_date,
		       s.quantity, s.total_price AS total
		FROM sale_items s
		LEFT JOIN variants v ON v.id = s.variant_id
		LEFT JOIN products p ON p.id = v.product_id
		WHERE s.order_id = ?
		UNION ALL
		SELECT 'Rental', p.name, v.size, v.color, b.start_date, b.end_date,
		       b.quantity, b.total_price
		FROM rent_bookings b
		LEFT JOIN variants v ON v.id = b.variant_id
		LEFT JOIN products p ON p.id = v.product_id
		WHERE b.order_id = ?
		ORDER BY kind, product`, orderID.Bytes(), orderID.Bytes()).
		Scan(&lineRows).Error; err != nil {
		return ports.Invoice{}, err
	}

	lines := make([]ports.InvoiceLine, 0, len(lineRows))
	for _, lr := range lineRows {
		line, lineErr := toInvoiceLine(lr)
		if lineErr != nil {
			return ports.Invoice{}, lineErr
		}
		lines = append(lines, line)
	}

	invoice := ports.Invoice{
		Recipient: toRecipient(orderID, row),
		PlacedAt:  row.CreatedAt,
		Address: fmt.Sprintf("%s, %s, %s %s (phone %s)",
			row.Street, row.City, row.State, row.ZipCode, row.Phone),
		Lines: lines,
		Total: total,
	}
	if len(deliveredAt) > 0 {
		invoice.DeliveredAt = deliveredAt[0]
	}
	return invoice, nil
}

func toInvoiceLine(row invoiceLineRow) (ports.InvoiceLine, error) {
	total, err := kernel.NewMoney(row.Total)
	if err != nil {
		return ports.InvoiceLine{}, err
	}

	line := ports.InvoiceLine{
		Product:  removedProduct,
		Variant:  variantLabel(row.Size, row.Color),
		Kind:     row.Kind,
		Quantity: row.Quantity,
		Total:    total,
	}
	if row.Product != nil {
		line.Product = *row.Product
	}
	if row.StartDate != nil && row.EndDate != nil {
		line.Period = row.StartDate.Format(time.DateOnly) + " to " + row.EndDate.Format(time.DateOnly)
	}
	return line, nil
}

// BookingItem names the product and variant of a rent booking.
func (r *GormRecipientDirectory) BookingItem(ctx context.Context, bookingID kernel.UUID) (string, error) {
	if err := bookingID.Validate(); err != nil {
		return "", err
	}

	var rows []struct {
		Found   bool
		Product *string
		Size    *string
		Color   *string
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT TRUE AS found, p.name AS product, v.size, v.color
		FROM rent_bookings b
		LEFT JOIN variants v ON v.id = b.variant_id
		LEFT JOIN products p ON p.id = v.product_id
		WHERE b.id = ?`, bookingID.Bytes()).
		Scan(&rows).Error; err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", errs.NewObjectNotFoundError("rent booking", bookingID.String())
	}

	name := removedProduct
	if rows[0].Product != nil {
		name = *rows[0].Product
	}
	if label := variantLabel(rows[0].Size, rows[0].Color); label != "" {
		name += " (" + label + ")"
	}
	return name, nil
}

func variantLabel(size, color *string) string {
	parts := make([]string, 0, 2)
	for _, p := range []*string{size, color} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, ", ")
}
