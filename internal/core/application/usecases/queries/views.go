package queries

import (
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// removedProduct names lines whose variant was deleted from the catalog.
const removedProduct = "Removed product"

// LineView is one sale item or rent booking as shown in order listings.
type LineView struct {
	ID        kernel.UUID
	VariantID kernel.UUID
	Product   string
	Variant   string
	Quantity  int
	Status    string
	Total     kernel.Money
}

// RentalView extends LineView with the rental period and fees.
type RentalView struct {
	LineView
	StartDate      time.Time
	EndDate        time.Time
	DailyRate      kernel.Money
	ReturnedAt     *time.Time
	PendingLateFee kernel.Money
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	u, err := toUUID(*id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func toOptionalMoney(d decimal.NullDecimal) (*kernel.Money, error) {
	if !d.Valid {
		return nil, nil
	}
	m, err := kernel.NewMoney(d.Decimal)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func productName(name *string) string {
	if name == nil {
		return removedProduct
	}
	return *name
}

// variantLabel renders "M, Blue", skipping empty parts.
func variantLabel(size, color *string) string {
	parts := make([]string, 0, 2)
	for _, p := range []*string{size, color} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, ", ")
}

// likePattern turns free text into a case-insensitive substring pattern.
func likePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + escaped + "%"
}

// lineRow is the shared projection of sale_items and rent_bookings joined
// with the catalog. Rental-only columns are NULL for sale rows.
type lineRow struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	VariantID  uuid.UUID
	Product    *string
	Size       *string
	Color      *string
	Quantity   int
	Status     string
	Total      decimal.Decimal
	StartDate  *time.Time
	EndDate    *time.Time
	DailyRate  decimal.NullDecimal
	ReturnedAt *time.Time
	LateFee    decimal.NullDecimal
}

func (r lineRow) toLineView() (LineView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return LineView{}, err
	}
	variantID, err := toUUID(r.VariantID)
	if err != nil {
		return LineView{}, err
	}
	total, err := kernel.NewMoney(r.Total)
	if err != nil {
		return LineView{}, err
	}
	return LineView{
		ID:        id,
		VariantID: variantID,
		Product:   productName(r.Product),
		Variant:   variantLabel(r.Size, r.Color),
		Quantity:  r.Quantity,
		Status:    r.Status,
		Total:     total,
	}, nil
}

// toRentalView computes the late fee owed at now the same way a loaded
// RentBooking does: the frozen fee once returned, otherwise overdue days
// times the daily rate.
func (r lineRow) toRentalView(now time.Time) (RentalView, error) {
	line, err := r.toLineView()
	if err != nil {
		return RentalView{}, err
	}
	if r.StartDate == nil || r.EndDate == nil {
		return RentalView{}, errs.NewValueIsRequiredError("rental period")
	}
	period, err := kernel.NewDateRange(*r.StartDate, *r.EndDate)
	if err != nil {
		return RentalView{}, err
	}
	dailyRate, err := kernel.NewMoney(r.DailyRate.Decimal)
	if err != nil {
		return RentalView{}, err
	}

	fee := dailyRate.MulInt(period.DaysOverdue(now))
	if r.Status == order.RentReturned.String() {
		if fee, err = kernel.NewMoney(r.LateFee.Decimal); err != nil {
			return RentalView{}, err
		}
	}

	return RentalView{
		LineView:       line,
		StartDate:      period.Start(),
		EndDate:        period.End(),
		DailyRate:      dailyRate,
		ReturnedAt:     r.ReturnedAt,
		PendingLateFee: fee,
	}, nil
}

// saleLinesSQL and rentalLinesSQL select lineRow columns; callers append
// their own WHERE and ORDER BY.
const saleLinesSQL = `
	SELECT s.id, s.order_id, s.variant_id, p.name AS product, v.size, v.color,
	       s.quantity, s.status, s.total_price AS total
	FROM sale_items s
	LEFT JOIN variants v ON v.id = s.variant_id
	LEFT JOIN products p ON p.id = v.product_id`

const rentalLinesSQL = `
	SELECT b.id, b.order_id, b.variant_id, p.name AS product, v.size, v.color,
	       b.quantity, b.status, b.total_price AS total,
	       b.start_date, b.end_date, b.daily_rate, b.returned_at, b.late_fee
	FROM rent_bookings b
	LEFT JOIN variants v ON v.id = b.variant_id
	LEFT JOIN products p ON p.id = v.product_id`
