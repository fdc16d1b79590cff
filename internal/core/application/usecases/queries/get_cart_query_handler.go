package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

type cartItemRow struct {
	ID          uuid.UUID
	VariantID   uuid.UUID
	Product     string
	Size        string
	Color       string
	Kind        string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Quantity    int
	PriceAtAdd  decimal.Decimal
	Stock       int
}

// Handle prices every line the way the cart aggregate does, so the total
// shown is the total checkout will charge.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	var rows []cartItemRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT c.id, c.variant_id, p.name AS product, v.size, v.color, c.kind,
		       c.period_start, c.period_end, c.quantity, c.price_at_add, v.stock
		FROM cart_items c
		JOIN variants v ON v.id = c.variant_id
		JOIN products p ON p.id = v.product_id
		WHERE c.customer_id = ?
		ORDER BY c.added_at, c.id`, query.CustomerID().Bytes()).
		Scan(&rows).Error; err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{Items: make([]CartItemView, 0, len(rows)), Total: kernel.ZeroMoney}
	for _, row := range rows {
		item, err := row.toView()
		if err != nil {
			return GetCartQueryResponse{}, err
		}
		resp.Items = append(resp.Items, item)
		resp.Total = resp.Total.Add(item.Cost)
	}
	return resp, nil
}

func (r cartItemRow) toView() (CartItemView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return CartItemView{}, err
	}
	variantID, err := toUUID(r.VariantID)
	if err != nil {
		return CartItemView{}, err
	}
	kind, err := cart.ParseItemKind(r.Kind)
	if err != nil {
		return CartItemView{}, err
	}
	price, err := kernel.NewMoney(r.PriceAtAdd)
	if err != nil {
		return CartItemView{}, err
	}

	view := CartItemView{
		ID:         id,
		VariantID:  variantID,
		Product:    r.Product,
		Variant:    variantLabel(&r.Size, &r.Color),
		Kind:       kind.String(),
		Quantity:   r.Quantity,
		PriceAtAdd: price,
		Cost:       price.MulInt(r.Quantity),
		InStock:    r.Stock,
	}
	if kind == cart.Rental && r.PeriodStart != nil && r.PeriodEnd != nil {
		period, periodErr := kernel.NewDateRange(*r.PeriodStart, *r.PeriodEnd)
		if periodErr != nil {
			return CartItemView{}, periodErr
		}
		start, end := period.Start(), period.End()
		view.StartDate, view.EndDate = &start, &end
		view.Days = period.Days()
		view.Cost = price.MulInt(period.Days()).MulInt(r.Quantity)
	}
	return view, nil
}
