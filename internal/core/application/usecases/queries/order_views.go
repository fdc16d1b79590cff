package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is an order with its delivery state and, when requested, its
// lines. DeliveryStatus is empty for an order without a delivery task.
type OrderView struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	CustomerName   string
	CustomerEmail  string
	CreatedAt      time.Time
	Address        string
	TotalPrice     kernel.Money
	DeliveryID     *kernel.UUID
	DeliveryStatus string
	AgentID        *kernel.UUID
	AgentName      string
	SaleItems      []LineView
	RentBookings   []RentalView
}

type orderHeaderRow struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	CreatedAt      time.Time
	Phone          string
	Street         string
	City           string
	State          string
	ZipCode        string
	TotalPrice     decimal.Decimal
	DeliveryID     *uuid.UUID
	DeliveryStatus string
	AgentID        *uuid.UUID
	AgentFirstName *string
	AgentLastName  *string
}

const orderHeadersSQL = `
	SELECT o.id, o.customer_id, u.first_name, u.last_name, u.email, o.created_at,
	       o.phone, o.street, o.city, o.state, o.zip_code, o.total_price,
	       d.id AS delivery_id, COALESCE(d.status, '') AS delivery_status, d.agent_id,
	       au.first_name AS agent_first_name, au.last_name AS agent_last_name
	FROM orders o
	JOIN users u ON u.id = o.customer_id
	LEFT JOIN deliveries d ON d.order_id = o.id
	LEFT JOIN agents a ON a.id = d.agent_id
	LEFT JOIN users au ON au.id = a.user_id`

// orderFilter narrows orderHeadersSQL. An empty where lists every order;
// a zero limit is unbounded.
type orderFilter struct {
	where     string
	args      []any
	limit     int
	withLines bool
}

// findOrders lists orders newest first.
func findOrders(ctx context.Context, db *gorm.DB, filter orderFilter, now time.Time) ([]OrderView, error) {
	sql := orderHeadersSQL
	args := filter.args
	if filter.where != "" {
		sql += " WHERE " + filter.where
	}
	sql += " ORDER BY o.created_at DESC, o.id"
	if filter.limit > 0 {
		sql += " LIMIT ?"
		args = append(args, filter.limit)
	}

	var headers []orderHeaderRow
	if err := db.WithContext(ctx).Raw(sql, args...).Scan(&headers).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderView, 0, len(headers))
	index := make(map[uuid.UUID]int, len(headers))
	for _, h := range headers {
		view, err := h.toView()
		if err != nil {
			return nil, err
		}
		index[h.ID] = len(orders)
		orders = append(orders, view)
	}
	if !filter.withLines || len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(headers))
	for _, h := range headers {
		ids = append(ids, h.ID)
	}

	var sales []lineRow
	if err := db.WithContext(ctx).
		Raw(saleLinesSQL+" WHERE s.order_id IN ? ORDER BY product, s.id", ids).
		Scan(&sales).Error; err != nil {
		return nil, err
	}
	for _, row := range sales {
		line, err := row.toLineView()
		if err != nil {
			return nil, err
		}
		o := &orders[index[row.OrderID]]
		o.SaleItems = append(o.SaleItems, line)
	}

	var rentals []lineRow
	if err := db.WithContext(ctx).
		Raw(rentalLinesSQL+" WHERE b.order_id IN ? ORDER BY b.start_date, b.id", ids).
		Scan(&rentals).Error; err != nil {
		return nil, err
	}
	for _, row := range rentals {
		rental, err := row.toRentalView(now)
		if err != nil {
			return nil, err
		}
		o := &orders[index[row.OrderID]]
		o.RentBookings = append(o.RentBookings, rental)
	}

	return orders, nil
}

func (r orderHeaderRow) toView() (OrderView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return OrderView{}, err
	}
	customerID, err := toUUID(r.CustomerID)
	if err != nil {
		return OrderView{}, err
	}
	deliveryID, err := toOptionalUUID(r.DeliveryID)
	if err != nil {
		return OrderView{}, err
	}
	agentID, err := toOptionalUUID(r.AgentID)
	if err != nil {
		return OrderView{}, err
	}
	total, err := kernel.NewMoney(r.TotalPrice)
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		ID:             id,
		CustomerID:     customerID,
		CustomerName:   fullName(r.FirstName, r.LastName),
		CustomerEmail:  r.Email,
		CreatedAt:      r.CreatedAt,
		Address:        fmt.Sprintf("%s, %s, %s %s (phone %s)", r.Street, r.City, r.State, r.ZipCode, r.Phone),
		TotalPrice:     total,
		DeliveryID:     deliveryID,
		DeliveryStatus: r.DeliveryStatus,
		AgentID:        agentID,
		SaleItems:      make([]LineView, 0),
		RentBookings:   make([]RentalView, 0),
	}
	if r.AgentFirstName != nil {
		view.AgentName = fullName(*r.AgentFirstName, deref(r.AgentLastName))
	}
	return view, nil
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
