package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetActiveRentalsQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetActiveRentalsQueryHandler(db *gorm.DB, clock kernel.Clock) GetActiveRentalsQueryHandler {
	return GetActiveRentalsQueryHandler{db: db, clock: clock}
}

type rentalCustomerRow struct {
	OrderID   uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Handle reports each booking with the late fee it owes at the current time.
func (h GetActiveRentalsQueryHandler) Handle(ctx context.Context, query GetActiveRentalsQuery) ([]ActiveRentalView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []lineRow
	if err := h.db.WithContext(ctx).
		Raw(rentalLinesSQL+" WHERE b.status IN ? ORDER BY b.start_date DESC, b.id",
			[]string{order.RentShipped.String(), order.RentActive.String(), order.RentOverdue.String()}).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []ActiveRentalView{}, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.OrderID)
	}
	var customerRows []rentalCustomerRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT o.id AS order_id, u.first_name, u.last_name, u.email, o.phone
		FROM orders o
		JOIN users u ON u.id = o.customer_id
		WHERE o.id IN ?`, orderIDs).
		Scan(&customerRows).Error; err != nil {
		return nil, err
	}
	customers := make(map[uuid.UUID]rentalCustomerRow, len(customerRows))
	for _, c := range customerRows {
		customers[c.OrderID] = c
	}

	now := h.clock.Now()
	rentals := make([]ActiveRentalView, 0, len(rows))
	for _, row := range rows {
		rental, err := row.toRentalView(now)
		if err != nil {
			return nil, err
		}
		orderID, err := toUUID(row.OrderID)
		if err != nil {
			return nil, err
		}
		customer := customers[row.OrderID]
		rentals = append(rentals, ActiveRentalView{
			RentalView:    rental,
			OrderID:       orderID,
			CustomerName:  fullName(customer.FirstName, customer.LastName),
			CustomerEmail: customer.Email,
			CustomerPhone: customer.Phone,
		})
	}
	return rentals, nil
}
