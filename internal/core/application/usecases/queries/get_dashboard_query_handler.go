package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetDashboardQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetDashboardQueryHandler(db *gorm.DB, clock kernel.Clock) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db, clock: clock}
}

type dashboardCountsRow struct {
	TotalRevenue      decimal.Decimal
	TotalOrders       int
	TotalProducts     int
	TotalCustomers    int
	PendingDeliveries int
	LowStockProducts  int
	ActiveRentals     int
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}
	now := h.clock.Now()
	db := h.db.WithContext(ctx)

	var counts dashboardCountsRow
	if err := db.Raw(`
		SELECT
			(SELECT COALESCE(SUM(total_price), 0) FROM orders) AS total_revenue,
			(SELECT COUNT(*) FROM orders) AS total_orders,
			(SELECT COUNT(*) FROM products) AS total_products,
			(SELECT COUNT(*) FROM users WHERE role = ?) AS total_customers,
			(SELECT COUNT(*) FROM deliveries WHERE status = ?) AS pending_deliveries,
			(SELECT COUNT(DISTINCT product_id) FROM variants WHERE stock < ?) AS low_stock_products,
			(SELECT COUNT(*) FROM rent_bookings WHERE status IN ?) AS active_rentals`,
		user.RoleCustomer.String(),
		delivery.StatusPending.String(),
		LowStockThreshold,
		[]string{order.RentActive.String(), order.RentShipped.String(), order.RentOverdue.String()},
	).Scan(&counts).Error; err != nil {
		return GetDashboardQueryResponse{}, err
	}
	revenue, err := kernel.NewMoney(counts.TotalRevenue)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	recent, err := findOrders(ctx, h.db, orderFilter{limit: RecentOrdersLimit}, now)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	trend, err := h.salesTrend(db, now)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	statuses, err := h.rentalStatuses(db)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return GetDashboardQueryResponse{
		TotalRevenue:      revenue,
		TotalOrders:       counts.TotalOrders,
		TotalProducts:     counts.TotalProducts,
		TotalCustomers:    counts.TotalCustomers,
		PendingDeliveries: counts.PendingDeliveries,
		LowStockProducts:  counts.LowStockProducts,
		ActiveRentals:     counts.ActiveRentals,
		RecentOrders:      recent,
		SalesTrend:        trend,
		RentalStatuses:    statuses,
	}, nil
}

// salesTrend sums order totals per UTC calendar day over the last
// SalesTrendDays days.
func (h GetDashboardQueryHandler) salesTrend(db *gorm.DB, now time.Time) ([]DailySales, error) {
	first := kernel.Date(now).AddDate(0, 0, -(SalesTrendDays - 1))

	var rows []struct {
		Day   time.Time
		Total decimal.Decimal
	}
	if err := db.Raw(`
		SELECT (created_at AT TIME ZONE 'UTC')::date AS day, SUM(total_price) AS total
		FROM orders
		WHERE created_at >= ? AND created_at < ?
		GROUP BY 1`, first, kernel.Date(now).AddDate(0, 0, 1)).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	byDay := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		byDay[kernel.Date(row.Day).Format(time.DateOnly)] = row.Total
	}

	trend := make([]DailySales, 0, SalesTrendDays)
	for i := range SalesTrendDays {
		day := first.AddDate(0, 0, i)
		total, err := kernel.NewMoney(byDay[day.Format(time.DateOnly)])
		if err != nil {
			return nil, err
		}
		trend = append(trend, DailySales{Date: day, Total: total})
	}
	return trend, nil
}

func (h GetDashboardQueryHandler) rentalStatuses(db *gorm.DB) ([]StatusCount, error) {
	tracked := []string{order.RentActive.String(), order.RentReturned.String(), order.RentOverdue.String()}

	var rows []StatusCount
	if err := db.Raw(`
		SELECT status, COUNT(*) AS count
		FROM rent_bookings
		WHERE status IN ?
		GROUP BY status`, tracked).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	byStatus := make(map[string]int, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}

	statuses := make([]StatusCount, 0, len(tracked))
	for _, status := range tracked {
		statuses = append(statuses, StatusCount{Status: status, Count: byStatus[status]})
	}
	return statuses, nil
}
