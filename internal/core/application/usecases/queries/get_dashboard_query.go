package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
)

const (
	// LowStockThreshold flags a product once any of its variants holds fewer units.
	LowStockThreshold = 5
	// SalesTrendDays is the length of the daily sales series, today included.
	SalesTrendDays = 7
	// RecentOrdersLimit is how many of the newest orders the dashboard shows.
	RecentOrdersLimit = 5
)

// GetDashboardQuery gathers the admin overview metrics.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

type DailySales struct {
	Date  time.Time
	Total kernel.Money
}

type StatusCount struct {
	Status string
	Count  int
}

// GetDashboardQueryResponse holds the overview. SalesTrend runs oldest day
// first and has one entry per day even without sales; RentalStatuses always
// lists Active, Returned and Overdue in that order.
type GetDashboardQueryResponse struct {
	TotalRevenue      kernel.Money
	TotalOrders       int
	TotalProducts     int
	TotalCustomers    int
	PendingDeliveries int
	LowStockProducts  int
	ActiveRentals     int
	RecentOrders      []OrderView
	SalesTrend        []DailySales
	RentalStatuses    []StatusCount
}
