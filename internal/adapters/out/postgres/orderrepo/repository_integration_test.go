package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	customer   *user.User
}

var placedAt = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset())

	customer, err := suite.pg.SeedUser(context.Background(), "buyer@example.com", user.RoleCustomer)
	suite.Require().NoError(err)
	suite.customer = customer

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newPlacedOrder(start, end time.Time) *order.Order {
	address, err := order.NewShippingAddress("+15550001", "1 Main St", "Springfield", "IL", "62701")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), suite.customer.ID(), address, placedAt)
	suite.Require().NoError(err)

	_, err = o.AddSaleItem(kernel.NewUUID(), kernel.NewUUID(), 2, kernel.MustMoney("20.00"))
	suite.Require().NoError(err)

	period, err := kernel.NewDateRange(start, end)
	suite.Require().NoError(err)
	_, err = o.AddRentBooking(kernel.NewUUID(), kernel.NewUUID(), period, 1, kernel.MustMoney("100.00"))
	suite.Require().NoError(err)

	_, err = o.Place(placedAt)
	suite.Require().NoError(err)
	return o
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsLines() {
	ctx := context.Background()
	o := suite.newPlacedOrder(day(1), day(4))

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Equal(o.ID(), got.ID())
	suite.Equal(suite.customer.ID(), got.CustomerID())
	suite.Equal("Springfield", got.Address().City())
	suite.Equal("340.00", got.TotalPrice().String())
	suite.Require().Len(got.SaleItems(), 1)
	suite.Equal(order.SalePending, got.SaleItems()[0].Status())
	suite.Equal("40.00", got.SaleItems()[0].TotalPrice().String())
	suite.Require().Len(got.RentBookings(), 1)
	booking := got.RentBookings()[0]
	suite.Equal(order.RentPending, booking.Status())
	suite.True(booking.Period().Start().Equal(day(1)))
	suite.True(booking.Period().End().Equal(day(4)))
	suite.Nil(booking.ReturnedAt())
	suite.True(booking.LateFee().IsZero())

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsChangedLines() {
	ctx := context.Background()
	o := suite.newPlacedOrder(day(1), day(4))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	itemID := o.SaleItems()[0].ID()
	bookingID := o.RentBookings()[0].ID()
	_, err := o.TransitionSaleItem(itemID, order.SaleShipped, placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(o.ActivateRentals(placedAt))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	returnedAt := time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC)
	_, err = o.TransitionRentBooking(bookingID, order.RentReturned, returnedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.SaleShipped, got.SaleItems()[0].Status())
	booking := got.RentBookings()[0]
	suite.Equal(order.RentReturned, booking.Status())
	suite.Require().NotNil(booking.ReturnedAt())
	suite.True(booking.ReturnedAt().Equal(returnedAt))
	suite.Equal("300.00", booking.LateFee().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleCopy_ReturnsConflict() {
	ctx := context.Background()
	o := suite.newPlacedOrder(day(1), day(4))
	suite.Require().NoError(suite.repository.Add(ctx, o))
	itemID := o.SaleItems()[0].ID()

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	_, err = first.TransitionSaleItem(itemID, order.SaleCancelled, placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	_, err = second.TransitionSaleItem(itemID, order.SaleCancelled, placedAt)
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, second)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByLine() {
	ctx := context.Background()
	o := suite.newPlacedOrder(day(1), day(4))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	bySale, err := suite.repository.GetBySaleItem(ctx, o.SaleItems()[0].ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), bySale.ID())

	byBooking, err := suite.repository.GetByRentBooking(ctx, o.RentBookings()[0].ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), byBooking.ID())

	_, err = suite.repository.GetBySaleItem(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetWithPastDueRentals() {
	ctx := context.Background()

	pastDue := suite.newPlacedOrder(day(1), day(4))
	suite.Require().NoError(pastDue.ActivateRentals(placedAt))
	suite.Require().NoError(suite.repository.Add(ctx, pastDue))

	endsToday := suite.newPlacedOrder(day(1), day(5))
	suite.Require().NoError(endsToday.ActivateRentals(placedAt))
	suite.Require().NoError(suite.repository.Add(ctx, endsToday))

	notActive := suite.newPlacedOrder(day(1), day(2))
	suite.Require().NoError(suite.repository.Add(ctx, notActive))

	orders, err := suite.repository.GetWithPastDueRentals(ctx, time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.Equal(pastDue.ID(), orders[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetWithPastDueRentals_HonoursCancelledContext() {
	pastDue := suite.newPlacedOrder(day(1), day(4))
	suite.Require().NoError(pastDue.ActivateRentals(placedAt))
	suite.Require().NoError(suite.repository.Add(context.Background(), pastDue))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	orders, err := suite.repository.GetWithPastDueRentals(ctx, time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))

	suite.Require().ErrorIs(err, context.Canceled)
	suite.Empty(orders)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
