package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now    = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	clock  = kernel.FixedClock(now)
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) GetByVariant(ctx context.Context, variantID kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, variantID)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockStockLedger struct{ mock.Mock }

func (m *MockStockLedger) Adjust(ctx context.Context, variantID kernel.UUID, delta int) error {
	return m.Called(ctx, variantID, delta).Error(0)
}
func (m *MockStockLedger) Set(ctx context.Context, variantID kernel.UUID, quantity int) error {
	return m.Called(ctx, variantID, quantity).Error(0)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}
func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetBySaleItem(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, itemID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetByRentBooking(ctx context.Context, bookingID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, bookingID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetWithPastDueRentals(ctx context.Context, at time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, at)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}
func (m *MockDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}
func (m *MockDeliveryRepository) CountOpenByAgent(ctx context.Context) (map[kernel.UUID]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[kernel.UUID]int)
	return counts, args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*agent.Agent)
	return a, args.Error(1)
}
func (m *MockAgentRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, userID)
	a, _ := args.Get(0).(*agent.Agent)
	return a, args.Error(1)
}
func (m *MockAgentRepository) GetAllActive(ctx context.Context) ([]*agent.Agent, error) {
	args := m.Called(ctx)
	agents, _ := args.Get(0).([]*agent.Agent)
	return agents, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}
func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockRegistrationSessionRepository struct{ mock.Mock }

func (m *MockRegistrationSessionRepository) Add(ctx context.Context, s *user.RegistrationSession) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockRegistrationSessionRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*user.RegistrationSession, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*user.RegistrationSession)
	return s, args.Error(1)
}
func (m *MockRegistrationSessionRepository) Update(ctx context.Context, s *user.RegistrationSession) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockRegistrationSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every composite unit of work the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockUoW) StockLedger() ports.StockLedger {
	return m.Called().Get(0).(ports.StockLedger)
}
func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}
func (m *MockUoW) AgentRepository() ports.AgentRepository {
	return m.Called().Get(0).(ports.AgentRepository)
}
func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}
func (m *MockUoW) RegistrationSessionRepository() ports.RegistrationSessionRepository {
	return m.Called().Get(0).(ports.RegistrationSessionRepository)
}

// MockUoWFactory hands out a MockUoW typed as whichever composite T the
// handler under test expects.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(identity ports.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}
func (m *MockTokenIssuer) Parse(token string) (ports.Identity, error) {
	args := m.Called(token)
	identity, _ := args.Get(0).(ports.Identity)
	return identity, args.Error(1)
}

type MockRegistrationCodeSender struct{ mock.Mock }

func (m *MockRegistrationCodeSender) SendRegistrationCode(
	ctx context.Context,
	email, code string,
	expiresAt time.Time,
) error {
	return m.Called(ctx, email, code, expiresAt).Error(0)
}

func shippingAddress(t *testing.T) order.ShippingAddress {
	t.Helper()
	a, err := order.NewShippingAddress("555-0100", "1 Main St", "Springfield", "IL", "62701")
	require.NoError(t, err)
	return a
}

func rentalPeriod(t *testing.T) kernel.DateRange {
	t.Helper()
	period, err := kernel.NewDateRange(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return period
}

// rentableProduct has one variant sold at 200 and rented at the derived 20/day.
func rentableProduct(t *testing.T) (*catalog.Product, kernel.UUID) {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), "Sherwani", "Wedding sherwani",
		catalog.Men, "Ethnic", true, now)
	require.NoError(t, err)
	price := kernel.MustMoney("200")
	v, err := p.AddVariant(kernel.NewUUID(), "M", "Ivory", 5, &price, nil)
	require.NoError(t, err)
	return p, v.ID()
}

// placedOrder holds one sale line and one rent booking over rentalPeriod.
func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), shippingAddress(t), now)
	require.NoError(t, err)
	_, err = o.AddSaleItem(kernel.NewUUID(), kernel.NewUUID(), 2, kernel.MustMoney("20"))
	require.NoError(t, err)
	_, err = o.AddRentBooking(kernel.NewUUID(), kernel.NewUUID(), rentalPeriod(t), 1, kernel.MustMoney("100"))
	require.NoError(t, err)
	_, err = o.Place(now)
	require.NoError(t, err)
	return o
}

func activeAgent(t *testing.T) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), kernel.NewUUID(), "KA-01", agent.VehicleScooter, now)
	require.NoError(t, err)
	return a
}

func customer(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := user.NewPasswordHash(password)
	require.NoError(t, err)
	u, err := user.NewUser(kernel.NewUUID(), "Asha", "Rao", "asha@example.com", "555-0101",
		user.RoleCustomer, hash, now)
	require.NoError(t, err)
	return u
}

func emptyCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	return c
}
