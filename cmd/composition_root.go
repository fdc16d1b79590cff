package cmd

import (
	"errors"
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/auth"
	"storefront/internal/adapters/out/eventbus"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/recipientrepo"
	"storefront/internal/core/application/notifications"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	notifier   *notifications.Dispatcher
	tokens     *auth.JWTIssuer
	clock      kernel.Clock
	codes      kernel.CodeGenerator
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. A nil producer leaves order
// changes unpublished to Kafka; notifications are sent either way.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	producer kafka.Producer,
	mailer ports.Mailer,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	if gormDB == nil {
		return nil, errors.New("gorm db is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	clock := kernel.SystemClock{}

	notifier, err := notifications.NewDispatcher(recipientrepo.NewGormRecipientDirectory(gormDB), mailer, logger)
	if err != nil {
		return nil, err
	}
	publishers := []ports.EventPublisher{notifier}
	if producer != nil {
		publishers = append(publishers, kafka.NewOrderChangedPublisher(producer, config.KafkaOrderChangedTopic, logger))
	}

	tokens, err := auth.NewJWTIssuer(config.JWTSecret, config.JWTTTL, clock)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, eventbus.NewFanout(publishers...), logger),
		notifier:   notifier,
		tokens:     tokens,
		clock:      clock,
		codes:      kernel.RandomCodeGenerator{},
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) TokenIssuer() ports.TokenIssuer {
	return c.tokens
}

// WaitForNotifications blocks until queued notification batches are sent.
func (c *CompositionRoot) WaitForNotifications() {
	c.notifier.Wait()
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) agentUoWFactory() commands.AgentUoWFactory {
	return FuncAgentUoWFactory(func() commands.AgentUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW { return c.uowFactory.Create() })
}

// Accounts

func (c *CompositionRoot) CreateRequestRegistrationCodeCommandHandler() commands.RequestRegistrationCodeCommandHandler {
	return commands.NewRequestRegistrationCodeCommandHandler(
		c.userUoWFactory(), c.codes, c.notifier, c.clock, c.config.RegistrationCodeTTL)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.tokens)
}

// Catalog

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddVariantCommandHandler() commands.AddVariantCommandHandler {
	return commands.NewAddVariantCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteVariantCommandHandler() commands.DeleteVariantCommandHandler {
	return commands.NewDeleteVariantCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateVariantStockCommandHandler() commands.UpdateVariantStockCommandHandler {
	return commands.NewUpdateVariantStockCommandHandler(c.catalogUoWFactory())
}

// Cart and checkout

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.checkoutUoWFactory(), c.clock)
}

// Orders

func (c *CompositionRoot) CreateUpdateSaleItemStatusCommandHandler() commands.UpdateSaleItemStatusCommandHandler {
	return commands.NewUpdateSaleItemStatusCommandHandler(c.orderUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateRentBookingStatusCommandHandler() commands.UpdateRentBookingStatusCommandHandler {
	return commands.NewUpdateRentBookingStatusCommandHandler(c.orderUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateMarkOverdueRentalsCommandHandler() commands.MarkOverdueRentalsCommandHandler {
	return commands.NewMarkOverdueRentalsCommandHandler(c.orderUoWFactory(), c.clock)
}

// Deliveries and agents

func (c *CompositionRoot) CreateDispatchDeliveryCommandHandler() commands.DispatchDeliveryCommandHandler {
	return commands.NewDispatchDeliveryCommandHandler(c.deliveryUoWFactory(), c.codes, c.clock)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	return commands.NewAssignAgentCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory(), c.codes, c.clock)
}

func (c *CompositionRoot) CreateIssueArrivalCodeCommandHandler() commands.IssueArrivalCodeCommandHandler {
	return commands.NewIssueArrivalCodeCommandHandler(c.deliveryUoWFactory(), c.codes, c.clock)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	return commands.NewRegisterAgentCommandHandler(c.agentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetAgentActiveCommandHandler() commands.SetAgentActiveCommandHandler {
	return commands.NewSetAgentActiveCommandHandler(c.agentUoWFactory())
}

// Queries

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetAgentTasksQueryHandler() queries.GetAgentTasksQueryHandler {
	return queries.NewGetAgentTasksQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetActiveRentalsQueryHandler() queries.GetActiveRentalsQueryHandler {
	return queries.NewGetActiveRentalsQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB, c.clock)
}

// HTTPHandlers collects every use case served by the REST API.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		RequestRegistrationCode: c.CreateRequestRegistrationCodeCommandHandler(),
		RegisterUser:            c.CreateRegisterUserCommandHandler(),
		Login:                   c.CreateLoginCommandHandler(),

		CreateProduct:      c.CreateCreateProductCommandHandler(),
		AddVariant:         c.CreateAddVariantCommandHandler(),
		DeleteProduct:      c.CreateDeleteProductCommandHandler(),
		DeleteVariant:      c.CreateDeleteVariantCommandHandler(),
		UpdateVariantStock: c.CreateUpdateVariantStockCommandHandler(),

		AddToCart:      c.CreateAddToCartCommandHandler(),
		UpdateCartItem: c.CreateUpdateCartItemCommandHandler(),
		RemoveCartItem: c.CreateRemoveCartItemCommandHandler(),
		Checkout:       c.CreateCheckoutCommandHandler(),

		UpdateSaleItemStatus:    c.CreateUpdateSaleItemStatusCommandHandler(),
		UpdateRentBookingStatus: c.CreateUpdateRentBookingStatusCommandHandler(),
		MarkOverdueRentals:      c.CreateMarkOverdueRentalsCommandHandler(),

		DispatchDelivery:     c.CreateDispatchDeliveryCommandHandler(),
		AssignAgent:          c.CreateAssignAgentCommandHandler(),
		UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),
		IssueArrivalCode:     c.CreateIssueArrivalCodeCommandHandler(),
		CompleteDelivery:     c.CreateCompleteDeliveryCommandHandler(),

		RegisterAgent:  c.CreateRegisterAgentCommandHandler(),
		SetAgentActive: c.CreateSetAgentActiveCommandHandler(),

		GetProducts:       c.CreateGetProductsQueryHandler(),
		GetProduct:        c.CreateGetProductQueryHandler(),
		GetCart:           c.CreateGetCartQueryHandler(),
		GetCustomerOrders: c.CreateGetCustomerOrdersQueryHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetAgentTasks:     c.CreateGetAgentTasksQueryHandler(),
		GetActiveRentals:  c.CreateGetActiveRentalsQueryHandler(),
		GetDashboard:      c.CreateGetDashboardQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateMarkOverdueRentalsCommandHandler(), c.config.OverdueSchedule, c.logger)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
