// Package http exposes the storefront over a JSON REST API built on echo.
package http

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
)

// CommandHandler is satisfied by every command handler that only reports success.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is satisfied by command and query handlers that return a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers lists the use cases the API serves.
type Handlers struct {
	RequestRegistrationCode CommandHandler[commands.RequestRegistrationCodeCommand]
	RegisterUser            CommandHandler[commands.RegisterUserCommand]
	Login                   ResultHandler[commands.LoginCommand, string]

	CreateProduct      CommandHandler[commands.CreateProductCommand]
	AddVariant         CommandHandler[commands.AddVariantCommand]
	DeleteProduct      CommandHandler[commands.DeleteProductCommand]
	DeleteVariant      CommandHandler[commands.DeleteVariantCommand]
	UpdateVariantStock CommandHandler[commands.UpdateVariantStockCommand]

	AddToCart      CommandHandler[commands.AddToCartCommand]
	UpdateCartItem CommandHandler[commands.UpdateCartItemCommand]
	RemoveCartItem CommandHandler[commands.RemoveCartItemCommand]
	Checkout       CommandHandler[commands.CheckoutCommand]

	UpdateSaleItemStatus    CommandHandler[commands.UpdateSaleItemStatusCommand]
	UpdateRentBookingStatus CommandHandler[commands.UpdateRentBookingStatusCommand]
	MarkOverdueRentals      ResultHandler[commands.MarkOverdueRentalsCommand, int]

	DispatchDelivery     CommandHandler[commands.DispatchDeliveryCommand]
	AssignAgent          CommandHandler[commands.AssignAgentCommand]
	UpdateDeliveryStatus CommandHandler[commands.UpdateDeliveryStatusCommand]
	IssueArrivalCode     CommandHandler[commands.IssueArrivalCodeCommand]
	CompleteDelivery     CommandHandler[commands.CompleteDeliveryCommand]

	RegisterAgent  CommandHandler[commands.RegisterAgentCommand]
	SetAgentActive CommandHandler[commands.SetAgentActiveCommand]

	GetProducts       ResultHandler[queries.GetProductsQuery, queries.GetProductsQueryResponse]
	GetProduct        ResultHandler[queries.GetProductQuery, queries.GetProductQueryResponse]
	GetCart           ResultHandler[queries.GetCartQuery, queries.GetCartQueryResponse]
	GetCustomerOrders ResultHandler[queries.GetCustomerOrdersQuery, []queries.OrderView]
	GetOrders         ResultHandler[queries.GetOrdersQuery, []queries.OrderView]
	GetAgentTasks     ResultHandler[queries.GetAgentTasksQuery, []queries.OrderView]
	GetActiveRentals  ResultHandler[queries.GetActiveRentalsQuery, []queries.ActiveRentalView]
	GetDashboard      ResultHandler[queries.GetDashboardQuery, queries.GetDashboardQueryResponse]
}

// Server translates HTTP requests into commands and queries. Every handler
// returns domain errors unchanged; ErrorHandler turns them into responses.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}
