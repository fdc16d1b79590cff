package http

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the API, its swagger UI and the
// health probe.
func NewRouter(ctx context.Context, server *Server, tokens ports.TokenIssuer, spec []byte, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx, spec)
	if err != nil {
		return nil, err
	}
	if err := registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validate, err := ValidateRequests(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authn := Authenticate(tokens)
	public := []echo.MiddlewareFunc{validate}
	signedIn := []echo.MiddlewareFunc{authn, validate}
	agents := []echo.MiddlewareFunc{authn, RequireAgent(), validate}
	admins := []echo.MiddlewareFunc{authn, RequireRole(user.RoleAdmin), validate}

	api := e.Group("/api/v1")

	api.POST("/auth/registration-code", server.RequestRegistrationCode, public...)
	api.POST("/auth/register", server.Register, public...)
	api.POST("/auth/login", server.Login, public...)
	api.GET("/products", server.GetProducts, public...)
	api.GET("/products/:productId", server.GetProduct, public...)

	api.GET("/cart", server.GetCart, signedIn...)
	api.POST("/cart/items", server.AddToCart, signedIn...)
	api.PATCH("/cart/items/:itemId", server.UpdateCartItem, signedIn...)
	api.DELETE("/cart/items/:itemId", server.RemoveCartItem, signedIn...)
	api.POST("/checkout", server.Checkout, signedIn...)
	api.GET("/orders", server.GetMyOrders, signedIn...)

	api.GET("/agent/tasks", server.GetAgentTasks, agents...)
	api.POST("/deliveries/:deliveryId/status", server.UpdateDeliveryStatus, agents...)
	api.POST("/deliveries/:deliveryId/arrival", server.IssueArrivalCode, agents...)
	api.POST("/deliveries/:deliveryId/complete", server.CompleteDelivery, agents...)

	api.GET("/admin/dashboard", server.GetDashboard, admins...)
	api.GET("/admin/orders", server.GetOrders, admins...)
	api.GET("/admin/rentals", server.GetActiveRentals, admins...)
	api.POST("/admin/rentals/mark-overdue", server.MarkOverdueRentals, admins...)
	api.POST("/admin/products", server.CreateProduct, admins...)
	api.DELETE("/admin/products/:productId", server.DeleteProduct, admins...)
	api.POST("/admin/products/:productId/variants", server.AddVariant, admins...)
	api.DELETE("/admin/variants/:variantId", server.DeleteVariant, admins...)
	api.PUT("/admin/variants/:variantId/stock", server.UpdateVariantStock, admins...)
	api.POST("/admin/orders/:orderId/dispatch", server.DispatchDelivery, admins...)
	api.POST("/admin/orders/:orderId/assign", server.AssignAgent, admins...)
	api.POST("/admin/sale-items/:itemId/status", server.UpdateSaleItemStatus, admins...)
	api.POST("/admin/rent-bookings/:bookingId/status", server.UpdateRentBookingStatus, admins...)
	api.POST("/admin/rent-bookings/:bookingId/return", server.ProcessRentalReturn, admins...)
	api.POST("/admin/agents", server.RegisterAgent, admins...)
	api.PUT("/admin/agents/:agentId/active", server.SetAgentActive, admins...)

	return e, nil
}
