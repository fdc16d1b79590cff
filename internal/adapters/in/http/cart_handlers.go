package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(identityOf(c).UserID)
	if err != nil {
		return err
	}
	resp, err := s.h.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCart(resp))
}

// AddToCart handles POST /api/v1/cart/items. A request with both dates adds
// a rental line, one without dates a sale line.
func (s *Server) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	variantID, err := kernel.UUIDFromBytes(req.VariantID[:])
	if err != nil {
		return err
	}

	var period *kernel.DateRange
	switch {
	case req.StartDate != nil && req.EndDate != nil:
		r, rangeErr := kernel.NewDateRange(req.StartDate.Time, req.EndDate.Time)
		if rangeErr != nil {
			return rangeErr
		}
		period = &r
	case req.StartDate != nil || req.EndDate != nil:
		return errs.NewValueIsRequiredErrorWithCause("rental period",
			errors.New("start_date and end_date go together"))
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddToCartCommand(identityOf(c).UserID, itemID, variantID, req.Quantity, period)
	if err != nil {
		return err
	}
	if err := s.h.AddToCart.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{SuccessResponse: success("Item added to cart"), ID: apiUUID(itemID)})
}

// UpdateCartItem handles PATCH /api/v1/cart/items/{itemId}.
func (s *Server) UpdateCartItem(c echo.Context) error {
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return err
	}
	var req CartQuantityRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateCartItemCommand(identityOf(c).UserID, itemID, req.Quantity)
	if err != nil {
		return err
	}
	if err := s.h.UpdateCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Cart updated"))
}

// RemoveCartItem handles DELETE /api/v1/cart/items/{itemId}.
func (s *Server) RemoveCartItem(c echo.Context) error {
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveCartItemCommand(identityOf(c).UserID, itemID)
	if err != nil {
		return err
	}
	if err := s.h.RemoveCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Item removed"))
}

// Checkout handles POST /api/v1/checkout.
func (s *Server) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	address, err := order.NewShippingAddress(req.Phone, req.Street, req.City, req.State, req.ZipCode)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(identityOf(c).UserID, orderID, kernel.NewUUID(), address)
	if err != nil {
		return err
	}
	if err := s.h.Checkout.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{SuccessResponse: success("Order placed"), ID: apiUUID(orderID)})
}

// GetMyOrders handles GET /api/v1/orders.
func (s *Server) GetMyOrders(c echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(identityOf(c).UserID)
	if err != nil {
		return err
	}
	views, err := s.h.GetCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrders(views))
}
