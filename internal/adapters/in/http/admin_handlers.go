package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetDashboard handles GET /api/v1/admin/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	resp, err := s.h.GetDashboard.Handle(c.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboard(resp))
}

// GetOrders handles GET /api/v1/admin/orders.
func (s *Server) GetOrders(c echo.Context) error {
	views, err := s.h.GetOrders.Handle(c.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrders(views))
}

// GetActiveRentals handles GET /api/v1/admin/rentals.
func (s *Server) GetActiveRentals(c echo.Context) error {
	views, err := s.h.GetActiveRentals.Handle(c.Request().Context(), queries.NewGetActiveRentalsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActiveRentals(views))
}

// MarkOverdueRentals handles POST /api/v1/admin/rentals/mark-overdue.
func (s *Server) MarkOverdueRentals(c echo.Context) error {
	marked, err := s.h.MarkOverdueRentals.Handle(c.Request().Context(), commands.NewMarkOverdueRentalsCommand())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CountResponse{SuccessResponse: success("Overdue rentals marked"), Count: marked})
}

// DispatchDelivery handles POST /api/v1/admin/orders/{orderId}/dispatch.
// Without an agent_id the least busy active agent is chosen.
func (s *Server) DispatchDelivery(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	var req AgentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	agentID, err := optionalUUID(req.AgentID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDispatchDeliveryCommand(orderID, agentID)
	if err != nil {
		return err
	}
	if err := s.h.DispatchDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Order dispatched"))
}

// AssignAgent handles POST /api/v1/admin/orders/{orderId}/assign.
func (s *Server) AssignAgent(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	var req AgentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	agentID, err := optionalUUID(req.AgentID)
	if err != nil {
		return err
	}
	if agentID == nil {
		return errs.NewValueIsRequiredError("agent_id")
	}

	cmd, err := commands.NewAssignAgentCommand(orderID, *agentID)
	if err != nil {
		return err
	}
	if err := s.h.AssignAgent.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Agent assigned"))
}

// UpdateSaleItemStatus handles POST /api/v1/admin/sale-items/{itemId}/status.
func (s *Server) UpdateSaleItemStatus(c echo.Context) error {
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	status, err := order.ParseSaleStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateSaleItemStatusCommand(itemID, status)
	if err != nil {
		return err
	}
	if err := s.h.UpdateSaleItemStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Status updated to " + status.String()))
}

// UpdateRentBookingStatus handles POST /api/v1/admin/rent-bookings/{bookingId}/status.
func (s *Server) UpdateRentBookingStatus(c echo.Context) error {
	bookingID, err := pathUUID(c, "bookingId")
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	status, err := order.ParseRentStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateRentBookingStatusCommand(bookingID, status)
	if err != nil {
		return err
	}
	if err := s.h.UpdateRentBookingStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Status updated to " + status.String()))
}

// ProcessRentalReturn handles POST /api/v1/admin/rent-bookings/{bookingId}/return.
func (s *Server) ProcessRentalReturn(c echo.Context) error {
	bookingID, err := pathUUID(c, "bookingId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewProcessRentalReturnCommand(bookingID)
	if err != nil {
		return err
	}
	if err := s.h.UpdateRentBookingStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Rental returned"))
}

// RegisterAgent handles POST /api/v1/admin/agents.
func (s *Server) RegisterAgent(c echo.Context) error {
	var req NewAgentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	userID, err := kernel.UUIDFromBytes(req.UserID[:])
	if err != nil {
		return err
	}
	vehicleType, err := agent.ParseVehicleType(req.VehicleType)
	if err != nil {
		return err
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAgentCommand(agentID, userID, req.VehicleNumber, vehicleType)
	if err != nil {
		return err
	}
	if err := s.h.RegisterAgent.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{SuccessResponse: success("Agent registered"), ID: apiUUID(agentID)})
}

// SetAgentActive handles PUT /api/v1/admin/agents/{agentId}/active.
func (s *Server) SetAgentActive(c echo.Context) error {
	agentID, err := pathUUID(c, "agentId")
	if err != nil {
		return err
	}
	var req AgentActiveRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewSetAgentActiveCommand(agentID, req.Active)
	if err != nil {
		return err
	}
	if err := s.h.SetAgentActive.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Agent availability updated"))
}
