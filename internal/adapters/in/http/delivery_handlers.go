package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"

	"github.com/labstack/echo/v4"
)

// GetAgentTasks handles GET /api/v1/agent/tasks.
func (s *Server) GetAgentTasks(c echo.Context) error {
	query, err := queries.NewGetAgentTasksQuery(identityOf(c).AgentID)
	if err != nil {
		return err
	}
	views, err := s.h.GetAgentTasks.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrders(views))
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/{deliveryId}/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	status, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, identityOf(c).AgentID, status)
	if err != nil {
		return err
	}
	if err := s.h.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Status updated to " + status.String()))
}

// IssueArrivalCode handles POST /api/v1/deliveries/{deliveryId}/arrival.
func (s *Server) IssueArrivalCode(c echo.Context) error {
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewIssueArrivalCodeCommand(deliveryID, identityOf(c).AgentID)
	if err != nil {
		return err
	}
	if err := s.h.IssueArrivalCode.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Delivery code sent to the customer"))
}

// CompleteDelivery handles POST /api/v1/deliveries/{deliveryId}/complete.
func (s *Server) CompleteDelivery(c echo.Context) error {
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}
	var req CodeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, identityOf(c).AgentID, req.Code)
	if err != nil {
		return err
	}
	if err := s.h.CompleteDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Delivery confirmed"))
}
