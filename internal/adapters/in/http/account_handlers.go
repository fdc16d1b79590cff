package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RequestRegistrationCode handles POST /api/v1/auth/registration-code. The
// returned session id must accompany the code when registering.
func (s *Server) RequestRegistrationCode(c echo.Context) error {
	var req RegistrationCodeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sessionID := kernel.NewUUID()
	cmd, err := commands.NewRequestRegistrationCodeCommand(sessionID, req.Email)
	if err != nil {
		return err
	}
	if err := s.h.RequestRegistrationCode.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, SessionResponse{SuccessResponse: success("Verification code sent"), SessionID: apiUUID(sessionID)})
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	sessionID, err := kernel.UUIDFromBytes(req.SessionID[:])
	if err != nil {
		return err
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(sessionID, req.Code, userID,
		req.FirstName, req.LastName, req.Email, req.Phone, req.Password, req.ConfirmPassword)
	if err != nil {
		return err
	}
	if err := s.h.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{SuccessResponse: success("Account created"), ID: apiUUID(userID)})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return err
	}
	token, err := s.h.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TokenResponse{SuccessResponse: success("Logged in"), Token: token})
}
