package http

import (
	"log/slog"
	"strings"

	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const identityKey = "storefront.identity"

// Authenticate requires a valid bearer token and stores its identity on the
// request context.
func Authenticate(tokens ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return ErrUnauthenticated
			}
			identity, err := tokens.Parse(strings.TrimSpace(token))
			if err != nil {
				return ErrUnauthenticated
			}
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// RequireRole lets through identities holding one of roles. It must run after
// Authenticate.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := identityOf(c)
			for _, role := range roles {
				if identity.Role == role {
					return next(c)
				}
			}
			return errs.NewAccessDeniedError(identity.UserID, c.Path())
		}
	}
}

// RequireAgent lets through delivery agents whose token names their agent.
func RequireAgent() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := identityOf(c)
			if !identity.IsAgent() {
				return errs.NewAccessDeniedError(identity.UserID, c.Path())
			}
			return next(c)
		}
	}
}

func identityOf(c echo.Context) ports.Identity {
	identity, _ := c.Get(identityKey).(ports.Identity)
	return identity
}

// RequestLogger logs one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "request", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
