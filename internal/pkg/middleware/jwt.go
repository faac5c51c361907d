package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/fleetdispatch/internal/pkg/jwt"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/pkg/requestcontext"
	"github.com/piresc/fleetdispatch/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
	ContextEmail    = "user_email"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ParseClaims(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserRole, claims.Role)
			c.Set(ContextEmail, claims.Email)
			TagActor(c, models.Actor{UserID: claims.UserID, Role: claims.Role})
			c.SetRequest(c.Request().WithContext(requestcontext.WithUserID(c.Request().Context(), claims.UserID.String())))

			return next(c)
		}
	}
}
