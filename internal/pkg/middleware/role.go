package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
)

// RequireRoles rejects callers whose role is not in roles. It must run after JWTAuthMiddleware.
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			for _, role := range roles {
				if actor.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Access denied. Insufficient permissions.")
		}
	}
}

// ActorFromContext returns the authenticated caller
func ActorFromContext(c echo.Context) (models.Actor, bool) {
	userID, ok := c.Get(ContextUserID).(uuid.UUID)
	if !ok {
		return models.Actor{}, false
	}
	role, ok := c.Get(ContextUserRole).(models.Role)
	if !ok {
		return models.Actor{}, false
	}
	return models.Actor{UserID: userID, Role: role}, true
}
