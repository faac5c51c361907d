package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/fleet"
)

// AuthHandler handles login and identity requests
type AuthHandler struct {
	userUC fleet.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC fleet.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid login payload",
			logger.Err(err),
			logger.String("endpoint", "Login"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.Me(c.Request().Context(), a.UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}
