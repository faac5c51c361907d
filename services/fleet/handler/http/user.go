package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/fleet"
)

// UserHandler handles HTTP requests for account administration
type UserHandler struct {
	userUC fleet.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC fleet.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c echo.Context) error {
	filter := models.UserFilter{
		Search: c.QueryParam("search"),
	}
	if v := c.QueryParam("role"); v != "" {
		role := models.Role(v)
		if !role.Valid() {
			return utils.BadRequestResponse(c, "Invalid role filter")
		}
		filter.Role = &role
	}
	if v := c.QueryParam("status"); v != "" {
		status := models.DriverStatus(v)
		filter.Status = &status
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	list, err := h.userUC.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", user)
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateUser handles PUT /api/users/:id
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}
	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), id, req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), a, id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

// ResetPassword handles PUT /api/users/:id/password
func (h *UserHandler) ResetPassword(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.ResetPassword(c.Request().Context(), id, req); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}

// ListDrivers handles GET /api/users/drivers
func (h *UserHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.userUC.ListDrivers(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", drivers)
}

// CountUsers handles GET /api/users/counts
func (h *UserHandler) CountUsers(c echo.Context) error {
	counts, err := h.userUC.CountUsers(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", counts)
}
