package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/fleet"
)

// VehicleHandler handles HTTP requests for vehicle administration
type VehicleHandler struct {
	vehicleUC fleet.VehicleUC
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleUC fleet.VehicleUC) *VehicleHandler {
	return &VehicleHandler{
		vehicleUC: vehicleUC,
	}
}

// ListVehicles handles GET /api/vehicles
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	var filter models.VehicleFilter
	if v := c.QueryParam("status"); v != "" {
		status := models.VehicleStatus(v)
		filter.Status = &status
	}
	if v := c.QueryParam("type"); v != "" {
		vt := models.VehicleType(v)
		if !vt.Valid() {
			return utils.BadRequestResponse(c, "Invalid vehicle type")
		}
		filter.Type = &vt
	}

	vehicles, err := h.vehicleUC.ListVehicles(c.Request().Context(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicles)
}

// CreateVehicle handles POST /api/vehicles
func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	var req models.VehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.vehicleUC.CreateVehicle(c.Request().Context(), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle created successfully", vehicle)
}

// GetVehicle handles GET /api/vehicles/:id
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	vehicle, err := h.vehicleUC.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicle)
}

// UpdateVehicle handles PUT /api/vehicles/:id
func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}
	var req models.VehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.vehicleUC.UpdateVehicle(c.Request().Context(), id, req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// DeleteVehicle handles DELETE /api/vehicles/:id
func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	if err := h.vehicleUC.DeleteVehicle(c.Request().Context(), id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle deleted successfully", nil)
}

// SetMaintenance handles PUT /api/vehicles/:id/maintenance
func (h *VehicleHandler) SetMaintenance(c echo.Context) error {
	return h.setStatus(c, h.vehicleUC.SetMaintenance, "Vehicle marked for maintenance")
}

// SetAvailable handles PUT /api/vehicles/:id/available
func (h *VehicleHandler) SetAvailable(c echo.Context) error {
	return h.setStatus(c, h.vehicleUC.SetAvailable, "Vehicle marked available")
}

func (h *VehicleHandler) setStatus(c echo.Context, apply func(ctx context.Context, id uuid.UUID) (*models.Vehicle, error), msg string) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	vehicle, err := apply(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, msg, vehicle)
}

// ResetMonthlyMileage handles POST /api/vehicles/reset-monthly-mileage
func (h *VehicleHandler) ResetMonthlyMileage(c echo.Context) error {
	n, err := h.vehicleUC.ResetMonthlyMileage(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Monthly mileage reset", map[string]int64{"vehiclesReset": n})
}

// CountVehicles handles GET /api/vehicles/counts
func (h *VehicleHandler) CountVehicles(c echo.Context) error {
	counts, err := h.vehicleUC.CountVehicles(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", counts)
}
