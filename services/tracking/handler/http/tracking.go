package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/tracking"
)

// TrackingHandler serves vehicle positions and ride ETAs
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{trackingUC: trackingUC}
}

// ListVehicles handles GET /api/tracking/vehicles
func (h *TrackingHandler) ListVehicles(c echo.Context) error {
	snap, err := h.trackingUC.Snapshot(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", snap)
}

// GetVehicle handles GET /api/tracking/vehicles/:id where id is the vehicle number
func (h *TrackingHandler) GetVehicle(c echo.Context) error {
	pos, err := h.trackingUC.GetVehiclePosition(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", pos)
}

// RideETA handles GET /api/rides/:id/eta
func (h *TrackingHandler) RideETA(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	middleware.TagRide(c, c.Param("id"))

	eta, err := h.trackingUC.RideETA(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", eta)
}

// NearbyVehicles handles GET /api/tracking/nearby?lat=&lng=&radius=&limit=
func (h *TrackingHandler) NearbyVehicles(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng is required")
	}
	q := models.NearbyQuery{Latitude: lat, Longitude: lng}
	if v := c.QueryParam("radius"); v != "" {
		if q.RadiusKm, err = strconv.ParseFloat(v, 64); err != nil {
			return utils.BadRequestResponse(c, "radius must be a number of kilometres")
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if q.Limit, err = strconv.Atoi(v); err != nil {
			return utils.BadRequestResponse(c, "limit must be an integer")
		}
	}

	vehicles, err := h.trackingUC.NearbyVehicles(c.Request().Context(), q)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", vehicles)
}
