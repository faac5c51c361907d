package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/services/tracking"
	httpHandler "github.com/piresc/fleetdispatch/services/tracking/handler/http"
)

// Handler wires the tracking routes
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	cfg          *models.Config
}

// NewHandler creates the tracking route handler
func NewHandler(trackingUC tracking.TrackingUC, cfg *models.Config) *Handler {
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers the tracking routes. Any authenticated role may
// read positions; the nearby search is for admins choosing a vehicle.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	g := e.Group("/api/tracking", auth)
	g.GET("/vehicles", nrpkg.TraceHandler("Tracking.Vehicles", h.trackingHTTP.ListVehicles))
	g.GET("/vehicles/:id", nrpkg.TraceHandler("Tracking.Vehicle", h.trackingHTTP.GetVehicle))
	g.GET("/nearby", nrpkg.TraceHandler("Tracking.Nearby", h.trackingHTTP.NearbyVehicles),
		middleware.RequireRoles(models.RoleAdmin))

	e.GET("/api/rides/:id/eta", nrpkg.TraceHandler("Rides.ETA", h.trackingHTTP.RideETA), auth)
}
