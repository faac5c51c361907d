package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/services/rides"
	httpHandler "github.com/piresc/fleetdispatch/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(ridesUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(ridesUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Every route needs a JWT; role
// checks are per route.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	var (
		admin  = middleware.RequireRoles(models.RoleAdmin)
		pm     = middleware.RequireRoles(models.RoleProjectManager)
		driver = middleware.RequireRoles(models.RoleDriver)
		r      = h.ridesHTTP
	)

	g := e.Group("/api/rides", middleware.JWTAuthMiddleware(h.cfg.JWT))

	g.POST("", nrpkg.TraceHandler("Rides.Create", r.CreateRide))
	g.GET("", nrpkg.TraceHandler("Rides.List", r.ListRides))
	g.GET("/my-stats", nrpkg.TraceHandler("Rides.MyStats", r.GetMyStats))

	g.GET("/awaiting-pm", nrpkg.TraceHandler("Rides.AwaitingPM", r.ListAwaitingPM), pm)
	g.GET("/awaiting-admin", nrpkg.TraceHandler("Rides.AwaitingAdmin", r.ListAwaitingAdmin), admin)
	g.GET("/ready-for-assignment", nrpkg.TraceHandler("Rides.ReadyForAssignment", r.ListReadyForAssignment), admin)
	g.GET("/available-drivers", nrpkg.TraceHandler("Rides.AvailableDrivers", r.AvailableDrivers), admin)
	g.GET("/available-vehicles", nrpkg.TraceHandler("Rides.AvailableVehicles", r.AvailableVehicles), admin)

	g.GET("/driver/assigned", nrpkg.TraceHandler("Rides.DriverAssigned", r.ListDriverAssigned), driver)
	g.GET("/driver/daily", nrpkg.TraceHandler("Rides.DriverDaily", r.GetDriverDaily), driver)

	g.GET("/:id", nrpkg.TraceHandler("Rides.Get", r.GetRide))
	g.PUT("/:id/pm-approve", nrpkg.TraceHandler("Rides.PMApprove", r.PMApprove), pm)
	g.PUT("/:id/pm-reject", nrpkg.TraceHandler("Rides.PMReject", r.PMReject), pm)
	g.PUT("/:id/admin-approve", nrpkg.TraceHandler("Rides.AdminApprove", r.AdminApprove), admin)
	g.PUT("/:id/admin-reject", nrpkg.TraceHandler("Rides.AdminReject", r.AdminReject), admin)
	g.PUT("/:id/assign", nrpkg.TraceHandler("Rides.Assign", r.AssignRide), admin)
	g.PUT("/:id/reassign", nrpkg.TraceHandler("Rides.Reassign", r.ReassignRide), admin)
	g.PUT("/:id/start", nrpkg.TraceHandler("Rides.Start", r.StartRide), driver)
	g.PUT("/:id/complete", nrpkg.TraceHandler("Rides.Complete", r.CompleteRide), driver)
	g.PUT("/:id/cancel", nrpkg.TraceHandler("Rides.Cancel", r.CancelRide))
}
