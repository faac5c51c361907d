package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/services/reports"
	httpHandler "github.com/piresc/fleetdispatch/services/reports/handler/http"
)

// Handler wires the report routes
type Handler struct {
	reportsHTTP *httpHandler.ReportsHandler
	cfg         *models.Config
}

// NewHandler creates the report route handler
func NewHandler(reportUC reports.ReportUC, cfg *models.Config) *Handler {
	return &Handler{
		reportsHTTP: httpHandler.NewReportsHandler(reportUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the report routes. Personal history is open to
// every role; fleet-wide reports are for admins and project managers.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	var (
		managers = middleware.RequireRoles(models.RoleAdmin, models.RoleProjectManager)
		r        = h.reportsHTTP
	)

	g := e.Group("/api/reports", middleware.JWTAuthMiddleware(h.cfg.JWT))

	g.GET("/my-history", nrpkg.TraceHandler("Reports.MyHistory", r.MyHistory))

	g.GET("/dashboard-stats", nrpkg.TraceHandler("Reports.Dashboard", r.DashboardStats), managers)
	g.GET("/monthly-rides", nrpkg.TraceHandler("Reports.MonthlyRides", r.MonthlyRides), managers)
	g.GET("/driver-performance", nrpkg.TraceHandler("Reports.DriverPerformance", r.DriverPerformance), managers)
	g.GET("/vehicle-usage", nrpkg.TraceHandler("Reports.VehicleUsage", r.VehicleUsage), managers)
	g.GET("/ride-history", nrpkg.TraceHandler("Reports.RideHistory", r.RideHistory), managers)
	g.GET("/export/:type", nrpkg.TraceHandler("Reports.Export", r.Export), managers)
}
