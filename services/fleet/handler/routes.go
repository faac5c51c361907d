package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/services/fleet"
	httpHandler "github.com/piresc/fleetdispatch/services/fleet/handler/http"
)

// Handler combines all handlers for the fleet service
type Handler struct {
	authHTTP    *httpHandler.AuthHandler
	userHTTP    *httpHandler.UserHandler
	vehicleHTTP *httpHandler.VehicleHandler
	cfg         *models.Config

	loginLimiter echo.MiddlewareFunc
}

// NewHandler creates a new combined handler
func NewHandler(userUC fleet.UserUC, vehicleUC fleet.VehicleUC, cfg *models.Config) *Handler {
	return &Handler{
		authHTTP:    httpHandler.NewAuthHandler(userUC),
		userHTTP:    httpHandler.NewUserHandler(userUC),
		vehicleHTTP: httpHandler.NewVehicleHandler(vehicleUC),
		cfg:         cfg,
	}
}

// LimitLogin throttles the public login route
func (h *Handler) LimitLogin(mw echo.MiddlewareFunc) *Handler {
	h.loginLimiter = mw
	return h
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	var (
		auth  = middleware.JWTAuthMiddleware(h.cfg.JWT)
		admin = middleware.RequireRoles(models.RoleAdmin)
		a     = h.authHTTP
		u     = h.userHTTP
		v     = h.vehicleHTTP
	)

	var loginMW []echo.MiddlewareFunc
	if h.loginLimiter != nil {
		loginMW = append(loginMW, h.loginLimiter)
	}
	e.POST("/api/auth/login", nrpkg.TraceHandler("Auth.Login", a.Login), loginMW...)
	e.GET("/api/auth/me", nrpkg.TraceHandler("Auth.Me", a.Me), auth)

	users := e.Group("/api/users", auth, admin)
	users.GET("", nrpkg.TraceHandler("Users.List", u.ListUsers))
	users.POST("", nrpkg.TraceHandler("Users.Create", u.CreateUser))
	users.GET("/drivers", nrpkg.TraceHandler("Users.Drivers", u.ListDrivers))
	users.GET("/counts", nrpkg.TraceHandler("Users.Counts", u.CountUsers))
	users.GET("/:id", nrpkg.TraceHandler("Users.Get", u.GetUser))
	users.PUT("/:id", nrpkg.TraceHandler("Users.Update", u.UpdateUser))
	users.DELETE("/:id", nrpkg.TraceHandler("Users.Delete", u.DeleteUser))
	users.PUT("/:id/password", nrpkg.TraceHandler("Users.ResetPassword", u.ResetPassword))

	vehicles := e.Group("/api/vehicles", auth, admin)
	vehicles.GET("", nrpkg.TraceHandler("Vehicles.List", v.ListVehicles))
	vehicles.POST("", nrpkg.TraceHandler("Vehicles.Create", v.CreateVehicle))
	vehicles.GET("/counts", nrpkg.TraceHandler("Vehicles.Counts", v.CountVehicles))
	vehicles.POST("/reset-monthly-mileage", nrpkg.TraceHandler("Vehicles.ResetMonthlyMileage", v.ResetMonthlyMileage))
	vehicles.GET("/:id", nrpkg.TraceHandler("Vehicles.Get", v.GetVehicle))
	vehicles.PUT("/:id", nrpkg.TraceHandler("Vehicles.Update", v.UpdateVehicle))
	vehicles.DELETE("/:id", nrpkg.TraceHandler("Vehicles.Delete", v.DeleteVehicle))
	vehicles.PUT("/:id/maintenance", nrpkg.TraceHandler("Vehicles.Maintenance", v.SetMaintenance))
	vehicles.PUT("/:id/available", nrpkg.TraceHandler("Vehicles.Available", v.SetAvailable))

	// month-end scheduler hook
	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.App.InternalAPIKey))
	internal.POST("/vehicles/reset-monthly-mileage", nrpkg.TraceHandler("Internal.ResetMonthlyMileage", v.ResetMonthlyMileage))
}
