package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/services/notification"
	httpHandler "github.com/piresc/fleetdispatch/services/notification/handler/http"
)

// Socket upgrades authenticated websocket connections
type Socket interface {
	HandleConnection(c echo.Context) error
}

// Handler combines all handlers for the notification service
type Handler struct {
	notificationHTTP *httpHandler.NotificationHandler
	socket           Socket
	cfg              *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(uc notification.NotificationUC, socket Socket, cfg *models.Config) *Handler {
	return &Handler{
		notificationHTTP: httpHandler.NewNotificationHandler(uc),
		socket:           socket,
		cfg:              cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	n := h.notificationHTTP

	// the socket authenticates its own upgrade from the header or ?token=
	e.GET("/ws/notifications", h.socket.HandleConnection)

	feed := e.Group("/api/notifications", middleware.JWTAuthMiddleware(h.cfg.JWT))
	feed.GET("", nrpkg.TraceHandler("Notifications.List", n.ListNotifications))
	feed.PUT("/read-all", nrpkg.TraceHandler("Notifications.MarkAllRead", n.MarkAllRead))
	feed.PUT("/:id/read", nrpkg.TraceHandler("Notifications.MarkRead", n.MarkRead))
}
