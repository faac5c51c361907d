package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fleetdispatch"

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Ride lifecycle metrics
	RideTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ride_transitions_total",
			Help:      "Ride lifecycle commands by event and outcome",
		},
		[]string{"event", "outcome"},
	)

	RideEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ride_events_published_total",
			Help:      "Ride events published after commit",
		},
		[]string{"type", "status"},
	)

	RideCodeCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ride_code_collisions_total",
			Help:      "Generated ride codes that already existed",
		},
	)

	// Notification metrics
	NotificationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      "In-app notifications stored per event type",
		},
		[]string{"type"},
	)

	NotificationDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_deliveries_total",
			Help:      "Notification deliveries by channel and status",
		},
		[]string{"channel", "status"},
	)

	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_connections",
			Help:      "Current number of open notification websockets",
		},
	)

	// Tracking metrics
	TrackingFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracking_fetches_total",
			Help:      "Vehicle position lookups by source",
		},
		[]string{"source"},
	)

	// Report metrics
	ReportCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_cache_lookups_total",
			Help:      "Dashboard cache lookups by result",
		},
		[]string{"result"},
	)
)

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}

// RecordTransition counts one ride command
func RecordTransition(event string, err error) {
	RideTransitionsTotal.WithLabelValues(event, outcome(err)).Inc()
}

// RecordEventPublish counts one post-commit publish
func RecordEventPublish(eventType string, err error) {
	RideEventsPublished.WithLabelValues(eventType, outcome(err)).Inc()
}

// RecordDelivery counts one notification delivery attempt
func RecordDelivery(channel string, err error) {
	NotificationDeliveries.WithLabelValues(channel, outcome(err)).Inc()
}

// RecordReportCache counts one dashboard cache lookup
func RecordReportCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	ReportCacheLookups.WithLabelValues(result).Inc()
}

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(service, method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// PrometheusMiddleware records HTTP metrics labelled by route template, so
// /api/rides/:id stays one series
func PrometheusMiddleware(service string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/metrics" {
				return next(c)
			}

			start := time.Now()
			HTTPRequestsInFlight.WithLabelValues(service).Inc()
			defer HTTPRequestsInFlight.WithLabelValues(service).Dec()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if status < http.StatusBadRequest {
					status = http.StatusInternalServerError
				}
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			RecordHTTPMetrics(service, c.Request().Method, path, status, time.Since(start))
			return err
		}
	}
}

// RegisterEndpoint exposes the default registry on GET /metrics
func RegisterEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
