package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Commit is stamped at build time with -ldflags "-X .../health.Commit=..."
var Commit = "unknown"

// Info is the body of /ping
type Info struct {
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Commit    string    `json:"commit"`
	GoVersion string    `json:"go_version"`
	Hostname  string    `json:"hostname"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
}

const (
	detailedTimeout = 5 * time.Second
	readyTimeout    = 3 * time.Second
)

// RegisterEndpoints mounts /ping and the /health probes. Readiness fails only
// when a required dependency is down; liveness never touches dependencies.
func RegisterEndpoints(e *echo.Echo, service, version string, svc *Service) {
	started := time.Now()
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, Info{
			Service:   service,
			Version:   version,
			Commit:    Commit,
			GoVersion: runtime.Version(),
			Hostname:  hostname,
			StartedAt: started,
			Uptime:    time.Since(started).Truncate(time.Second).String(),
		})
	})

	g := e.Group("/health")
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": service})
	})

	g.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), detailedTimeout)
		defer cancel()
		report := svc.Check(ctx)
		report.Service = service
		report.Version = version
		return c.JSON(statusCode(report), report)
	})

	g.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
		defer cancel()
		report := svc.Check(ctx)
		report.Service = service
		if report.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, report)
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready", "service": service, "health": report.Status})
	})

	g.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "alive", "service": service})
	})
}

func statusCode(r Report) int {
	if r.Status == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
