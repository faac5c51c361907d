package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
)

var (
	up   = CheckerFunc(func(context.Context) error { return nil })
	down = CheckerFunc(func(context.Context) error { return errors.New("connection refused") })
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	e := echo.New()
	RegisterEndpoints(e, "fleet-service", "2.0.0", NewService(logger.NewNopLogger()))

	rec := serve(e, "/ping")

	require.Equal(t, http.StatusOK, rec.Code)
	var info Info
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "fleet-service", info.Service)
	assert.Equal(t, "2.0.0", info.Version)
	assert.Equal(t, Commit, info.Commit)
	assert.False(t, info.StartedAt.IsZero())
}

func TestProbes(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(s *Service)
		wantStatus   string
		wantDetailed int
		wantReady    int
	}{
		{
			name:         "all up",
			setup:        func(s *Service) { s.Require("postgres", up).Require("nats", up) },
			wantStatus:   StatusHealthy,
			wantDetailed: http.StatusOK,
			wantReady:    http.StatusOK,
		},
		{
			name:         "required dependency down",
			setup:        func(s *Service) { s.Require("postgres", up).Require("nats", down) },
			wantStatus:   StatusUnhealthy,
			wantDetailed: http.StatusServiceUnavailable,
			wantReady:    http.StatusServiceUnavailable,
		},
		{
			name:         "optional dependency down",
			setup:        func(s *Service) { s.Require("postgres", up).Optional("redis", down) },
			wantStatus:   StatusDegraded,
			wantDetailed: http.StatusOK,
			wantReady:    http.StatusOK,
		},
		{
			name:         "required beats optional",
			setup:        func(s *Service) { s.Optional("redis", down).Require("postgres", down) },
			wantStatus:   StatusUnhealthy,
			wantDetailed: http.StatusServiceUnavailable,
			wantReady:    http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(logger.NewNopLogger())
			tt.setup(svc)
			e := echo.New()
			RegisterEndpoints(e, "rides-service", "1.2.3", svc)

			rec := serve(e, "/health/detailed")
			require.Equal(t, tt.wantDetailed, rec.Code)
			var report Report
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Equal(t, "rides-service", report.Service)
			assert.Equal(t, "1.2.3", report.Version)

			assert.Equal(t, tt.wantReady, serve(e, "/health/ready").Code)
			// liveness never depends on downstream services
			assert.Equal(t, http.StatusOK, serve(e, "/health/live").Code)
			assert.Equal(t, http.StatusOK, serve(e, "/health").Code)
		})
	}
}

func TestFailedDependencyCarriesError(t *testing.T) {
	svc := NewService(nil).Require("nats", down).Optional("redis", up)

	report := svc.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, report.Dependencies["nats"].Status)
	assert.Equal(t, "connection refused", report.Dependencies["nats"].Error)
	assert.True(t, report.Dependencies["redis"].Optional)
	assert.Equal(t, StatusHealthy, report.Dependencies["redis"].Status)
}

func TestNilClientsAreSkipped(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, Postgres(nil).CheckHealth(ctx))
	assert.NoError(t, Redis(nil).CheckHealth(ctx))
	assert.NoError(t, NATS(nil).CheckHealth(ctx))
}
