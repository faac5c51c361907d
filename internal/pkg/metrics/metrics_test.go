package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordTransition(t *testing.T) {
	before := testutil.ToFloat64(RideTransitionsTotal.WithLabelValues("assign", OutcomeError))
	RecordTransition("assign", errors.New("driver_conflict"))
	after := testutil.ToFloat64(RideTransitionsTotal.WithLabelValues("assign", OutcomeError))
	assert.Equal(t, before+1, after)

	before = testutil.ToFloat64(RideTransitionsTotal.WithLabelValues("assign", OutcomeSuccess))
	RecordTransition("assign", nil)
	assert.Equal(t, before+1, testutil.ToFloat64(RideTransitionsTotal.WithLabelValues("assign", OutcomeSuccess)))
}

func TestRecordReportCache(t *testing.T) {
	hits := testutil.ToFloat64(ReportCacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(ReportCacheLookups.WithLabelValues("miss"))

	RecordReportCache(true)
	RecordReportCache(false)
	RecordReportCache(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(ReportCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(ReportCacheLookups.WithLabelValues("miss")))
}

func TestPrometheusMiddleware_UsesRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(PrometheusMiddleware("rides-test"))
	e.GET("/api/rides/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusForbidden, "no")
	})
	RegisterEndpoint(e)

	for _, id := range []string{"ABC123", "XYZ789"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rides/"+id, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fail", nil))

	assert.Equal(t, float64(2),
		testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("rides-test", http.MethodGet, "/api/rides/:id", "200")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("rides-test", http.MethodGet, "/api/fail", "403")))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fleetdispatch_http_requests_total")
}
