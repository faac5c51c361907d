package gateway

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

func TestFetchPositions(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "monitor-key", r.Header.Get("X-API-Key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "all", body["scope"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"vehicles":[
			{"vehicleNumber":"nb 1985","latitude":-6.2,"longitude":106.8,"speed":35.5,"heading":90,"ignition":true,"gpsTime":"2026-03-10T08:59:30Z"}
		]}`))
	}))
	defer server.Close()

	gw := NewMonitorGW(models.TrackingConfig{URL: server.URL, APIKey: "monitor-key", Timeout: time.Second}, nil)

	positions, err := gw.FetchPositions(context.Background())

	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "NB1985", positions[0].VehicleNumber)
	assert.Equal(t, 35.5, positions[0].Speed)
	assert.True(t, positions[0].Ignition)
	assert.Equal(t, time.Date(2026, 3, 10, 8, 59, 30, 0, time.UTC), positions[0].ReportedAt)
}

func TestFetchPositions_ClientError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusUnauthorized)
	}))
	defer server.Close()

	gw := NewMonitorGW(models.TrackingConfig{URL: server.URL, Timeout: time.Second}, nil)

	_, err := gw.FetchPositions(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
