package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/fleetdispatch/internal/pkg/http"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/tracking"
)

// monitorRequest asks the GPS monitor for every vehicle on the account
type monitorRequest struct {
	Scope string `json:"scope"`
}

type monitorResponse struct {
	Vehicles []monitorVehicle `json:"vehicles"`
}

type monitorVehicle struct {
	VehicleNumber string    `json:"vehicleNumber"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Speed         float64   `json:"speed"`
	Heading       float64   `json:"heading"`
	Ignition      bool      `json:"ignition"`
	GPSTime       time.Time `json:"gpsTime"`
}

// MonitorGW fetches positions from the GPS monitor over HTTP
type MonitorGW struct {
	client *http.Client
}

// NewMonitorGW creates the GPS monitor gateway
func NewMonitorGW(cfg models.TrackingConfig, log *logger.ZapLogger) tracking.TrackingGW {
	return &MonitorGW{
		client: http.NewClient(http.Config{
			BaseURL: cfg.URL,
			APIKey:  cfg.APIKey,
			Timeout: cfg.Timeout,
		}, log),
	}
}

// FetchPositions returns the latest fix of every reporting vehicle
func (g *MonitorGW) FetchPositions(ctx context.Context) ([]models.VehiclePosition, error) {
	var resp monitorResponse
	if err := g.client.PostJSON(ctx, "", monitorRequest{Scope: "all"}, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle positions: %w", err)
	}

	positions := make([]models.VehiclePosition, 0, len(resp.Vehicles))
	for _, v := range resp.Vehicles {
		positions = append(positions, models.VehiclePosition{
			VehicleNumber: utils.NormalizeVehicleNumber(v.VehicleNumber),
			Latitude:      v.Latitude,
			Longitude:     v.Longitude,
			Speed:         v.Speed,
			Heading:       v.Heading,
			Ignition:      v.Ignition,
			ReportedAt:    v.GPSTime,
		})
	}
	return positions, nil
}
