package tracking

import (
	"context"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// TrackingRepo caches the fleet feed and indexes vehicle positions
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fleetdispatch/services/tracking TrackingRepo
type TrackingRepo interface {
	SaveSnapshot(ctx context.Context, snapshot *models.TrackingSnapshot) error
	// GetSnapshot returns nil without error when nothing is cached
	GetSnapshot(ctx context.Context) (*models.TrackingSnapshot, error)
	IndexPositions(ctx context.Context, positions []models.VehiclePosition) error
	GetPosition(ctx context.Context, vehicleNumber string) (*models.VehiclePosition, error)
	// NearbyVehicles returns indexed vehicles nearest first
	NearbyVehicles(ctx context.Context, q models.NearbyQuery) ([]models.NearbyVehicle, error)
}
