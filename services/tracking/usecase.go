package tracking

import (
	"context"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// TrackingUC serves vehicle positions and ride ETAs. It never changes ride state.
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleetdispatch/services/tracking TrackingUC
type TrackingUC interface {
	Snapshot(ctx context.Context) (*models.TrackingSnapshot, error)
	GetVehiclePosition(ctx context.Context, vehicleNumber string) (*models.VehiclePosition, error)
	RideETA(ctx context.Context, actor models.Actor, ref string) (*models.RideETA, error)
	NearbyVehicles(ctx context.Context, q models.NearbyQuery) ([]models.NearbyVehicle, error)
}

// RideLocator resolves a ride and its assigned vehicle
type RideLocator interface {
	GetRideVehicle(ctx context.Context, actor models.Actor, ref string) (*models.Ride, *models.Vehicle, error)
}
