package tracking

import (
	"context"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// TrackingGW talks to the upstream GPS monitor
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/fleetdispatch/services/tracking TrackingGW
type TrackingGW interface {
	FetchPositions(ctx context.Context) ([]models.VehiclePosition, error)
}
