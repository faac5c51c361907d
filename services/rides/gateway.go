package rides

import (
	"context"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// RideGW defines the interface for ride gateway operations
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/fleetdispatch/services/rides RideGW
type RideGW interface {
	PublishRideEvent(ctx context.Context, event *models.RideEvent) error
}
