package notification

import (
	"context"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// Pusher sends a live event to every open connection of a user
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/fleetdispatch/services/notification Pusher,DeliveryPublisher
type Pusher interface {
	NotifyUser(userID string, event string, data interface{}) int
}

// DeliveryPublisher hands an email or SMS job to the delivery workers
type DeliveryPublisher interface {
	PublishDelivery(ctx context.Context, job models.DeliveryJob) error
}
