package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// NotificationUC fans ride events out to recipients and serves their feed
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleetdispatch/services/notification NotificationUC
type NotificationUC interface {
	HandleRideEvent(ctx context.Context, event *models.RideEvent) error

	ListNotifications(ctx context.Context, actor models.Actor, filter models.NotificationFilter) (*models.NotificationList, error)
	MarkRead(ctx context.Context, actor models.Actor, id uuid.UUID) error
	MarkAllRead(ctx context.Context, actor models.Actor) (int64, error)
}
