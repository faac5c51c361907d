package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// NotificationRepo stores in-app notifications and resolves their recipients
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fleetdispatch/services/notification NotificationRepo
type NotificationRepo interface {
	// SaveNotifications inserts the rows in one transaction and returns the
	// ones that were new. A redelivered event inserts nothing.
	SaveNotifications(ctx context.Context, notifications []*models.Notification) ([]*models.Notification, error)
	ListNotifications(ctx context.Context, filter models.NotificationFilter) (*models.NotificationList, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, channel models.DeliveryChannel) error

	ListActiveUsersByRole(ctx context.Context, roles []models.Role) ([]*models.User, error)
	GetActiveUsers(ctx context.Context, ids []uuid.UUID) ([]*models.User, error)
}
