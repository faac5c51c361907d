package notification

import "github.com/piresc/fleetdispatch/internal/pkg/apperror"

var (
	ErrNotificationNotFound = apperror.NotFound("notification_not_found", "Notification not found")
)
