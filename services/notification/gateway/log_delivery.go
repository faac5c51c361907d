package gateway

import (
	"context"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/notification"
)

const logPreviewLength = 80

// LogDispatcher stands in for the delivery queue when RabbitMQ is disabled.
// Jobs are logged and reported as queued.
type LogDispatcher struct{}

// NewLogDispatcher creates a delivery publisher that only logs
func NewLogDispatcher() notification.DeliveryPublisher {
	logger.Warn("RabbitMQ disabled, email and SMS jobs will only be logged")
	return &LogDispatcher{}
}

// PublishDelivery logs the job with the recipient masked
func (d *LogDispatcher) PublishDelivery(_ context.Context, job models.DeliveryJob) error {
	logger.Info("Delivery job",
		logger.String("channel", string(job.Channel)),
		logger.String("to", maskRecipient(job)),
		logger.UUID("notification_id", job.NotificationID),
		logger.String("subject", job.Subject),
		logger.String("preview", utils.Truncate(job.Body, logPreviewLength)))
	return nil
}

func maskRecipient(job models.DeliveryJob) string {
	if job.Channel == models.DeliverySMS {
		return utils.MaskPhoneNumber(job.To)
	}
	return utils.MaskEmail(job.To)
}
