package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/metrics"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/notification"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// notificationUC implements notification.NotificationUC
type notificationUC struct {
	repo     notification.NotificationRepo
	pusher   notification.Pusher
	delivery notification.DeliveryPublisher
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(
	repo notification.NotificationRepo,
	pusher notification.Pusher,
	delivery notification.DeliveryPublisher,
) notification.NotificationUC {
	return &notificationUC{
		repo:     repo,
		pusher:   pusher,
		delivery: delivery,
	}
}

// HandleRideEvent stores one notification per recipient, then pushes and
// queues delivery for the rows that were new. Only a storage failure is
// returned so the event is redelivered.
func (uc *notificationUC) HandleRideEvent(ctx context.Context, evt *models.RideEvent) error {
	recipients, err := uc.resolve(ctx, evt)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		logger.Debug("Ride event has no recipients",
			logger.String("type", string(evt.Type)),
			logger.String("ride_code", evt.RideCode))
		return nil
	}

	byID := make(map[uuid.UUID]*models.User, len(recipients))
	rows := make([]*models.Notification, 0, len(recipients))
	rideID := evt.RideID
	for _, u := range recipients {
		byID[u.ID] = u
		title, body := compose(evt, u.ID)
		rows = append(rows, &models.Notification{
			ID:          uuid.New(),
			RecipientID: u.ID,
			Type:        evt.Type,
			Title:       title,
			Message:     body,
			RideID:      &rideID,
			EventID:     evt.EventID,
			CreatedAt:   evt.OccurredAt,
		})
	}

	saved, err := uc.repo.SaveNotifications(ctx, rows)
	if err != nil {
		return err
	}
	metrics.NotificationsCreated.WithLabelValues(string(evt.Type)).Add(float64(len(saved)))

	for _, n := range saved {
		uc.pusher.NotifyUser(n.RecipientID.String(), constants.EventNotification, n)
		uc.deliver(ctx, n, byID[n.RecipientID])
	}

	logger.InfoCtx(ctx, "Ride event fanned out",
		logger.String("type", string(evt.Type)),
		logger.String("ride_code", evt.RideCode),
		logger.Int("recipients", len(recipients)),
		logger.Int("new", len(saved)))
	return nil
}

func (uc *notificationUC) resolve(ctx context.Context, evt *models.RideEvent) ([]*models.User, error) {
	a := audienceFor(evt)

	byRole, err := uc.repo.ListActiveUsersByRole(ctx, a.roles)
	if err != nil {
		return nil, err
	}
	byID, err := uc.repo.GetActiveUsers(ctx, a.ids)
	if err != nil {
		return nil, err
	}
	return mergeRecipients(evt.ActorID, byID, byRole), nil
}

// deliver queues email and SMS jobs; failures are logged and counted only
func (uc *notificationUC) deliver(ctx context.Context, n *models.Notification, to *models.User) {
	if to == nil {
		return
	}

	jobs := make([]models.DeliveryJob, 0, 2)
	if to.Email != "" {
		jobs = append(jobs, models.DeliveryJob{
			NotificationID: n.ID, Channel: models.DeliveryEmail, To: to.Email, Name: to.Name,
			Subject: n.Title, Body: n.Message,
		})
	}
	if to.Phone != "" {
		jobs = append(jobs, models.DeliveryJob{
			NotificationID: n.ID, Channel: models.DeliverySMS, To: to.Phone, Name: to.Name,
			Body: n.Message,
		})
	}

	for _, job := range jobs {
		err := uc.delivery.PublishDelivery(ctx, job)
		metrics.RecordDelivery(string(job.Channel), err)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to queue notification delivery",
				logger.UUID("notification_id", n.ID),
				logger.String("channel", string(job.Channel)),
				logger.Err(err))
			continue
		}
		if err := uc.repo.MarkDelivered(ctx, n.ID, job.Channel); err != nil {
			logger.WarnCtx(ctx, "Failed to flag notification delivery",
				logger.UUID("notification_id", n.ID),
				logger.Err(err))
		}
	}
}

// ListNotifications returns the caller's own feed
func (uc *notificationUC) ListNotifications(ctx context.Context, actor models.Actor, filter models.NotificationFilter) (*models.NotificationList, error) {
	filter.RecipientID = actor.UserID
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	list, err := uc.repo.ListNotifications(ctx, filter)
	if err != nil {
		return nil, classify(err)
	}
	return list, nil
}

// MarkRead marks one of the caller's notifications read
func (uc *notificationUC) MarkRead(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if err := uc.repo.MarkRead(ctx, id, actor.UserID); err != nil {
		return classify(err)
	}
	return nil
}

// MarkAllRead marks the caller's whole feed read
func (uc *notificationUC) MarkAllRead(ctx context.Context, actor models.Actor) (int64, error) {
	n, err := uc.repo.MarkAllRead(ctx, actor.UserID)
	if err != nil {
		return 0, classify(err)
	}
	return n, nil
}

func classify(err error) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Downstream("Notification storage failure", err)
}
