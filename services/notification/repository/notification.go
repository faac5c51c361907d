package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/notification"
)

const notificationColumns = `id, recipient_id, type, title, message, ride_id, event_id,
	is_read, email_sent, sms_sent, created_at`

const userColumns = `id, name, email, phone, password_hash, role, status, assigned_vehicle_id,
	current_ride_id, total_rides, total_distance, is_hardcoded, is_active, created_at, updated_at`

// NotificationRepo is the postgres implementation of notification.NotificationRepo
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sqlx.DB) *NotificationRepo {
	logger.Info("Initializing notification repository")
	return &NotificationRepo{db: db}
}

// SaveNotifications inserts the rows in one transaction. Rows whose
// (event_id, recipient_id) already exist are skipped and left out of the result.
func (r *NotificationRepo) SaveNotifications(ctx context.Context, notifications []*models.Notification) ([]*models.Notification, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO notifications (id, recipient_id, type, title, message, ride_id, event_id,
			is_read, email_sent, sms_sent, created_at
		) VALUES (:id, :recipient_id, :type, :title, :message, :ride_id, :event_id,
			:is_read, :email_sent, :sms_sent, :created_at)
		ON CONFLICT (event_id, recipient_id) DO NOTHING`

	inserted := make([]*models.Notification, 0, len(notifications))
	for _, n := range notifications {
		res, err := tx.NamedExecContext(ctx, query, n)
		if err != nil {
			return nil, fmt.Errorf("failed to insert notification: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to insert notification: %w", err)
		}
		if affected > 0 {
			inserted = append(inserted, n)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}

// ListNotifications returns one page of the recipient's feed, newest first,
// with the total and unread counts
func (r *NotificationRepo) ListNotifications(ctx context.Context, filter models.NotificationFilter) (*models.NotificationList, error) {
	where := ` WHERE recipient_id = $1`
	if filter.UnreadOnly {
		where += ` AND NOT is_read`
	}

	list := &models.NotificationList{
		Notifications: []*models.Notification{},
		Page:          filter.Page,
	}
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FILTER (WHERE $2 = FALSE OR NOT is_read), COUNT(*) FILTER (WHERE NOT is_read)
		FROM notifications WHERE recipient_id = $1`, filter.RecipientID, filter.UnreadOnly,
	).Scan(&list.Total, &list.Unread)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	err = r.db.SelectContext(ctx, &list.Notifications,
		`SELECT `+notificationColumns+` FROM notifications`+where+` ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		filter.RecipientID, filter.Limit, filter.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

// MarkRead marks one of the recipient's notifications read. Another user's
// notification is reported as missing.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`, id, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if n == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of the recipient read
func (r *NotificationRepo) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND NOT is_read`, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return n, nil
}

// MarkDelivered flags the channel's job as handed to the delivery queue
func (r *NotificationRepo) MarkDelivered(ctx context.Context, id uuid.UUID, channel models.DeliveryChannel) error {
	var column string
	switch channel {
	case models.DeliveryEmail:
		column = "email_sent"
	case models.DeliverySMS:
		column = "sms_sent"
	default:
		return fmt.Errorf("unknown delivery channel %q", channel)
	}

	if _, err := r.db.ExecContext(ctx, `UPDATE notifications SET `+column+` = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to mark %s delivered: %w", channel, err)
	}
	return nil
}

// ListActiveUsersByRole returns the active users holding any of roles
func (r *NotificationRepo) ListActiveUsersByRole(ctx context.Context, roles []models.Role) ([]*models.User, error) {
	users := []*models.User{}
	if len(roles) == 0 {
		return users, nil
	}
	query, args, err := sqlx.In(`SELECT `+userColumns+` FROM users WHERE is_active AND role IN (?)`, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to build recipient query: %w", err)
	}
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list recipients by role: %w", err)
	}
	return users, nil
}

// GetActiveUsers returns the active users among ids
func (r *NotificationRepo) GetActiveUsers(ctx context.Context, ids []uuid.UUID) ([]*models.User, error) {
	users := []*models.User{}
	if len(ids) == 0 {
		return users, nil
	}
	query, args, err := sqlx.In(`SELECT `+userColumns+` FROM users WHERE is_active AND id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build recipient query: %w", err)
	}
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get recipients: %w", err)
	}
	return users, nil
}
