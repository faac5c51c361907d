package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// PublishMessage publishes a persistent JSON message and waits for the broker confirm
func (client *Client) PublishMessage(ctx context.Context, routingKey string, body []byte) error {
	client.mu.RLock()
	ch := client.pubChan
	conn := client.conn
	client.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return errors.New("rabbitmq: connection is not open")
	}
	if ch == nil || ch.IsClosed() {
		return errors.New("rabbitmq: publish channel is not open")
	}

	client.pubMu.Lock()
	defer client.pubMu.Unlock()
	confirms := client.pubConfirms

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := ch.PublishWithContext(ctx, client.exchange, routingKey, true, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now(),
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("rabbitmq: publish failed: %w", err)
	}

	select {
	case c, ok := <-confirms:
		if !ok {
			return errors.New("rabbitmq: confirm stream closed")
		}
		if !c.Ack {
			return errors.New("rabbitmq: publish not acknowledged")
		}
	case <-ctx.Done():
		// drain the late confirm so the next publish reads its own
		select {
		case <-confirms:
		case <-time.After(2 * time.Second):
		}
		return ctx.Err()
	}
	return nil
}

// DeliveryPublisher publishes notification delivery jobs
type DeliveryPublisher struct {
	client *Client
}

// NewDeliveryPublisher creates a publisher on top of client
func NewDeliveryPublisher(client *Client) *DeliveryPublisher {
	return &DeliveryPublisher{client: client}
}

// PublishDelivery routes the job by channel: notification.email or notification.sms
func (p *DeliveryPublisher) PublishDelivery(ctx context.Context, job models.DeliveryJob) error {
	key, err := RoutingKey(job.Channel)
	if err != nil {
		return err
	}
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal delivery job: %w", err)
	}
	return p.client.PublishMessage(ctx, key, body)
}

// RoutingKey maps a delivery channel to its routing key
func RoutingKey(channel models.DeliveryChannel) (string, error) {
	switch channel {
	case models.DeliveryEmail:
		return constants.RouteNotificationEmail, nil
	case models.DeliverySMS:
		return constants.RouteNotificationSMS, nil
	}
	return "", fmt.Errorf("unknown delivery channel %q", channel)
}
