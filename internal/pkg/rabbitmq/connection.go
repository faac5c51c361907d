package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Client is a RabbitMQ connection with a confirming publish channel that
// reconnects in the background
type Client struct {
	url      string
	exchange string
	logger   *logger.ZapLogger

	mu      sync.RWMutex
	conn    *amqp.Connection
	pubChan *amqp.Channel

	pubMu       sync.Mutex
	pubConfirms chan amqp.Confirmation

	closeOnce sync.Once
	closed    chan struct{}
	reconnect chan struct{}
}

// ConnectRabbitMQ dials once and starts the reconnect watcher
func ConnectRabbitMQ(cfg models.RabbitMQConfig, zapLogger *logger.ZapLogger) (*Client, error) {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}
	exchange := cfg.Exchange
	if exchange == "" {
		exchange = "notifications"
	}

	client := &Client{
		url:       cfg.URL,
		exchange:  exchange,
		logger:    zapLogger,
		closed:    make(chan struct{}),
		reconnect: make(chan struct{}, 1),
	}

	if err := client.connectOnce(); err != nil {
		return nil, err
	}

	go client.watch()
	return client, nil
}

// Exchange is the topic exchange delivery jobs are published to
func (client *Client) Exchange() string {
	return client.exchange
}

// Ping reports whether the connection and publish channel are open
func (client *Client) Ping(_ context.Context) error {
	client.mu.RLock()
	defer client.mu.RUnlock()
	if client.conn == nil || client.conn.IsClosed() {
		return errors.New("rabbitmq: connection is not open")
	}
	if client.pubChan == nil || client.pubChan.IsClosed() {
		return errors.New("rabbitmq: publish channel is not open")
	}
	return nil
}

// Close stops the watcher and closes AMQP resources
func (client *Client) Close() {
	client.closeOnce.Do(func() { close(client.closed) })

	client.mu.Lock()
	if client.pubChan != nil {
		_ = client.pubChan.Close()
		client.pubChan = nil
	}
	if client.conn != nil {
		_ = client.conn.Close()
		client.conn = nil
	}
	client.mu.Unlock()
}

func (client *Client) connectOnce() (err error) {
	conn, err := amqp.DialConfig(client.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(30 * time.Second),
	})
	if err != nil {
		return fmt.Errorf("rabbitmq dial failed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = conn.Close()
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: failed to open channel: %w", err)
	}

	if err = declareTopology(ch, client.exchange); err != nil {
		return fmt.Errorf("rabbitmq: failed to declare topology: %w", err)
	}

	if err = ch.Confirm(false); err != nil {
		return fmt.Errorf("rabbitmq: failed to enable confirms: %w", err)
	}

	client.pubMu.Lock()
	client.pubConfirms = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	client.pubMu.Unlock()

	returns := ch.NotifyReturn(make(chan amqp.Return, 1))
	go func() {
		for r := range returns {
			client.logger.Warn("RabbitMQ message returned as unroutable",
				logger.String("exchange", r.Exchange),
				logger.String("routing_key", r.RoutingKey),
				logger.Int("reply_code", int(r.ReplyCode)),
				logger.String("reply_text", r.ReplyText))
		}
	}()

	client.mu.Lock()
	if client.pubChan != nil && !client.pubChan.IsClosed() {
		_ = client.pubChan.Close()
	}
	client.conn = conn
	client.pubChan = ch
	client.mu.Unlock()

	go func() {
		connClosed := conn.NotifyClose(make(chan *amqp.Error, 1))
		chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))
		select {
		case <-client.closed:
			return
		case <-connClosed:
		case <-chClosed:
		}
		select {
		case client.reconnect <- struct{}{}:
		default:
		}
	}()

	client.logger.Info("RabbitMQ connection established", logger.String("exchange", client.exchange))
	return nil
}

// watch reconnects with capped exponential backoff until Close
func (client *Client) watch() {
	for {
		select {
		case <-client.closed:
			return
		case <-client.reconnect:
		}

		backoff := time.Second
		for {
			select {
			case <-client.closed:
				return
			default:
			}

			err := client.connectOnce()
			if err == nil {
				client.logger.Info("Reconnected to RabbitMQ")
				break
			}

			client.logger.Error("Failed to reconnect to RabbitMQ",
				logger.Err(err),
				logger.Duration("backoff", backoff))

			select {
			case <-client.closed:
				return
			case <-time.After(backoff):
			}
			backoff = nextBackoff(backoff)
		}
	}
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > 30*time.Second {
		return 30 * time.Second
	}
	return next
}

// declareTopology sets up the topic exchange and one durable queue per channel
func declareTopology(ch *amqp.Channel, exchange string) error {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	for _, b := range bindings() {
		if _, err := ch.QueueDeclare(b.queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare queue %s: %w", b.queue, err)
		}
		if err := ch.QueueBind(b.queue, b.routingKey, exchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s to %s: %w", b.queue, exchange, err)
		}
	}
	return nil
}

type binding struct {
	queue      string
	routingKey string
}

func bindings() []binding {
	return []binding{
		{constants.QueueNotificationEmail, constants.RouteNotificationEmail},
		{constants.QueueNotificationSMS, constants.RouteNotificationSMS},
	}
}
