package nats

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
)

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name      string
	Subjects  []string
	Retention jetstream.RetentionPolicy
	Storage   jetstream.StorageType
	Replicas  int
	MaxAge    time.Duration
	MaxBytes  int64
	MaxMsgs   int64
	Discard   jetstream.DiscardPolicy
	// Duplicates is the window in which a repeated Nats-Msg-Id is dropped
	Duplicates time.Duration
}

// ConsumerConfig describes a durable JetStream consumer bound to a stream
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	DeliverPolicy jetstream.DeliverPolicy
	AckPolicy     jetstream.AckPolicy
	AckWait       time.Duration
	MaxDeliver    int
	ReplayPolicy  jetstream.ReplayPolicy
	RateLimitBps  uint64
	MaxAckPending int
}

// Client wraps a NATS connection and its JetStream context
type Client struct {
	conn      *nats.Conn
	js        jetstream.JetStream
	consumers map[string]jetstream.Consumer
	mu        sync.RWMutex
}

// NewClient connects to NATS and initializes JetStream
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name("fleetdispatch"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{
		conn:      conn,
		js:        js,
		consumers: make(map[string]jetstream.Consumer),
	}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// GetJetStream returns the JetStream context
func (c *Client) GetJetStream() jetstream.JetStream {
	return c.js
}

// IsConnected reports whether the connection is currently up
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// CreateStream creates the stream or updates it in place
func (c *Client) CreateStream(ctx context.Context, config StreamConfig) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       config.Name,
		Subjects:   config.Subjects,
		Retention:  config.Retention,
		Storage:    config.Storage,
		Replicas:   config.Replicas,
		MaxAge:     config.MaxAge,
		MaxBytes:   config.MaxBytes,
		MaxMsgs:    config.MaxMsgs,
		Discard:    config.Discard,
		Duplicates: config.Duplicates,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", config.Name, err)
	}

	logger.Info("JetStream stream ready",
		logger.String("stream", config.Name),
		logger.Strings("subjects", config.Subjects))
	return nil
}

// CreateConsumer creates or updates a durable consumer and caches the handle
func (c *Client) CreateConsumer(ctx context.Context, config ConsumerConfig) (jetstream.Consumer, error) {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, config.StreamName, jetstream.ConsumerConfig{
		Durable:       config.ConsumerName,
		FilterSubject: config.FilterSubject,
		DeliverPolicy: config.DeliverPolicy,
		AckPolicy:     config.AckPolicy,
		AckWait:       config.AckWait,
		MaxDeliver:    config.MaxDeliver,
		ReplayPolicy:  config.ReplayPolicy,
		RateLimit:     config.RateLimitBps,
		MaxAckPending: config.MaxAckPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s on %s: %w", config.ConsumerName, config.StreamName, err)
	}

	c.mu.Lock()
	c.consumers[consumerKey(config.StreamName, config.ConsumerName)] = consumer
	c.mu.Unlock()

	return consumer, nil
}

// Publish sends data to a JetStream subject and waits for the stream ack.
// A non-empty msgID lets the stream drop duplicates inside its window.
func (c *Client) Publish(ctx context.Context, subject string, data []byte, msgID string) (*jetstream.PubAck, error) {
	var opts []jetstream.PublishOpt
	if msgID != "" {
		opts = append(opts, jetstream.WithMsgID(msgID))
	}

	ack, err := c.js.Publish(ctx, subject, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return ack, nil
}

// Close drains the connection
func (c *Client) Close() {
	if c.conn == nil {
		return
	}
	if err := c.conn.Drain(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
		logger.Warn("NATS drain failed", logger.Err(err))
		c.conn.Close()
	}
}

func (c *Client) consumer(stream, name string) (jetstream.Consumer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	consumer, ok := c.consumers[consumerKey(stream, name)]
	return consumer, ok
}

func consumerKey(stream, name string) string {
	return fmt.Sprintf("%s:%s", stream, name)
}
