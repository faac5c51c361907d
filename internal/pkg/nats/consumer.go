package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
)

// JetStreamMessageHandler processes one JetStream message. A nil return acks
// the message, an error naks it for redelivery.
type JetStreamMessageHandler func(msg jetstream.Msg) error

// Consumer pushes messages of a durable JetStream consumer to a handler
type Consumer struct {
	consumer   jetstream.Consumer
	consumeCtx jetstream.ConsumeContext
	ctx        context.Context
	cancelFunc context.CancelFunc
	name       string
}

// NewJetStreamConsumer creates the durable consumer if needed and starts consuming
func NewJetStreamConsumer(ctx context.Context, client *Client, config ConsumerConfig, handler JetStreamMessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	consumer, ok := client.consumer(config.StreamName, config.ConsumerName)
	if !ok {
		var err error
		consumer, err = client.CreateConsumer(ctx, config)
		if err != nil {
			return nil, err
		}
	}

	consumeCtx, cancel := context.WithCancel(context.Background())
	c := &Consumer{
		consumer:   consumer,
		ctx:        consumeCtx,
		cancelFunc: cancel,
		name:       config.ConsumerName,
	}

	if err := c.startConsuming(handler); err != nil {
		cancel()
		return nil, err
	}
	return c, nil
}

func (c *Consumer) startConsuming(handler JetStreamMessageHandler) error {
	consumeCtx, err := c.consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("consumer", c.name),
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.consumeCtx = consumeCtx

	go func() {
		<-c.ctx.Done()
		consumeCtx.Stop()
	}()

	return nil
}

// Pending returns the number of messages not yet delivered to this consumer
func (c *Consumer) Pending(ctx context.Context) (uint64, error) {
	info, err := c.consumer.Info(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get consumer info: %w", err)
	}
	return info.NumPending, nil
}

// IsActive reports whether the consumer is still receiving messages
func (c *Consumer) IsActive() bool {
	return c.consumeCtx != nil && c.ctx.Err() == nil
}

// Stop stops message delivery
func (c *Consumer) Stop() {
	logger.Info("Stopping consumer", logger.String("consumer", c.name))
	c.cancelFunc()
}
