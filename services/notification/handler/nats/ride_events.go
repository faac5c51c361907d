package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	natspkg "github.com/piresc/fleetdispatch/internal/pkg/nats"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/internal/pkg/requestcontext"
	"github.com/piresc/fleetdispatch/services/notification"
)

// RideEventHandler consumes committed ride transitions from JetStream
type RideEventHandler struct {
	notificationUC notification.NotificationUC
	natsClient     *natspkg.Client
	cfg            models.NotificationConfig
	consumer       *natspkg.Consumer
}

// NewRideEventHandler creates a new ride event consumer
func NewRideEventHandler(uc notification.NotificationUC, client *natspkg.Client, cfg models.NotificationConfig) *RideEventHandler {
	return &RideEventHandler{
		notificationUC: uc,
		natsClient:     client,
		cfg:            cfg,
	}
}

// InitNATSConsumers makes sure the ride stream exists and starts the durable consumer
func (h *RideEventHandler) InitNATSConsumers(ctx context.Context) error {
	if err := h.natsClient.CreateStream(ctx, natspkg.RideEventsStreamConfig()); err != nil {
		return err
	}

	consumer, err := natspkg.NewJetStreamConsumer(ctx, h.natsClient,
		natspkg.NotificationConsumerConfig(h.cfg), h.handleMessage)
	if err != nil {
		return err
	}
	h.consumer = consumer

	logger.Info("Ride event consumer started", logger.String("subject", constants.SubjectRideAll))
	return nil
}

// Stop halts consumption; unacked messages are redelivered to the next consumer
func (h *RideEventHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

func (h *RideEventHandler) handleMessage(msg jetstream.Msg) error {
	ctx := context.Background()
	return nrpkg.WithMessageSegment(ctx, "NATS", msg.Subject(), func() error {
		return h.handleRideEvent(ctx, msg.Data())
	})
}

// handleRideEvent decodes and fans out one event. Undecodable payloads are
// dropped since redelivery cannot fix them.
func (h *RideEventHandler) handleRideEvent(ctx context.Context, data []byte) error {
	var event models.RideEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Error("Dropping malformed ride event", logger.Err(err))
		return nil
	}

	ctx = requestcontext.WithEventID(ctx, event.EventID.String())
	logger.InfoCtx(ctx, "Received ride event",
		logger.String("type", string(event.Type)),
		logger.String("ride_code", event.RideCode))

	return h.notificationUC.HandleRideEvent(ctx, &event)
}
