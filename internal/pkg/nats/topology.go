package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

const (
	rideEventRetention  = 7 * 24 * time.Hour
	rideEventDedupe     = 2 * time.Minute
	rideEventStreamSize = 512 << 20

	defaultConsumerName = "ride_events_notification"
	defaultAckWait      = 30 * time.Second
	defaultMaxDeliver   = 5
	notifierAckPending  = 256
)

// RideEventsStreamConfig keeps every ride transition for a week. Publishes
// carry the event id as Nats-Msg-Id, so a retried publish inside the dedupe
// window is stored once.
func RideEventsStreamConfig() StreamConfig {
	return StreamConfig{
		Name:       constants.StreamRideEvents,
		Subjects:   []string{constants.SubjectRideAll},
		Retention:  jetstream.LimitsPolicy,
		Storage:    jetstream.FileStorage,
		Replicas:   1,
		MaxAge:     rideEventRetention,
		MaxBytes:   rideEventStreamSize,
		Discard:    jetstream.DiscardOld,
		Duplicates: rideEventDedupe,
	}
}

// NotificationConsumerConfig is the durable consumer of the notification
// worker. It starts from new events; a restarted worker resumes from its
// durable position.
func NotificationConsumerConfig(cfg models.NotificationConfig) ConsumerConfig {
	c := ConsumerConfig{
		StreamName:    constants.StreamRideEvents,
		ConsumerName:  cfg.ConsumerName,
		FilterSubject: constants.SubjectRideAll,
		DeliverPolicy: jetstream.DeliverNewPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       cfg.AckWait,
		MaxDeliver:    cfg.MaxDeliver,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
		MaxAckPending: notifierAckPending,
	}
	if c.ConsumerName == "" {
		c.ConsumerName = defaultConsumerName
	}
	if c.AckWait <= 0 {
		c.AckWait = defaultAckWait
	}
	if c.MaxDeliver <= 0 {
		c.MaxDeliver = defaultMaxDeliver
	}
	return c
}
