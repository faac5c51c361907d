package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/metrics"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	natspkg "github.com/piresc/fleetdispatch/internal/pkg/nats"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/services/rides"
)

var subjects = map[models.RideEventType]string{
	models.RideEventCreated:       constants.SubjectRideCreated,
	models.RideEventPMApproved:    constants.SubjectRidePMApproved,
	models.RideEventPMRejected:    constants.SubjectRidePMRejected,
	models.RideEventAdminApproved: constants.SubjectRideAdminApproved,
	models.RideEventAdminRejected: constants.SubjectRideAdminRejected,
	models.RideEventAssigned:      constants.SubjectRideAssigned,
	models.RideEventReassigned:    constants.SubjectRideReassigned,
	models.RideEventStarted:       constants.SubjectRideStarted,
	models.RideEventCompleted:     constants.SubjectRideCompleted,
	models.RideEventCancelled:     constants.SubjectRideCancelled,
}

// SubjectFor returns the JetStream subject of an event type
func SubjectFor(t models.RideEventType) (string, bool) {
	s, ok := subjects[t]
	return s, ok
}

// RideGW handles JetStream publishing for ride events
type RideGW struct {
	natsClient *natspkg.Client
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &RideGW{
		natsClient: client,
	}
}

// PublishRideEvent publishes a committed transition. The event ID doubles as
// the JetStream message ID so a retried publish is dropped as a duplicate.
func (g *RideGW) PublishRideEvent(ctx context.Context, event *models.RideEvent) error {
	subject, ok := SubjectFor(event.Type)
	if !ok {
		return fmt.Errorf("no subject for ride event %q", event.Type)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride event: %w", err)
	}

	err = nrpkg.WithMessageSegment(ctx, "NATS", subject, func() error {
		_, err := g.natsClient.Publish(ctx, subject, data, event.EventID.String())
		return err
	})
	metrics.RecordEventPublish(string(event.Type), err)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}
