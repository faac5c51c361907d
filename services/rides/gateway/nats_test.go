package gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	natspkg "github.com/piresc/fleetdispatch/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJetStreamClient(t *testing.T) *natspkg.Client {
	t.Helper()
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)

	client, err := natspkg.NewClient(srv.ClientURL())
	require.NoError(t, err, "Failed to connect to NATS server")
	t.Cleanup(client.Close)

	require.NoError(t, client.CreateStream(context.Background(), natspkg.RideEventsStreamConfig()))
	return client
}

func TestSubjectFor_CoversEveryEvent(t *testing.T) {
	for _, eventType := range []models.RideEventType{
		models.RideEventCreated, models.RideEventPMApproved, models.RideEventPMRejected,
		models.RideEventAdminApproved, models.RideEventAdminRejected, models.RideEventAssigned,
		models.RideEventReassigned, models.RideEventStarted, models.RideEventCompleted,
		models.RideEventCancelled,
	} {
		subject, ok := SubjectFor(eventType)
		assert.True(t, ok, eventType)
		assert.Regexp(t, `^ride\.`, subject)
	}
}

func TestPublishRideEvent_Success(t *testing.T) {
	client := newJetStreamClient(t)
	ctx := context.Background()
	gw := NewRideGW(client)

	event := &models.RideEvent{
		EventID:            uuid.New(),
		Type:               models.RideEventAssigned,
		RideID:             uuid.New(),
		RideCode:           "AB12CD",
		Status:             models.RideStatusAssigned,
		RequesterID:        uuid.New(),
		CalculatedDistance: 18,
		OccurredAt:         time.Now().UTC(),
	}

	require.NoError(t, gw.PublishRideEvent(ctx, event))
	// same event id is dropped by the stream's duplicate window
	require.NoError(t, gw.PublishRideEvent(ctx, event))

	stream, err := client.GetJetStream().Stream(ctx, constants.StreamRideEvents)
	require.NoError(t, err)
	msg, err := stream.GetLastMsgForSubject(ctx, constants.SubjectRideAssigned)
	require.NoError(t, err)

	var got models.RideEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, event.EventID, got.EventID)
	assert.Equal(t, "AB12CD", got.RideCode)
	assert.Equal(t, event.EventID.String(), msg.Header.Get(jetstream.MsgIDHeader))

	info, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.State.Msgs)
}

func TestPublishRideEvent_UnknownType(t *testing.T) {
	gw := NewRideGW(nil)

	err := gw.PublishRideEvent(context.Background(), &models.RideEvent{Type: "ride_teleported"})

	assert.Error(t, err)
}

func TestPublishRideEvent_ServerGone(t *testing.T) {
	client := newJetStreamClient(t)
	gw := NewRideGW(client)
	client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := gw.PublishRideEvent(ctx, &models.RideEvent{EventID: uuid.New(), Type: models.RideEventCreated})

	assert.Error(t, err)
}
