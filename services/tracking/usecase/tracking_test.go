package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/database"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/tracking"
	"github.com/piresc/fleetdispatch/services/tracking/mocks"
	"github.com/piresc/fleetdispatch/services/tracking/repository"
)

type fixture struct {
	gw    *mocks.MockTrackingGW
	rides *mocks.MockRideLocator
	now   time.Time
	uc    *trackingUC
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	repo := repository.NewTrackingRepository(&database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	})

	f := &fixture{
		gw:    mocks.NewMockTrackingGW(ctrl),
		rides: mocks.NewMockRideLocator(ctrl),
		now:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	cfg := models.TrackingConfig{CacheTTL: 10 * time.Second, DefaultSpeed: 30}
	f.uc = newTrackingUC(cfg, repo, f.gw, f.rides, func() time.Time { return f.now })
	return f
}

func fleet() []models.VehiclePosition {
	return []models.VehiclePosition{
		{VehicleNumber: "NB1985", Latitude: -6.2, Longitude: 106.8, Speed: 60},
		{VehicleNumber: "NB2000", Latitude: -6.25, Longitude: 106.85, Speed: 0},
	}
}

func TestSnapshot_CachesWithinTTL(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchPositions(gomock.Any()).Return(fleet(), nil).Times(1)

	first, err := f.uc.Snapshot(context.Background())
	require.NoError(t, err)
	f.now = f.now.Add(5 * time.Second)
	second, err := f.uc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Len(t, second.Vehicles, 2)
	assert.False(t, second.Stale)
	assert.True(t, first.FetchedAt.Equal(second.FetchedAt))
	assert.NotEmpty(t, second.Vehicles[0].Geohash)
}

func TestSnapshot_RefreshesAfterTTL(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchPositions(gomock.Any()).Return(fleet(), nil).Times(2)

	_, err := f.uc.Snapshot(context.Background())
	require.NoError(t, err)
	f.now = f.now.Add(11 * time.Second)
	snap, err := f.uc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.True(t, f.now.Equal(snap.FetchedAt))
}

func TestSnapshot_ServesStaleOnUpstreamFailure(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.gw.EXPECT().FetchPositions(gomock.Any()).Return(fleet(), nil),
		f.gw.EXPECT().FetchPositions(gomock.Any()).Return(nil, errors.New("HTTP error: 502")),
	)

	_, err := f.uc.Snapshot(context.Background())
	require.NoError(t, err)
	f.now = f.now.Add(time.Minute)
	snap, err := f.uc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.Stale)
	assert.Len(t, snap.Vehicles, 2)
}

func TestSnapshot_UpstreamDownWithoutCache(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchPositions(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))

	_, err := f.uc.Snapshot(context.Background())

	assert.True(t, errors.Is(err, tracking.ErrTrackingDown))
	assert.Equal(t, apperror.KindDownstream, apperror.KindOf(err))
}

func TestGetVehiclePosition_NormalizesNumber(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchPositions(gomock.Any()).Return(fleet(), nil)

	pos, err := f.uc.GetVehiclePosition(context.Background(), "nb-1985")

	require.NoError(t, err)
	assert.Equal(t, "NB1985", pos.VehicleNumber)
}

func TestGetVehiclePosition_Unknown(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchPositions(gomock.Any()).Return(fleet(), nil)

	_, err := f.uc.GetVehiclePosition(context.Background(), "XY1234")

	assert.True(t, errors.Is(err, tracking.ErrPositionNotFound))
}

func TestRideETA(t *testing.T) {
	tests := []struct {
		name        string
		vehicle     string
		wantMinutes func(distance float64) int
	}{
		{
			name:    "reported speed",
			vehicle: "NB1985",
			wantMinutes: func(d float64) int {
				return int(d/60*60 + 0.5)
			},
		},
		{
			name:    "parked vehicle uses default speed",
			vehicle: "NB2000",
			wantMinutes: func(d float64) int {
				return int(d/30*60 + 0.5)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			actor := models.Actor{UserID: uuid.New(), Role: models.RoleUser}
			ride := &models.Ride{
				RideCode: "K7M2QX",
				DestinationLocation: models.Location{
					Address:     "Plant",
					Coordinates: models.Coordinates{Lat: -6.3, Lng: 106.9},
				},
			}
			f.rides.EXPECT().GetRideVehicle(gomock.Any(), actor, "K7M2QX").
				Return(ride, &models.Vehicle{VehicleNumber: tt.vehicle}, nil)
			f.gw.EXPECT().FetchPositions(gomock.Any()).Return(fleet(), nil)

			eta, err := f.uc.RideETA(context.Background(), actor, "K7M2QX")

			require.NoError(t, err)
			assert.Greater(t, eta.DistanceKm, 0.0)
			assert.Equal(t, tt.wantMinutes(eta.DistanceKm), eta.Minutes)
			assert.Equal(t, f.now.Add(time.Duration(eta.Minutes)*time.Minute), eta.EstimatedArrival)
		})
	}
}

func TestRideETA_NoVehicle(t *testing.T) {
	f := newFixture(t)
	noVehicle := apperror.Guard("no_vehicle", "Ride has no assigned vehicle")
	f.rides.EXPECT().GetRideVehicle(gomock.Any(), gomock.Any(), "K7M2QX").Return(nil, nil, noVehicle)

	_, err := f.uc.RideETA(context.Background(), models.Actor{}, "K7M2QX")

	assert.Equal(t, apperror.KindGuard, apperror.KindOf(err))
}

func TestNearbyVehicles(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchPositions(gomock.Any()).Return(fleet(), nil)

	got, err := f.uc.NearbyVehicles(context.Background(), models.NearbyQuery{Latitude: -6.2, Longitude: 106.8})

	require.NoError(t, err)
	require.Len(t, got, 1, "default radius leaves out the vehicle about 8 km away")
	assert.Equal(t, "NB1985", got[0].VehicleNumber)
}

func TestNearbyVehicles_WiderRadius(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchPositions(gomock.Any()).Return(fleet(), nil)

	got, err := f.uc.NearbyVehicles(context.Background(), models.NearbyQuery{Latitude: -6.2, Longitude: 106.8, RadiusKm: 20, Limit: 1})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "NB1985", got[0].VehicleNumber)
}

func TestNearbyVehicles_UpstreamDownStillAnswers(t *testing.T) {
	f := newFixture(t)
	f.gw.EXPECT().FetchPositions(gomock.Any()).Return(nil, errors.New("timeout"))

	got, err := f.uc.NearbyVehicles(context.Background(), models.NearbyQuery{Latitude: -6.2, Longitude: 106.8})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNearbyVehicles_InvalidPoint(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.NearbyVehicles(context.Background(), models.NearbyQuery{Latitude: 95, Longitude: 10})

	assert.ErrorIs(t, err, tracking.ErrInvalidPoint)
}
