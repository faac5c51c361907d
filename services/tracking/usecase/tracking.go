package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/metrics"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/tracking"
)

// tracking fetch sources
const (
	sourceCache    = "cache"
	sourceUpstream = "upstream"
	sourceStale    = "stale"
)

// nearby search bounds
const (
	defaultNearbyRadiusKm = 5
	maxNearbyRadiusKm     = 50
	defaultNearbyLimit    = 10
	maxNearbyLimit        = 50
)

type trackingUC struct {
	cfg   models.TrackingConfig
	repo  tracking.TrackingRepo
	gw    tracking.TrackingGW
	rides tracking.RideLocator
	now   func() time.Time

	// serialises refreshes so a burst of requests hits the monitor once
	mu sync.Mutex
}

// NewTrackingUC creates the tracking use case
func NewTrackingUC(cfg *models.Config, repo tracking.TrackingRepo, gw tracking.TrackingGW, rides tracking.RideLocator) tracking.TrackingUC {
	return newTrackingUC(cfg.Tracking, repo, gw, rides, time.Now)
}

func newTrackingUC(cfg models.TrackingConfig, repo tracking.TrackingRepo, gw tracking.TrackingGW, rides tracking.RideLocator, now func() time.Time) *trackingUC {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Second
	}
	if cfg.DefaultSpeed <= 0 {
		cfg.DefaultSpeed = 30
	}
	return &trackingUC{cfg: cfg, repo: repo, gw: gw, rides: rides, now: now}
}

// Snapshot returns the fleet feed, refreshing it from the monitor once the
// cached copy is older than the cache TTL. When the monitor fails the last
// cached copy is returned flagged as stale.
func (uc *trackingUC) Snapshot(ctx context.Context) (*models.TrackingSnapshot, error) {
	if snap, ok := uc.fresh(ctx); ok {
		metrics.TrackingFetches.WithLabelValues(sourceCache).Inc()
		return snap, nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// another request may have refreshed while we waited
	cached, err := uc.repo.GetSnapshot(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read tracking cache", logger.Err(err))
	}
	if cached != nil && uc.now().Sub(cached.FetchedAt) < uc.cfg.CacheTTL {
		metrics.TrackingFetches.WithLabelValues(sourceCache).Inc()
		return cached, nil
	}

	positions, err := nrpkg.WithSegmentAndReturn(ctx, "tracking.fetch_positions", func() ([]models.VehiclePosition, error) {
		return uc.gw.FetchPositions(ctx)
	})
	if err != nil {
		if cached == nil {
			return nil, &apperror.Error{
				Kind:    apperror.KindDownstream,
				Code:    tracking.ErrTrackingDown.Code,
				Message: tracking.ErrTrackingDown.Message,
				Err:     err,
			}
		}
		logger.WarnCtx(ctx, "Tracking upstream failed, serving cached snapshot",
			logger.Duration("age", uc.now().Sub(cached.FetchedAt)),
			logger.Err(err))
		metrics.TrackingFetches.WithLabelValues(sourceStale).Inc()
		cached.Stale = true
		return cached, nil
	}
	metrics.TrackingFetches.WithLabelValues(sourceUpstream).Inc()

	for i := range positions {
		p := &positions[i]
		if utils.ValidCoordinates(p.Latitude, p.Longitude) {
			p.Geohash = utils.EncodeLocation(utils.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}, 9)
		}
	}
	snap := &models.TrackingSnapshot{Vehicles: positions, FetchedAt: uc.now()}

	// cache failures only cost a refetch next time
	if err := uc.repo.SaveSnapshot(ctx, snap); err != nil {
		logger.WarnCtx(ctx, "Failed to cache tracking snapshot", logger.Err(err))
	}
	if err := uc.repo.IndexPositions(ctx, positions); err != nil {
		logger.WarnCtx(ctx, "Failed to index vehicle positions", logger.Err(err))
	}
	return snap, nil
}

func (uc *trackingUC) fresh(ctx context.Context) (*models.TrackingSnapshot, bool) {
	snap, err := uc.repo.GetSnapshot(ctx)
	if err != nil || snap == nil {
		return nil, false
	}
	return snap, uc.now().Sub(snap.FetchedAt) < uc.cfg.CacheTTL
}

// GetVehiclePosition returns the latest fix of one vehicle by number
func (uc *trackingUC) GetVehiclePosition(ctx context.Context, vehicleNumber string) (*models.VehiclePosition, error) {
	number := utils.NormalizeVehicleNumber(vehicleNumber)
	if number == "" {
		return nil, apperror.Validation("vehicle_number_required", "Vehicle number is required")
	}

	snap, err := uc.Snapshot(ctx)
	if err != nil {
		// the per-vehicle index outlives the snapshot
		if pos, perr := uc.repo.GetPosition(ctx, number); perr == nil {
			return pos, nil
		}
		return nil, err
	}

	for i := range snap.Vehicles {
		if utils.NormalizeVehicleNumber(snap.Vehicles[i].VehicleNumber) == number {
			pos := snap.Vehicles[i]
			return &pos, nil
		}
	}

	pos, err := uc.repo.GetPosition(ctx, number)
	if err != nil {
		if errors.Is(err, tracking.ErrPositionNotFound) {
			return nil, err
		}
		return nil, apperror.Downstream("Failed to read vehicle position", err)
	}
	return pos, nil
}

// RideETA estimates when the ride's vehicle reaches the destination using
// the straight-line distance and the reported speed.
func (uc *trackingUC) RideETA(ctx context.Context, actor models.Actor, ref string) (*models.RideETA, error) {
	ride, vehicle, err := uc.rides.GetRideVehicle(ctx, actor, ref)
	if err != nil {
		return nil, err
	}

	pos, err := uc.GetVehiclePosition(ctx, vehicle.VehicleNumber)
	if err != nil {
		return nil, err
	}

	dest := ride.DestinationLocation.Coordinates
	distance := utils.Round1(utils.CalculateDistance(
		utils.GeoPoint{Latitude: pos.Latitude, Longitude: pos.Longitude},
		utils.GeoPoint{Latitude: dest.Lat, Longitude: dest.Lng},
	))
	minutes := utils.TravelMinutes(distance, pos.Speed, uc.cfg.DefaultSpeed)

	return &models.RideETA{
		RideCode:         ride.RideCode,
		VehicleNumber:    vehicle.VehicleNumber,
		Position:         *pos,
		DistanceKm:       distance,
		Minutes:          minutes,
		EstimatedArrival: uc.now().Add(time.Duration(minutes) * time.Minute),
	}, nil
}

// NearbyVehicles lists vehicles around a point from the geo index, refreshing
// the feed first when it is older than the cache TTL. A failed refresh still
// answers from the last indexed positions.
func (uc *trackingUC) NearbyVehicles(ctx context.Context, q models.NearbyQuery) ([]models.NearbyVehicle, error) {
	if !utils.ValidCoordinates(q.Latitude, q.Longitude) {
		return nil, tracking.ErrInvalidPoint
	}
	if q.RadiusKm <= 0 {
		q.RadiusKm = defaultNearbyRadiusKm
	}
	if q.RadiusKm > maxNearbyRadiusKm {
		q.RadiusKm = maxNearbyRadiusKm
	}
	if q.Limit < 1 {
		q.Limit = defaultNearbyLimit
	}
	if q.Limit > maxNearbyLimit {
		q.Limit = maxNearbyLimit
	}

	if _, err := uc.Snapshot(ctx); err != nil {
		logger.WarnCtx(ctx, "Nearby search on unrefreshed positions", logger.Err(err))
	}

	vehicles, err := uc.repo.NearbyVehicles(ctx, q)
	if err != nil {
		return nil, apperror.Downstream("Failed to search vehicle positions", err)
	}
	return vehicles, nil
}
