package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/database"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/tracking"
)

const (
	// PositionTTL bounds how long a vehicle that stopped reporting stays visible
	PositionTTL = 24 * time.Hour

	geohashPrecision = 9
)

type trackingRepo struct {
	redisClient *database.RedisClient
}

// NewTrackingRepository creates a redis backed tracking repository
func NewTrackingRepository(redisClient *database.RedisClient) tracking.TrackingRepo {
	return &trackingRepo{
		redisClient: redisClient,
	}
}

// SaveSnapshot stores the whole feed without expiry so it can be served
// stale when the upstream is down.
func (r *trackingRepo) SaveSnapshot(ctx context.Context, snapshot *models.TrackingSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode tracking snapshot: %w", err)
	}
	if err := r.redisClient.Set(ctx, constants.KeyTrackingSnapshot, data, 0); err != nil {
		return fmt.Errorf("failed to store tracking snapshot: %w", err)
	}
	return nil
}

// GetSnapshot loads the cached feed
func (r *trackingRepo) GetSnapshot(ctx context.Context) (*models.TrackingSnapshot, error) {
	raw, err := r.redisClient.Get(ctx, constants.KeyTrackingSnapshot)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tracking snapshot: %w", err)
	}

	var snapshot models.TrackingSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode tracking snapshot: %w", err)
	}
	return &snapshot, nil
}

// IndexPositions writes one hash per vehicle, keyed by normalized number, and
// adds each fix to the geo set.
func (r *trackingRepo) IndexPositions(ctx context.Context, positions []models.VehiclePosition) error {
	for _, p := range positions {
		number := utils.NormalizeVehicleNumber(p.VehicleNumber)
		if number == "" || !utils.ValidCoordinates(p.Latitude, p.Longitude) {
			continue
		}
		hash := p.Geohash
		if hash == "" {
			hash = utils.EncodeLocation(utils.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}, geohashPrecision)
		}

		key := fmt.Sprintf(constants.KeyVehiclePosition, number)
		fields := map[string]interface{}{
			constants.FieldLatitude:  strconv.FormatFloat(p.Latitude, 'f', -1, 64),
			constants.FieldLongitude: strconv.FormatFloat(p.Longitude, 'f', -1, 64),
			constants.FieldSpeed:     strconv.FormatFloat(p.Speed, 'f', -1, 64),
			constants.FieldGeohash:   hash,
			constants.FieldTimestamp: strconv.FormatInt(p.ReportedAt.Unix(), 10),
		}
		if err := r.redisClient.HSet(ctx, key, fields, PositionTTL); err != nil {
			return fmt.Errorf("failed to store position of %s: %w", number, err)
		}
		if err := r.redisClient.GeoAdd(ctx, constants.KeyVehicleGeo, p.Longitude, p.Latitude, number); err != nil {
			return fmt.Errorf("failed to index position of %s: %w", number, err)
		}
	}
	return nil
}

// GetPosition reads the last indexed fix of a vehicle
func (r *trackingRepo) GetPosition(ctx context.Context, vehicleNumber string) (*models.VehiclePosition, error) {
	number := utils.NormalizeVehicleNumber(vehicleNumber)
	values, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyVehiclePosition, number))
	if err != nil {
		return nil, fmt.Errorf("failed to get position data: %w", err)
	}
	if len(values) == 0 {
		return nil, tracking.ErrPositionNotFound
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	speed, _ := strconv.ParseFloat(values[constants.FieldSpeed], 64)
	ts, err := strconv.ParseInt(values[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.VehiclePosition{
		VehicleNumber: number,
		Latitude:      lat,
		Longitude:     lng,
		Speed:         speed,
		Geohash:       values[constants.FieldGeohash],
		ReportedAt:    time.Unix(ts, 0).UTC(),
	}, nil
}

// NearbyVehicles reads the geo index. Members whose position hash has
// expired are skipped since they stopped reporting.
func (r *trackingRepo) NearbyVehicles(ctx context.Context, q models.NearbyQuery) ([]models.NearbyVehicle, error) {
	found, err := r.redisClient.GeoRadius(ctx, constants.KeyVehicleGeo, q.Longitude, q.Latitude, q.RadiusKm, "km", q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle index: %w", err)
	}

	out := make([]models.NearbyVehicle, 0, len(found))
	for _, loc := range found {
		exists, err := r.redisClient.GetClient().Exists(ctx, fmt.Sprintf(constants.KeyVehiclePosition, loc.Name)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check vehicle position: %w", err)
		}
		if exists == 0 {
			continue
		}
		out = append(out, models.NearbyVehicle{
			VehicleNumber: loc.Name,
			Latitude:      loc.Latitude,
			Longitude:     loc.Longitude,
			DistanceKm:    utils.Round1(loc.Dist),
		})
	}
	return out, nil
}
