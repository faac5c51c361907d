package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/fleetdispatch/internal/pkg/database"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/reports"
)

const reportRideColumns = `
	r.id, r.ride_code, r.requester_id,
	u.name AS requester_name, u.email AS requester_email,
	d.name AS driver_name, v.vehicle_number,
	r.ride_type, r.pickup_address, r.destination_address,
	r.calculated_distance, r.actual_distance, r.scheduled_date, r.scheduled_time,
	r.status, r.requires_pm_approval, r.created_at, r.end_time`

const reportRideJoins = `
	FROM rides r
	JOIN users u ON u.id = r.requester_id
	LEFT JOIN users d ON d.id = r.assigned_driver_id
	LEFT JOIN vehicles v ON v.id = r.assigned_vehicle_id`

type reportRepo struct {
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewReportRepository creates a report repository reading postgres and
// caching dashboards in redis
func NewReportRepository(db *sqlx.DB, cache *database.RedisClient) reports.ReportRepo {
	logger.Info("Initializing report repository")
	return &reportRepo{
		db:    db,
		cache: cache,
	}
}

// DashboardStats counts rides, drivers and vehicles in one round trip
func (r *reportRepo) DashboardStats(ctx context.Context, dayStart, dayEnd time.Time) (*models.DashboardStats, error) {
	query, args, err := sqlx.In(`
		SELECT
			(SELECT COUNT(*) FROM rides WHERE status IN (?)) AS pending_approvals,
			(SELECT COUNT(*) FROM rides WHERE status = ?) AS live_rides,
			(SELECT COUNT(*) FROM rides WHERE status IN (?)) AS active_rides,
			(SELECT COUNT(*) FROM rides WHERE status = ? AND end_time >= ? AND end_time < ?) AS completed_today,
			(SELECT COUNT(*) FROM users WHERE role = ? AND is_active) AS "drivers.total",
			(SELECT COUNT(*) FROM users WHERE role = ? AND is_active AND status = ?) AS "drivers.available",
			(SELECT COUNT(*) FROM vehicles WHERE is_active) AS "vehicles.total",
			(SELECT COUNT(*) FROM vehicles WHERE is_active AND status = ?) AS "vehicles.available",
			(SELECT COUNT(*) FROM vehicles WHERE is_active AND status <> ?) AS "vehicles.in_service",
			(SELECT COALESCE(SUM(monthly_mileage), 0) FROM vehicles WHERE is_active) AS monthly_mileage`,
		models.AwaitingApprovalStatuses,
		models.RideStatusInProgress,
		models.ActiveRideStatuses,
		models.RideStatusCompleted, dayStart, dayEnd,
		models.RoleDriver,
		models.RoleDriver, models.DriverStatusAvailable,
		models.VehicleStatusAvailable,
		models.VehicleStatusMaintenance,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard query: %w", err)
	}

	var stats models.DashboardStats
	if err := r.db.GetContext(ctx, &stats, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	return &stats, nil
}

// PMDashboard counts the long rides waiting on a PM and the PM's own approvals
func (r *reportRepo) PMDashboard(ctx context.Context, pmID uuid.UUID, dayStart, dayEnd time.Time) (*models.PMDashboard, error) {
	query, args, err := sqlx.In(`
		SELECT
			COUNT(*) FILTER (WHERE status IN (?) AND requires_pm_approval AND NOT is_pm_approved) AS awaiting_pm,
			COUNT(*) FILTER (WHERE pm_approved_by = ? AND pm_approved_at >= ? AND pm_approved_at < ?) AS approved_today,
			COUNT(*) FILTER (WHERE requires_pm_approval) AS long_distance_rides,
			COUNT(*) FILTER (WHERE pm_approved_by = ?) AS total_processed
		FROM rides`,
		models.AwaitingApprovalStatuses,
		pmID, dayStart, dayEnd,
		pmID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build PM dashboard query: %w", err)
	}

	var stats models.PMDashboard
	if err := r.db.GetContext(ctx, &stats, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load PM dashboard: %w", err)
	}
	return &stats, nil
}

// ListReportRides returns rides newest first, or by completion time when a
// completed range is set. The total is only counted for paged listings.
func (r *reportRepo) ListReportRides(ctx context.Context, filter models.ReportRideFilter) ([]*models.ReportRide, int, error) {
	where, args := reportRideFilterClause(filter)

	order := ` ORDER BY r.created_at DESC`
	if filter.CompletedFrom != nil || filter.CompletedTo != nil {
		order = ` ORDER BY r.end_time DESC`
	}

	q := `SELECT` + reportRideColumns + reportRideJoins + where + order
	listArgs := append([]interface{}{}, args...)
	if filter.Limit > 0 {
		q += ` LIMIT ? OFFSET ?`
		listArgs = append(listArgs, filter.Limit, filter.Offset())
	}

	query, listArgs, err := sqlx.In(q, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build report rides query: %w", err)
	}
	rides := []*models.ReportRide{}
	if err := r.db.SelectContext(ctx, &rides, r.db.Rebind(query), listArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to list report rides: %w", err)
	}
	if filter.Limit <= 0 {
		return rides, len(rides), nil
	}

	countQuery, countArgs, err := sqlx.In(`SELECT COUNT(*) FROM rides r`+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build report rides count: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count report rides: %w", err)
	}
	return rides, total, nil
}

func reportRideFilterClause(f models.ReportRideFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	add := func(cond string, arg interface{}) {
		conds = append(conds, cond)
		args = append(args, arg)
	}

	if f.CreatedFrom != nil {
		add("r.created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		add("r.created_at < ?", *f.CreatedTo)
	}
	if f.CompletedFrom != nil || f.CompletedTo != nil {
		add("r.status = ?", models.RideStatusCompleted)
	}
	if f.CompletedFrom != nil {
		add("r.end_time >= ?", *f.CompletedFrom)
	}
	if f.CompletedTo != nil {
		add("r.end_time < ?", *f.CompletedTo)
	}
	if len(f.Statuses) > 0 {
		add("r.status IN (?)", f.Statuses)
	}
	if f.RequesterID != nil {
		add("r.requester_id = ?", *f.RequesterID)
	}
	if f.DriverID != nil {
		add("r.assigned_driver_id = ?", *f.DriverID)
	}
	if f.VehicleID != nil {
		add("r.assigned_vehicle_id = ?", *f.VehicleID)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// DriverPerformance aggregates every driver's completed rides in [from, to),
// busiest first
func (r *reportRepo) DriverPerformance(ctx context.Context, from, to time.Time, driverID *uuid.UUID) ([]*models.DriverPerformance, error) {
	q := `
		SELECT
			u.id AS "driver.id", u.name AS "driver.name", u.email AS "driver.email",
			u.phone AS "driver.phone", u.status AS "driver.status",
			COUNT(r.id) FILTER (WHERE r.status = ? AND r.end_time >= ? AND r.end_time < ?) AS "monthly.completed_rides",
			COALESCE(SUM(r.actual_distance) FILTER (WHERE r.status = ? AND r.end_time >= ? AND r.end_time < ?), 0) AS "monthly.total_distance",
			u.total_rides AS "overall.total_rides", u.total_distance AS "overall.total_distance",
			COUNT(r.id) FILTER (WHERE r.status IN (?)) AS active_rides
		FROM users u
		LEFT JOIN rides r ON r.assigned_driver_id = u.id
		WHERE u.role = ?`
	args := []interface{}{
		models.RideStatusCompleted, from, to,
		models.RideStatusCompleted, from, to,
		models.ActiveRideStatuses,
		models.RoleDriver,
	}
	if driverID != nil {
		q += ` AND u.id = ?`
		args = append(args, *driverID)
	}
	q += ` GROUP BY u.id ORDER BY "monthly.completed_rides" DESC, u.name`

	query, args, err := sqlx.In(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build driver performance query: %w", err)
	}
	rows := []*models.DriverPerformance{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load driver performance: %w", err)
	}
	return rows, nil
}

// VehicleUsage aggregates every active vehicle's completed rides in
// [from, to), most driven first
func (r *reportRepo) VehicleUsage(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]*models.VehicleUsage, error) {
	q := `
		SELECT
			v.id AS "vehicle.id", v.vehicle_number AS "vehicle.vehicle_number",
			v.type AS "vehicle.type", v.status AS "vehicle.status",
			COUNT(r.id) FILTER (WHERE r.status = ? AND r.end_time >= ? AND r.end_time < ?) AS "monthly.rides",
			COALESCE(SUM(r.actual_distance) FILTER (WHERE r.status = ? AND r.end_time >= ? AND r.end_time < ?), 0) AS "monthly.distance",
			v.monthly_mileage AS "monthly.recorded_mileage",
			v.total_rides AS "overall.total_rides", v.total_mileage AS "overall.total_mileage",
			COUNT(r.id) FILTER (WHERE r.status IN (?)) AS active_rides
		FROM vehicles v
		LEFT JOIN rides r ON r.assigned_vehicle_id = v.id
		WHERE v.is_active`
	args := []interface{}{
		models.RideStatusCompleted, from, to,
		models.RideStatusCompleted, from, to,
		models.ActiveRideStatuses,
	}
	if vehicleID != nil {
		q += ` AND v.id = ?`
		args = append(args, *vehicleID)
	}
	q += ` GROUP BY v.id ORDER BY "monthly.distance" DESC, v.vehicle_number`

	query, args, err := sqlx.In(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build vehicle usage query: %w", err)
	}
	rows := []*models.VehicleUsage{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load vehicle usage: %w", err)
	}
	return rows, nil
}

// GetCachedDashboard loads dashboard stats stored by CacheDashboard
func (r *reportRepo) GetCachedDashboard(ctx context.Context, key string) (*models.DashboardStats, error) {
	raw, err := r.cache.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached dashboard: %w", err)
	}

	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, fmt.Errorf("failed to decode cached dashboard: %w", err)
	}
	return &stats, nil
}

// CacheDashboard stores stats under key for ttl
func (r *reportRepo) CacheDashboard(ctx context.Context, key string, stats *models.DashboardStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}
	if err := r.cache.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to cache dashboard: %w", err)
	}
	return nil
}
