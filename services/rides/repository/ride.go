package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/fleetdispatch/internal/pkg/database"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/rides"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
)

const uniqueViolation = "23505"

const rideColumns = `
	r.id, r.ride_code, r.requester_id, r.requester_role, r.ride_type,
	r.pickup_address AS "pickup.address",
	r.pickup_lat AS "pickup.coordinates.lat",
	r.pickup_lng AS "pickup.coordinates.lng",
	r.destination_address AS "destination.address",
	r.destination_lat AS "destination.coordinates.lat",
	r.destination_lng AS "destination.coordinates.lng",
	r.distance, r.calculated_distance, r.scheduled_date, r.scheduled_time,
	r.status, r.requires_pm_approval, r.is_pm_approved, r.is_admin_approved,
	r.assigned_driver_id, r.assigned_vehicle_id, r.previous_driver_id, r.previous_vehicle_id,
	r.start_mileage, r.end_mileage, r.actual_distance, r.start_time, r.end_time,
	r.pm_approved_by AS "pm.approved_by",
	r.pm_approved_at AS "pm.approved_at",
	r.pm_note AS "pm.note",
	r.admin_approved_by AS "admin.approved_by",
	r.admin_approved_at AS "admin.approved_at",
	r.admin_note AS "admin.note",
	r.rejected_by AS "rejection.rejected_by",
	r.rejection_role AS "rejection.role",
	r.rejected_at AS "rejection.rejected_at",
	r.rejection_reason AS "rejection.reason",
	r.notes, r.created_at, r.updated_at`

// RideRepo is the postgres implementation of rides.RideRepo
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	tx  *database.TxManager
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	logger.Info("Initializing ride repository")
	return &RideRepo{
		cfg: cfg,
		db:  db,
		tx:  database.NewTxManager(db),
	}
}

// RunInTx runs fn inside a database transaction
func (r *RideRepo) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.tx.Do(ctx, fn)
}

// CreateRide inserts a new ride. A taken ride code yields rides.ErrDuplicateRideCode
// without aborting the surrounding transaction.
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			id, ride_code, requester_id, requester_role, ride_type,
			pickup_address, pickup_lat, pickup_lng,
			destination_address, destination_lat, destination_lng,
			distance, calculated_distance, scheduled_date, scheduled_time,
			status, requires_pm_approval, is_pm_approved, is_admin_approved,
			pm_approved_by, pm_approved_at, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		ON CONFLICT (ride_code) DO NOTHING`

	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		ride.ID,
		ride.RideCode,
		ride.RequesterID,
		ride.RequesterRole,
		ride.RideType,
		ride.PickupLocation.Address,
		ride.PickupLocation.Coordinates.Lat,
		ride.PickupLocation.Coordinates.Lng,
		ride.DestinationLocation.Address,
		ride.DestinationLocation.Coordinates.Lat,
		ride.DestinationLocation.Coordinates.Lng,
		ride.Distance,
		ride.CalculatedDistance,
		ride.ScheduledDate,
		ride.ScheduledTime,
		ride.Status,
		ride.RequiresPMApproval,
		ride.IsPMApproved,
		ride.IsAdminApproved,
		ride.PMApproval.ApprovedBy,
		ride.PMApproval.ApprovedAt,
		ride.Notes,
		ride.CreatedAt,
		ride.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && strings.Contains(pgErr.ConstraintName, "ride_code") {
			return rides.ErrDuplicateRideCode
		}
		return fmt.Errorf("failed to create ride: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	if n == 0 {
		return rides.ErrDuplicateRideCode
	}
	return nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	return r.getRide(ctx, `SELECT`+rideColumns+` FROM rides r WHERE r.id = $1`, id)
}

// GetRideByCode retrieves a ride by its public code
func (r *RideRepo) GetRideByCode(ctx context.Context, code string) (*models.Ride, error) {
	return r.getRide(ctx, `SELECT`+rideColumns+` FROM rides r WHERE r.ride_code = $1`, strings.ToUpper(code))
}

// LockRide retrieves a ride and holds its row lock until the transaction ends
func (r *RideRepo) LockRide(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	return r.getRide(ctx, `SELECT`+rideColumns+` FROM rides r WHERE r.id = $1 FOR UPDATE`, id)
}

func (r *RideRepo) getRide(ctx context.Context, query string, arg interface{}) (*models.Ride, error) {
	var ride models.Ride
	if err := database.Conn(ctx, r.db).GetContext(ctx, &ride, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// UpdateRide writes every mutable column of ride, provided the stored status
// is still one of from.
func (r *RideRepo) UpdateRide(ctx context.Context, ride *models.Ride, from []models.RideStatus) error {
	conn := database.Conn(ctx, r.db)
	query, args, err := sqlx.In(`
		UPDATE rides SET
			status = ?, is_pm_approved = ?, is_admin_approved = ?,
			assigned_driver_id = ?, assigned_vehicle_id = ?,
			previous_driver_id = ?, previous_vehicle_id = ?,
			start_mileage = ?, end_mileage = ?, actual_distance = ?,
			start_time = ?, end_time = ?,
			pm_approved_by = ?, pm_approved_at = ?, pm_note = ?,
			admin_approved_by = ?, admin_approved_at = ?, admin_note = ?,
			rejected_by = ?, rejection_role = ?, rejected_at = ?, rejection_reason = ?,
			updated_at = ?
		WHERE id = ? AND status IN (?)`,
		ride.Status, ride.IsPMApproved, ride.IsAdminApproved,
		nullUUID(ride.AssignedDriverID), nullUUID(ride.AssignedVehicleID),
		nullUUID(ride.PreviousDriverID), nullUUID(ride.PreviousVehicleID),
		ride.StartMileage, ride.EndMileage, ride.ActualDistance,
		ride.StartTime, ride.EndTime,
		nullUUID(ride.PMApproval.ApprovedBy), ride.PMApproval.ApprovedAt, ride.PMApproval.Note,
		nullUUID(ride.AdminApproval.ApprovedBy), ride.AdminApproval.ApprovedAt, ride.AdminApproval.Note,
		nullUUID(ride.Rejection.RejectedBy), ride.Rejection.Role, ride.Rejection.RejectedAt, ride.Rejection.Reason,
		ride.UpdatedAt,
		ride.ID, from,
	)
	if err != nil {
		return fmt.Errorf("failed to build ride update: %w", err)
	}

	res, err := conn.ExecContext(ctx, conn.Rebind(query), args...)
	if err != nil {
		if conflict := slotConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to update ride: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}
	if n == 0 {
		return rides.ErrStatusChanged
	}
	return nil
}

// nullUUID unwraps an optional ID for sqlx.In, which calls Value on every
// driver.Valuer argument and would panic on a nil *uuid.UUID
func nullUUID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

// slotConflict maps a hit on the double-booking indexes to the guard the
// availability check would have returned
func slotConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "driver_slot"):
		return lifecycle.ErrDriverConflict
	case strings.Contains(pgErr.ConstraintName, "vehicle_slot"):
		return lifecycle.ErrVehicleConflict
	}
	return nil
}

// ListRides returns one page of rides matching filter plus the total count
func (r *RideRepo) ListRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, int, error) {
	where, args := rideFilterClause(filter)
	conn := database.Conn(ctx, r.db)

	countQuery, countArgs, err := sqlx.In(`SELECT COUNT(*) FROM rides r`+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build ride count: %w", err)
	}
	var total int
	if err := conn.GetContext(ctx, &total, conn.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count rides: %w", err)
	}

	listArgs := append(append([]interface{}{}, args...), filter.Limit, filter.Offset())
	listQuery, listArgs, err := sqlx.In(`SELECT`+rideColumns+` FROM rides r`+where+
		` ORDER BY r.created_at DESC LIMIT ? OFFSET ?`, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build ride list: %w", err)
	}
	rides := []*models.Ride{}
	if err := conn.SelectContext(ctx, &rides, conn.Rebind(listQuery), listArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to list rides: %w", err)
	}
	return rides, total, nil
}

func rideFilterClause(f models.RideFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	switch {
	case f.PMView && f.RequesterID != nil:
		conds = append(conds, "(r.requester_id = ? OR r.requires_pm_approval OR r.status = ?)")
		args = append(args, *f.RequesterID, models.RideStatusAwaitingPM)
	case f.RequesterID != nil:
		conds = append(conds, "r.requester_id = ?")
		args = append(args, *f.RequesterID)
	}
	if f.DriverID != nil {
		conds = append(conds, "r.assigned_driver_id = ?")
		args = append(args, *f.DriverID)
	}
	if len(f.Statuses) > 0 {
		conds = append(conds, "r.status IN (?)")
		args = append(args, f.Statuses)
	}
	if f.StartDate != nil {
		conds = append(conds, "r.scheduled_date >= ?")
		args = append(args, *f.StartDate)
	}
	if f.EndDate != nil {
		conds = append(conds, "r.scheduled_date <= ?")
		args = append(args, *f.EndDate)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListRidesByStatus returns rides in statuses ordered by schedule. A non-nil
// requiresPM narrows to rides whose PM flag matches and that neither
// approver has cleared yet.
func (r *RideRepo) ListRidesByStatus(ctx context.Context, statuses []models.RideStatus, requiresPM *bool) ([]*models.Ride, error) {
	q := `SELECT` + rideColumns + ` FROM rides r WHERE r.status IN (?)`
	args := []interface{}{statuses}
	if requiresPM != nil {
		q += ` AND r.requires_pm_approval = ? AND NOT r.is_pm_approved AND NOT r.is_admin_approved`
		args = append(args, *requiresPM)
	}
	q += ` ORDER BY r.scheduled_date, r.scheduled_time, r.created_at`
	return r.selectRides(ctx, q, args...)
}

// ListDriverRides returns the rides of a driver, optionally narrowed to
// statuses and to one scheduled date.
func (r *RideRepo) ListDriverRides(ctx context.Context, driverID uuid.UUID, statuses []models.RideStatus, date *time.Time) ([]*models.Ride, error) {
	q := `SELECT` + rideColumns + ` FROM rides r WHERE r.assigned_driver_id = ?`
	args := []interface{}{driverID}
	if len(statuses) > 0 {
		q += ` AND r.status IN (?)`
		args = append(args, statuses)
	}
	if date != nil {
		q += ` AND r.scheduled_date = ?`
		args = append(args, *date)
	}
	q += ` ORDER BY r.scheduled_date, r.scheduled_time`
	return r.selectRides(ctx, q, args...)
}

func (r *RideRepo) selectRides(ctx context.Context, query string, args ...interface{}) ([]*models.Ride, error) {
	conn := database.Conn(ctx, r.db)
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build ride query: %w", err)
	}
	rides := []*models.Ride{}
	if err := conn.SelectContext(ctx, &rides, conn.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	return rides, nil
}

// CountLiveRides counts the requester's rides that still occupy a live slot
func (r *RideRepo) CountLiveRides(ctx context.Context, requesterID uuid.UUID) (int, error) {
	conn := database.Conn(ctx, r.db)
	query, args, err := sqlx.In(`SELECT COUNT(*) FROM rides WHERE requester_id = ? AND status IN (?)`,
		requesterID, models.LiveRideStatuses)
	if err != nil {
		return 0, fmt.Errorf("failed to build live ride count: %w", err)
	}
	var n int
	if err := conn.GetContext(ctx, &n, conn.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count live rides: %w", err)
	}
	return n, nil
}

// GetRideStats aggregates the requester's rides. TotalDistance sums the
// actual distance of completed rides at full precision.
func (r *RideRepo) GetRideStats(ctx context.Context, requesterID uuid.UUID) (*models.RideStats, error) {
	conn := database.Conn(ctx, r.db)
	query, args, err := sqlx.In(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = ?) AS completed,
			COUNT(*) FILTER (WHERE status IN (?)) AS live,
			COALESCE(SUM(actual_distance) FILTER (WHERE status = ?), 0) AS total_distance
		FROM rides WHERE requester_id = ?`,
		models.RideStatusCompleted, models.LiveRideStatuses, models.RideStatusCompleted, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to build ride stats: %w", err)
	}

	var row struct {
		Total         int     `db:"total"`
		Completed     int     `db:"completed"`
		Live          int     `db:"live"`
		TotalDistance float64 `db:"total_distance"`
	}
	if err := conn.GetContext(ctx, &row, conn.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get ride stats: %w", err)
	}
	return &models.RideStats{
		Total:         row.Total,
		Completed:     row.Completed,
		Live:          row.Live,
		TotalDistance: row.TotalDistance,
	}, nil
}

func resourceColumn(resource models.Resource) (string, error) {
	switch resource {
	case models.ResourceDriver:
		return "assigned_driver_id", nil
	case models.ResourceVehicle:
		return "assigned_vehicle_id", nil
	}
	return "", fmt.Errorf("unknown resource %q", resource)
}

// FindConflict returns another active ride holding the resource in the same
// slot, or nil when the slot is free.
func (r *RideRepo) FindConflict(ctx context.Context, resource models.Resource, resourceID uuid.UUID, date time.Time, clock string, excludeRideID uuid.UUID) (*models.Ride, error) {
	col, err := resourceColumn(resource)
	if err != nil {
		return nil, err
	}
	conn := database.Conn(ctx, r.db)
	query, args, err := sqlx.In(`SELECT`+rideColumns+` FROM rides r
		WHERE r.`+col+` = ? AND r.scheduled_date = ? AND r.scheduled_time = ?
		AND r.status IN (?) AND r.id <> ?
		LIMIT 1`,
		resourceID, date, clock, models.ActiveRideStatuses, excludeRideID)
	if err != nil {
		return nil, fmt.Errorf("failed to build conflict query: %w", err)
	}

	var ride models.Ride
	if err := conn.GetContext(ctx, &ride, conn.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check %s conflict: %w", resource, err)
	}
	return &ride, nil
}

// CountOtherActiveRides counts active rides other than excludeRideID that hold the resource
func (r *RideRepo) CountOtherActiveRides(ctx context.Context, resource models.Resource, resourceID, excludeRideID uuid.UUID) (int, error) {
	col, err := resourceColumn(resource)
	if err != nil {
		return 0, err
	}
	conn := database.Conn(ctx, r.db)
	query, args, err := sqlx.In(`SELECT COUNT(*) FROM rides WHERE `+col+` = ? AND status IN (?) AND id <> ?`,
		resourceID, models.ActiveRideStatuses, excludeRideID)
	if err != nil {
		return 0, fmt.Errorf("failed to build active ride count: %w", err)
	}
	var n int
	if err := conn.GetContext(ctx, &n, conn.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count active rides: %w", err)
	}
	return n, nil
}

// BusyResources lists the drivers or vehicles held by active rides in a slot
func (r *RideRepo) BusyResources(ctx context.Context, resource models.Resource, date time.Time, clock string, excludeRideID *uuid.UUID) ([]uuid.UUID, error) {
	col, err := resourceColumn(resource)
	if err != nil {
		return nil, err
	}
	q := `SELECT DISTINCT ` + col + ` FROM rides
		WHERE scheduled_date = ? AND scheduled_time = ? AND status IN (?) AND ` + col + ` IS NOT NULL`
	args := []interface{}{date, clock, models.ActiveRideStatuses}
	if excludeRideID != nil {
		q += ` AND id <> ?`
		args = append(args, *excludeRideID)
	}

	conn := database.Conn(ctx, r.db)
	query, args, err := sqlx.In(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build busy resource query: %w", err)
	}
	ids := []uuid.UUID{}
	if err := conn.SelectContext(ctx, &ids, conn.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list busy %ss: %w", resource, err)
	}
	return ids, nil
}
