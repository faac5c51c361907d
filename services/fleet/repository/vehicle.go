package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/fleet"
)

const vehicleColumns = `id, vehicle_number, type, status, current_driver_id, current_ride_id,
	total_mileage, monthly_mileage, last_mileage_reset, total_rides, is_active, created_at, updated_at`

// VehicleRepo is the postgres implementation of fleet.VehicleRepo
type VehicleRepo struct {
	db *sqlx.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *sqlx.DB) *VehicleRepo {
	logger.Info("Initializing vehicle repository")
	return &VehicleRepo{db: db}
}

// GetVehicle retrieves an active vehicle by ID
func (r *VehicleRepo) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.GetContext(ctx, &vehicle,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1 AND is_active`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleet.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

// ListVehicles returns active vehicles matching filter ordered by number
func (r *VehicleRepo) ListVehicles(ctx context.Context, filter models.VehicleFilter) ([]*models.Vehicle, error) {
	conds := []string{"is_active"}
	var args []interface{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}

	vehicles := []*models.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY vehicle_number`
	if err := r.db.SelectContext(ctx, &vehicles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// CountVehicles groups active vehicles by status
func (r *VehicleRepo) CountVehicles(ctx context.Context) (*models.VehicleCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM vehicles WHERE is_active`

	var counts models.VehicleCounts
	err := r.db.QueryRowContext(ctx, query,
		models.VehicleStatusAvailable, models.VehicleStatusBusy, models.VehicleStatusMaintenance,
	).Scan(&counts.Total, &counts.Available, &counts.Busy, &counts.Maintenance)
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return &counts, nil
}

// NumberExists reports whether another vehicle carries number. Retired
// vehicles keep their number.
func (r *VehicleRepo) NumberExists(ctx context.Context, number string, excludeID uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.GetContext(ctx, &ok,
		`SELECT EXISTS(SELECT 1 FROM vehicles WHERE vehicle_number = $1 AND id <> $2)`,
		number, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check vehicle number: %w", err)
	}
	return ok, nil
}

// CreateVehicle inserts a new vehicle
func (r *VehicleRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if _, err := r.db.NamedExecContext(ctx, insertVehicle, vehicle); err != nil {
		if isUniqueViolation(err) {
			return fleet.ErrVehicleNumberTaken
		}
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	return nil
}

const insertVehicle = `
	INSERT INTO vehicles (id, vehicle_number, type, status, total_mileage, monthly_mileage,
		last_mileage_reset, total_rides, is_active, created_at, updated_at
	) VALUES (:id, :vehicle_number, :type, :status, :total_mileage, :monthly_mileage,
		:last_mileage_reset, :total_rides, :is_active, :created_at, :updated_at)`

// UpdateVehicle writes the number and type of vehicle
func (r *VehicleRepo) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE vehicles SET vehicle_number = :vehicle_number, type = :type, updated_at = :updated_at
		WHERE id = :id AND is_active`, vehicle)
	if err != nil {
		if isUniqueViolation(err) {
			return fleet.ErrVehicleNumberTaken
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return expectOne(res, fleet.ErrVehicleNotFound)
}

// SetVehicleStatus changes the operational status and detaches any driver and
// ride links.
func (r *VehicleRepo) SetVehicleStatus(ctx context.Context, id uuid.UUID, status models.VehicleStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vehicles SET status = $2, current_driver_id = NULL, current_ride_id = NULL, updated_at = NOW()
		WHERE id = $1 AND is_active`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update vehicle status: %w", err)
	}
	return expectOne(res, fleet.ErrVehicleNotFound)
}

// DeactivateVehicle soft deletes a vehicle
func (r *VehicleRepo) DeactivateVehicle(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate vehicle: %w", err)
	}
	return expectOne(res, fleet.ErrVehicleNotFound)
}

// CountActiveRides counts assigned and in-progress rides holding the vehicle
func (r *VehicleRepo) CountActiveRides(ctx context.Context, id uuid.UUID) (int, error) {
	query, args, err := sqlx.In(`SELECT COUNT(*) FROM rides WHERE assigned_vehicle_id = ? AND status IN (?)`,
		id, models.ActiveRideStatuses)
	if err != nil {
		return 0, fmt.Errorf("failed to build active ride count: %w", err)
	}
	var n int
	if err := r.db.GetContext(ctx, &n, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count active rides: %w", err)
	}
	return n, nil
}

// ResetMonthlyMileage zeroes every vehicle's monthly mileage and returns how many changed
func (r *VehicleRepo) ResetMonthlyMileage(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET monthly_mileage = 0, last_mileage_reset = NOW(), updated_at = NOW() WHERE is_active`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset monthly mileage: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to reset monthly mileage: %w", err)
	}
	return n, nil
}

// SeedVehicle inserts vehicle unless its number already exists
func (r *VehicleRepo) SeedVehicle(ctx context.Context, vehicle *models.Vehicle) (bool, error) {
	res, err := r.db.NamedExecContext(ctx, insertVehicle+` ON CONFLICT (vehicle_number) DO NOTHING`, vehicle)
	if err != nil {
		return false, fmt.Errorf("failed to seed vehicle %s: %w", vehicle.VehicleNumber, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to seed vehicle %s: %w", vehicle.VehicleNumber, err)
	}
	return n > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
