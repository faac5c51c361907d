package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/database"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/rides"
)

const userColumns = `id, name, email, phone, password_hash, role, status, assigned_vehicle_id,
	current_ride_id, total_rides, total_distance, is_hardcoded, is_active, created_at, updated_at`

const vehicleColumns = `id, vehicle_number, type, status, current_driver_id, current_ride_id,
	total_mileage, monthly_mileage, last_mileage_reset, total_rides, is_active, created_at, updated_at`

// LockUser retrieves a user and holds its row lock until the transaction ends
func (r *RideRepo) LockUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := database.Conn(ctx, r.db).GetContext(ctx, &user,
		`SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListDrivers returns all active drivers ordered by name
func (r *RideRepo) ListDrivers(ctx context.Context) ([]*models.User, error) {
	drivers := []*models.User{}
	err := database.Conn(ctx, r.db).SelectContext(ctx, &drivers,
		`SELECT `+userColumns+` FROM users WHERE role = $1 AND is_active ORDER BY name`, models.RoleDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// AssignDriver marks the driver busy on rideID with vehicleID
func (r *RideRepo) AssignDriver(ctx context.Context, driverID, rideID, vehicleID uuid.UUID) error {
	return r.execOne(ctx, rides.ErrUserNotFound, `
		UPDATE users SET status = $2, current_ride_id = $3, assigned_vehicle_id = $4, updated_at = NOW()
		WHERE id = $1`, driverID, models.DriverStatusBusy, rideID, vehicleID)
}

// ReleaseDriver makes the driver available and clears its ride links
func (r *RideRepo) ReleaseDriver(ctx context.Context, driverID uuid.UUID) error {
	return r.execOne(ctx, rides.ErrUserNotFound, `
		UPDATE users SET status = $2, current_ride_id = NULL, assigned_vehicle_id = NULL, updated_at = NOW()
		WHERE id = $1`, driverID, models.DriverStatusAvailable)
}

// AddUserStats adds one ride and distance to a user's running totals
func (r *RideRepo) AddUserStats(ctx context.Context, userID uuid.UUID, distance float64) error {
	return r.execOne(ctx, rides.ErrUserNotFound, `
		UPDATE users SET total_rides = total_rides + 1, total_distance = total_distance + $2, updated_at = NOW()
		WHERE id = $1`, userID, distance)
}

// GetVehicle retrieves a vehicle by ID
func (r *RideRepo) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return r.getVehicle(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
}

// LockVehicle retrieves a vehicle and holds its row lock until the transaction ends
func (r *RideRepo) LockVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return r.getVehicle(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1 FOR UPDATE`, id)
}

func (r *RideRepo) getVehicle(ctx context.Context, query string, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := database.Conn(ctx, r.db).GetContext(ctx, &vehicle, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

// ListActiveVehicles returns vehicles that have not been retired
func (r *RideRepo) ListActiveVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	vehicles := []*models.Vehicle{}
	err := database.Conn(ctx, r.db).SelectContext(ctx, &vehicles,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE is_active ORDER BY vehicle_number`)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// AssignVehicle marks the vehicle busy with driverID on rideID
func (r *RideRepo) AssignVehicle(ctx context.Context, vehicleID, driverID, rideID uuid.UUID) error {
	return r.execOne(ctx, rides.ErrVehicleNotFound, `
		UPDATE vehicles SET status = $2, current_driver_id = $3, current_ride_id = $4, updated_at = NOW()
		WHERE id = $1`, vehicleID, models.VehicleStatusBusy, driverID, rideID)
}

// ReleaseVehicle clears the vehicle's ride links. A vehicle in maintenance
// stays in maintenance.
func (r *RideRepo) ReleaseVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	return r.execOne(ctx, rides.ErrVehicleNotFound, `
		UPDATE vehicles SET
			status = CASE WHEN status = $2 THEN status ELSE $3 END,
			current_driver_id = NULL, current_ride_id = NULL, updated_at = NOW()
		WHERE id = $1`, vehicleID, models.VehicleStatusMaintenance, models.VehicleStatusAvailable)
}

// AddVehicleMileage adds distance to the total and monthly odometers and counts one ride
func (r *RideRepo) AddVehicleMileage(ctx context.Context, vehicleID uuid.UUID, distance float64) error {
	return r.execOne(ctx, rides.ErrVehicleNotFound, `
		UPDATE vehicles SET
			total_mileage = total_mileage + $2,
			monthly_mileage = monthly_mileage + $2,
			total_rides = total_rides + 1,
			updated_at = NOW()
		WHERE id = $1`, vehicleID, distance)
}

func (r *RideRepo) execOne(ctx context.Context, notFound error, query string, args ...interface{}) error {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
