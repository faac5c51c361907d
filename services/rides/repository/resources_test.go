package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/rides"
	"github.com/piresc/fleetdispatch/services/rides/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignAndReleaseDriver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	driverID, rideID, vehicleID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET status = $2, current_ride_id = $3, assigned_vehicle_id = $4")).
		WithArgs(driverID, "busy", rideID, vehicleID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("current_ride_id = NULL, assigned_vehicle_id = NULL")).
		WithArgs(driverID, "available").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AssignDriver(context.Background(), driverID, rideID, vehicleID))
	require.NoError(t, repo.ReleaseDriver(context.Background(), driverID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseVehicle_KeepsMaintenance(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	vehicleID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("status = CASE WHEN status = $2 THEN status ELSE $3 END")).
		WithArgs(vehicleID, "maintenance", "available").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.ReleaseVehicle(context.Background(), vehicleID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddStats_MissingRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("total_mileage = total_mileage + $2")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("total_distance = total_distance + $2")).
		WithArgs(sqlmock.AnyArg(), 45.0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.AddVehicleMileage(context.Background(), uuid.New(), 45), rides.ErrVehicleNotFound)
	assert.ErrorIs(t, repo.AddUserStats(context.Background(), uuid.New(), 45), rides.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "status", "is_active"}).
			AddRow(id.String(), "Nimal", "driver", "available", true))

	user, err := repo.LockUser(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, models.RoleDriver, user.Role)
	require.NotNil(t, user.Status)
	assert.Equal(t, models.DriverStatusAvailable, *user.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVehicle_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicles WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetVehicle(context.Background(), uuid.New())

	assert.ErrorIs(t, err, rides.ErrVehicleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
