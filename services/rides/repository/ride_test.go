package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/rides"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
	"github.com/piresc/fleetdispatch/services/rides/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var rideColumnNames = []string{
	"id", "ride_code", "requester_id", "requester_role", "ride_type",
	"pickup.address", "pickup.coordinates.lat", "pickup.coordinates.lng",
	"destination.address", "destination.coordinates.lat", "destination.coordinates.lng",
	"distance", "calculated_distance", "scheduled_date", "scheduled_time",
	"status", "requires_pm_approval", "is_pm_approved", "is_admin_approved",
	"assigned_driver_id", "assigned_vehicle_id", "previous_driver_id", "previous_vehicle_id",
	"start_mileage", "end_mileage", "actual_distance", "start_time", "end_time",
	"pm.approved_by", "pm.approved_at", "pm.note",
	"admin.approved_by", "admin.approved_at", "admin.note",
	"rejection.rejected_by", "rejection.role", "rejection.rejected_at", "rejection.reason",
	"notes", "created_at", "updated_at",
}

func rideRow(rows *sqlmock.Rows, id uuid.UUID, code string, status models.RideStatus, driverID interface{}) *sqlmock.Rows {
	now := time.Date(2025, 5, 28, 10, 0, 0, 0, time.UTC)
	return rows.AddRow(
		id.String(), code, uuid.NewString(), "user", "one_way",
		"Head Office", 6.9271, 79.8612,
		"Site B", 6.9, 79.9,
		5.2, 5.2, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "09:00",
		string(status), false, false, false,
		driverID, nil, nil, nil,
		nil, nil, nil, nil, nil,
		nil, nil, nil,
		nil, nil, nil,
		nil, nil, nil, nil,
		"", now, now,
	)
}

func newRide() *models.Ride {
	now := time.Now().UTC()
	return &models.Ride{
		ID:            uuid.New(),
		RideCode:      "AB12CD",
		RequesterID:   uuid.New(),
		RequesterRole: models.RoleUser,
		RideType:      models.RideTypeOneWay,
		PickupLocation: models.Location{
			Address:     "Head Office",
			Coordinates: models.Coordinates{Lat: 6.9271, Lng: 79.8612},
		},
		DestinationLocation: models.Location{
			Address:     "Site B",
			Coordinates: models.Coordinates{Lat: 6.9, Lng: 79.9},
		},
		Distance:           5.2,
		CalculatedDistance: 5.2,
		ScheduledDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ScheduledTime:      "09:00",
		Status:             models.RideStatusAwaitingAdmin,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestCreateRide(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		assertErr func(t *testing.T, err error)
	}{
		{
			name: "inserted",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertErr: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "code taken",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertErr: func(t *testing.T, err error) { assert.ErrorIs(t, err, rides.ErrDuplicateRideCode) },
		},
		{
			name: "unique violation on ride code",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "rides_ride_code_key"})
			},
			assertErr: func(t *testing.T, err error) { assert.ErrorIs(t, err, rides.ErrDuplicateRideCode) },
		},
		{
			name: "other failure is wrapped",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
					WillReturnError(errors.New("connection reset"))
			},
			assertErr: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.NotErrorIs(t, err, rides.ErrDuplicateRideCode)
				assert.Contains(t, err.Error(), "failed to create ride")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := repository.NewRideRepository(&models.Config{}, db)
			tt.mockSetup(mock)

			err := repo.CreateRide(context.Background(), newRide())

			tt.assertErr(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetRide(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	id := uuid.New()
	driverID := uuid.New()

	mock.ExpectQuery("^SELECT (.+) FROM rides r WHERE r.id = \\$1$").
		WithArgs(id).
		WillReturnRows(rideRow(sqlmock.NewRows(rideColumnNames), id, "AB12CD", models.RideStatusAssigned, driverID.String()))

	ride, err := repo.GetRide(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, ride.ID)
	assert.Equal(t, "AB12CD", ride.RideCode)
	assert.Equal(t, "Head Office", ride.PickupLocation.Address)
	assert.Equal(t, 79.9, ride.DestinationLocation.Coordinates.Lng)
	assert.Equal(t, models.RideStatusAssigned, ride.Status)
	require.NotNil(t, ride.AssignedDriverID)
	assert.Equal(t, driverID, *ride.AssignedDriverID)
	assert.Nil(t, ride.AssignedVehicleID)
	assert.Nil(t, ride.Rejection.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRideByCode_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.ride_code = $1")).
		WithArgs("AB12CD").
		WillReturnRows(sqlmock.NewRows(rideColumnNames))

	_, err := repo.GetRideByCode(context.Background(), "ab12cd")

	assert.ErrorIs(t, err, rides.ErrRideNotFound)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockRide_UsesRowLock(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(rideRow(sqlmock.NewRows(rideColumnNames), id, "AB12CD", models.RideStatusApproved, nil))
	mock.ExpectCommit()

	err := repo.RunInTx(context.Background(), func(ctx context.Context) error {
		ride, err := repo.LockRide(ctx, id)
		if err != nil {
			return err
		}
		assert.Equal(t, models.RideStatusApproved, ride.Status)
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTx_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE vehicles SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := repo.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := repo.AddVehicleMileage(ctx, uuid.New(), 45); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRide(t *testing.T) {
	ride := newRide()
	ride.Status = models.RideStatusApproved

	t.Run("applies when status matches", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewRideRepository(&models.Config{}, db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateRide(context.Background(), ride, models.AwaitingApprovalStatuses)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale status", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewRideRepository(&models.Config{}, db)

		mock.ExpectExec(regexp.QuoteMeta("WHERE id = ? AND status IN (?, ?)")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRide(context.Background(), ride, models.AwaitingApprovalStatuses)

		assert.ErrorIs(t, err, rides.ErrStatusChanged)
		assert.Equal(t, apperror.KindGuard, apperror.KindOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("double booking index", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewRideRepository(&models.Config{}, db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "rides_vehicle_slot_key"})

		err := repo.UpdateRide(context.Background(), ride, models.AwaitingApprovalStatuses)

		assert.ErrorIs(t, err, lifecycle.ErrVehicleConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListRides_FiltersAndPaginates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	requester := uuid.New()

	filter := models.RideFilter{
		RequesterID: &requester,
		Statuses:    []models.RideStatus{models.RideStatusApproved, models.RideStatusAssigned},
		Page:        2,
		Limit:       10,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rides r WHERE r.requester_id = ? AND r.status IN (?, ?)")).
		WithArgs(requester, "approved", "assigned").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY r.created_at DESC LIMIT ? OFFSET ?")).
		WithArgs(requester, "approved", "assigned", 10, 10).
		WillReturnRows(rideRow(sqlmock.NewRows(rideColumnNames), uuid.New(), "ZZ99ZZ", models.RideStatusApproved, nil))

	rides, total, err := repo.ListRides(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 11, total)
	assert.Len(t, rides, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRides_PMView(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	pm := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("(r.requester_id = ? OR r.requires_pm_approval OR r.status = ?)")).
		WithArgs(pm, "awaiting_pm").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY r.created_at DESC")).
		WillReturnRows(sqlmock.NewRows(rideColumnNames))

	rides, total, err := repo.ListRides(context.Background(), models.RideFilter{RequesterID: &pm, PMView: true, Limit: 10})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rides)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindConflict(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	driverID := uuid.New()
	rideID := uuid.New()

	t.Run("slot free", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewRideRepository(&models.Config{}, db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE r.assigned_driver_id = ? AND r.scheduled_date = ? AND r.scheduled_time = ?")).
			WithArgs(driverID, date, "09:00", "assigned", "in_progress", rideID).
			WillReturnRows(sqlmock.NewRows(rideColumnNames))

		conflict, err := repo.FindConflict(context.Background(), models.ResourceDriver, driverID, date, "09:00", rideID)

		assert.NoError(t, err)
		assert.Nil(t, conflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("slot taken", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewRideRepository(&models.Config{}, db)
		other := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("WHERE r.assigned_vehicle_id = ?")).
			WillReturnRows(rideRow(sqlmock.NewRows(rideColumnNames), other, "R1CODE", models.RideStatusAssigned, driverID.String()))

		conflict, err := repo.FindConflict(context.Background(), models.ResourceVehicle, uuid.New(), date, "09:00", rideID)

		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, "R1CODE", conflict.RideCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown resource", func(t *testing.T) {
		db, _ := setupMockDB(t)
		repo := repository.NewRideRepository(&models.Config{}, db)

		_, err := repo.FindConflict(context.Background(), "helicopter", uuid.New(), date, "09:00", rideID)

		assert.Error(t, err)
	})
}

func TestCountOtherActiveRides(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	driverID, rideID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rides WHERE assigned_driver_id = ? AND status IN (?, ?) AND id <> ?")).
		WithArgs(driverID, "assigned", "in_progress", rideID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountOtherActiveRides(context.Background(), models.ResourceDriver, driverID, rideID)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusyResources(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	busy := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT assigned_vehicle_id FROM rides")).
		WithArgs(date, "09:00", "assigned", "in_progress").
		WillReturnRows(sqlmock.NewRows([]string{"assigned_vehicle_id"}).AddRow(busy.String()))

	ids, err := repo.BusyResources(context.Background(), models.ResourceVehicle, date, "09:00", nil)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{busy}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRideStats(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	requester := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) FILTER (WHERE status = ?) AS completed")).
		WillReturnRows(sqlmock.NewRows([]string{"total", "completed", "live", "total_distance"}).AddRow(7, 4, 2, 123.456))

	stats, err := repo.GetRideStats(context.Background(), requester)

	require.NoError(t, err)
	assert.Equal(t, &models.RideStats{Total: 7, Completed: 4, Live: 2, TotalDistance: 123.456}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
