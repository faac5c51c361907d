package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/rides"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
)

var admin = models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}

func TestAssignRide_Success(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ride := newRide(models.RideStatusApproved)
	driver, vehicle := activeDriver(), activeVehicle()

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.inTx()
	f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().LockUser(gomock.Any(), driver.ID).Return(driver, nil)
	f.repo.EXPECT().LockVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	f.repo.EXPECT().FindConflict(gomock.Any(), models.ResourceDriver, driver.ID, ride.ScheduledDate, "08:30", ride.ID).Return(nil, nil)
	f.repo.EXPECT().FindConflict(gomock.Any(), models.ResourceVehicle, vehicle.ID, ride.ScheduledDate, "08:30", ride.ID).Return(nil, nil)
	f.repo.EXPECT().AssignDriver(gomock.Any(), driver.ID, ride.ID, vehicle.ID).Return(nil)
	f.repo.EXPECT().AssignVehicle(gomock.Any(), vehicle.ID, driver.ID, ride.ID).Return(nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	event := f.expectPublish(nil)

	// Act
	updated, err := f.uc.AssignRide(context.Background(), admin, ride.ID.String(),
		models.AssignmentRequest{DriverID: driver.ID, VehicleID: vehicle.ID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAssigned, updated.Status)
	assert.Equal(t, models.RideEventAssigned, event.Type)
	assert.Equal(t, driver.ID, *event.DriverID)
}

func TestAssignRide_DriverConflict(t *testing.T) {
	f := newFixture(t)
	ride := newRide(models.RideStatusApproved)
	driver, vehicle := activeDriver(), activeVehicle()
	other := newRide(models.RideStatusAssigned)
	other.RideCode = "QW34ER"

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.inTx()
	f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().LockUser(gomock.Any(), driver.ID).Return(driver, nil)
	f.repo.EXPECT().LockVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	f.repo.EXPECT().FindConflict(gomock.Any(), models.ResourceDriver, driver.ID, gomock.Any(), gomock.Any(), ride.ID).Return(other, nil)

	_, err := f.uc.AssignRide(context.Background(), admin, ride.ID.String(),
		models.AssignmentRequest{DriverID: driver.ID, VehicleID: vehicle.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, lifecycle.ErrDriverConflict))
	assert.Contains(t, err.Error(), "(Ride #QW34ER)")
}

func TestAssignRide_UnknownResources(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture, driver *models.User, vehicle *models.Vehicle)
		wantErr error
	}{
		{
			name: "unknown driver",
			setup: func(f *fixture, driver *models.User, _ *models.Vehicle) {
				f.repo.EXPECT().LockUser(gomock.Any(), driver.ID).Return(nil, rides.ErrUserNotFound)
			},
			wantErr: lifecycle.ErrInvalidDriver,
		},
		{
			name: "unknown vehicle",
			setup: func(f *fixture, driver *models.User, vehicle *models.Vehicle) {
				f.repo.EXPECT().LockUser(gomock.Any(), driver.ID).Return(driver, nil)
				f.repo.EXPECT().LockVehicle(gomock.Any(), vehicle.ID).Return(nil, rides.ErrVehicleNotFound)
			},
			wantErr: lifecycle.ErrInvalidVehicle,
		},
		{
			name: "vehicle in maintenance",
			setup: func(f *fixture, driver *models.User, vehicle *models.Vehicle) {
				vehicle.Status = models.VehicleStatusMaintenance
				f.repo.EXPECT().LockUser(gomock.Any(), driver.ID).Return(driver, nil)
				f.repo.EXPECT().LockVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
			},
			wantErr: lifecycle.ErrVehicleMaintenance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ride := newRide(models.RideStatusApproved)
			driver, vehicle := activeDriver(), activeVehicle()

			f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
			f.inTx()
			f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
			tt.setup(f, driver, vehicle)

			_, err := f.uc.AssignRide(context.Background(), admin, ride.ID.String(),
				models.AssignmentRequest{DriverID: driver.ID, VehicleID: vehicle.ID})

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAssignRide_GuardsBeforeLockingResources(t *testing.T) {
	tests := []struct {
		name    string
		status  models.RideStatus
		actor   models.Actor
		assign  bool
		wantErr error
	}{
		{name: "assign awaiting ride", status: models.RideStatusAwaitingAdmin, actor: admin, assign: true, wantErr: lifecycle.ErrNotApproved},
		{name: "assign as project manager", status: models.RideStatusApproved, actor: models.Actor{UserID: uuid.New(), Role: models.RoleProjectManager}, assign: true, wantErr: lifecycle.ErrRoleNotAllowed},
		{name: "reassign approved ride", status: models.RideStatusApproved, actor: admin, wantErr: lifecycle.ErrNotAssigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ride := newRide(tt.status)

			f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
			f.inTx()
			f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
			// no LockUser or LockVehicle: an unknown driver must not mask the guard
			req := models.AssignmentRequest{DriverID: uuid.New(), VehicleID: uuid.New()}

			var err error
			if tt.assign {
				_, err = f.uc.AssignRide(context.Background(), tt.actor, ride.ID.String(), req)
			} else {
				_, err = f.uc.ReassignRide(context.Background(), tt.actor, ride.ID.String(), req)
			}

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestReassignRide_ReleasesPreviousDriver(t *testing.T) {
	// Arrange
	f := newFixture(t)
	oldDriver := uuid.New()
	vehicle := activeVehicle()
	ride := assignedRide(models.RideStatusAssigned, oldDriver, vehicle.ID)
	newDriver := activeDriver()

	f.repo.EXPECT().GetRideByCode(gomock.Any(), "AB12CD").Return(ride, nil)
	f.inTx()
	f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().LockUser(gomock.Any(), newDriver.ID).Return(newDriver, nil)
	f.repo.EXPECT().LockVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	f.repo.EXPECT().FindConflict(gomock.Any(), models.ResourceDriver, newDriver.ID, gomock.Any(), gomock.Any(), ride.ID).Return(nil, nil)
	f.repo.EXPECT().CountOtherActiveRides(gomock.Any(), models.ResourceDriver, oldDriver, ride.ID).Return(0, nil)
	f.repo.EXPECT().ReleaseDriver(gomock.Any(), oldDriver).Return(nil)
	f.repo.EXPECT().AssignDriver(gomock.Any(), newDriver.ID, ride.ID, vehicle.ID).Return(nil)
	f.repo.EXPECT().AssignVehicle(gomock.Any(), vehicle.ID, newDriver.ID, ride.ID).Return(nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), []models.RideStatus{models.RideStatusAssigned}).Return(nil)
	event := f.expectPublish(nil)

	// Act
	updated, err := f.uc.ReassignRide(context.Background(), admin, "AB12CD",
		models.AssignmentRequest{DriverID: newDriver.ID, VehicleID: vehicle.ID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, newDriver.ID, *updated.AssignedDriverID)
	assert.Equal(t, oldDriver, *updated.PreviousDriverID)
	assert.Equal(t, oldDriver, *event.PreviousDriverID)
	assert.Nil(t, event.PreviousVehicleID)
}

func TestReassignRide_KeepsDriverHeldElsewhere(t *testing.T) {
	f := newFixture(t)
	oldDriver := uuid.New()
	vehicle := activeVehicle()
	ride := assignedRide(models.RideStatusAssigned, oldDriver, vehicle.ID)
	newDriver := activeDriver()

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.inTx()
	f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().LockUser(gomock.Any(), newDriver.ID).Return(newDriver, nil)
	f.repo.EXPECT().LockVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	f.repo.EXPECT().FindConflict(gomock.Any(), models.ResourceDriver, newDriver.ID, gomock.Any(), gomock.Any(), ride.ID).Return(nil, nil)
	f.repo.EXPECT().CountOtherActiveRides(gomock.Any(), models.ResourceDriver, oldDriver, ride.ID).Return(1, nil)
	f.repo.EXPECT().ReleaseDriver(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().AssignDriver(gomock.Any(), newDriver.ID, ride.ID, vehicle.ID).Return(nil)
	f.repo.EXPECT().AssignVehicle(gomock.Any(), vehicle.ID, newDriver.ID, ride.ID).Return(nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.expectPublish(nil)

	_, err := f.uc.ReassignRide(context.Background(), admin, ride.ID.String(),
		models.AssignmentRequest{DriverID: newDriver.ID, VehicleID: vehicle.ID})

	require.NoError(t, err)
}

func TestAssignRide_MissingIDs(t *testing.T) {
	f := newFixture(t)
	ride := newRide(models.RideStatusApproved)

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.inTx()
	f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.AssignRide(context.Background(), admin, ride.ID.String(), models.AssignmentRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
