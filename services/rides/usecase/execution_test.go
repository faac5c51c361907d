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
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
)

func inProgressRide(driverID, vehicleID uuid.UUID, startMileage float64) *models.Ride {
	ride := assignedRide(models.RideStatusInProgress, driverID, vehicleID)
	ride.StartMileage = &startMileage
	return ride
}

func TestStartRide_Success(t *testing.T) {
	f := newFixture(t)
	driverID := uuid.New()
	ride := assignedRide(models.RideStatusAssigned, driverID, uuid.New())
	actor := models.Actor{UserID: driverID, Role: models.RoleDriver}

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.inTx()
	f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), []models.RideStatus{models.RideStatusAssigned}).Return(nil)
	event := f.expectPublish(nil)

	updated, err := f.uc.StartRide(context.Background(), actor, ride.ID.String(), models.StartRideRequest{StartMileage: floatPtr(100)})

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusInProgress, updated.Status)
	assert.Equal(t, 100.0, *updated.StartMileage)
	assert.Equal(t, models.RideEventStarted, event.Type)
}

func TestCompleteRide_CreditsDistanceAndReleases(t *testing.T) {
	// Arrange
	f := newFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()
	ride := inProgressRide(driverID, vehicleID, 100)
	actor := models.Actor{UserID: driverID, Role: models.RoleDriver}

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.inTx()
	f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
	gomock.InOrder(
		f.repo.EXPECT().AddVehicleMileage(gomock.Any(), vehicleID, 45.0).Return(nil),
		f.repo.EXPECT().AddUserStats(gomock.Any(), driverID, 45.0).Return(nil),
		f.repo.EXPECT().CountOtherActiveRides(gomock.Any(), models.ResourceDriver, driverID, ride.ID).Return(0, nil),
		f.repo.EXPECT().ReleaseDriver(gomock.Any(), driverID).Return(nil),
		f.repo.EXPECT().AddUserStats(gomock.Any(), ride.RequesterID, 45.0).Return(nil),
		f.repo.EXPECT().CountOtherActiveRides(gomock.Any(), models.ResourceVehicle, vehicleID, ride.ID).Return(0, nil),
		f.repo.EXPECT().ReleaseVehicle(gomock.Any(), vehicleID).Return(nil),
		f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), []models.RideStatus{models.RideStatusInProgress}).Return(nil),
	)
	event := f.expectPublish(nil)

	// Act
	result, err := f.uc.CompleteRide(context.Background(), actor, ride.ID.String(), models.CompleteRideRequest{EndMileage: floatPtr(145)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 45.0, result.ActualDistance)
	assert.Equal(t, models.RideStatusCompleted, result.Ride.Status)
	assert.Equal(t, models.RideEventCompleted, event.Type)
	assert.Equal(t, 45.0, *event.ActualDistance)
}

func TestCompleteRide_KeepsResourcesWithOtherActiveRides(t *testing.T) {
	f := newFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()
	ride := inProgressRide(driverID, vehicleID, 10)
	actor := models.Actor{UserID: driverID, Role: models.RoleDriver}

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.inTx()
	f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().AddVehicleMileage(gomock.Any(), vehicleID, 5.0).Return(nil)
	f.repo.EXPECT().AddUserStats(gomock.Any(), gomock.Any(), 5.0).Return(nil).Times(2)
	f.repo.EXPECT().CountOtherActiveRides(gomock.Any(), gomock.Any(), gomock.Any(), ride.ID).Return(1, nil).Times(2)
	f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.expectPublish(nil)

	_, err := f.uc.CompleteRide(context.Background(), actor, ride.ID.String(), models.CompleteRideRequest{EndMileage: floatPtr(15)})

	require.NoError(t, err)
}

func TestCompleteRide_WrongDriver(t *testing.T) {
	f := newFixture(t)
	ride := inProgressRide(uuid.New(), uuid.New(), 10)
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.inTx()
	f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.CompleteRide(context.Background(), actor, ride.ID.String(), models.CompleteRideRequest{EndMileage: floatPtr(15)})

	assert.True(t, errors.Is(err, lifecycle.ErrNotAssignedDriver))
}

func TestCompleteRide_StorageFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()
	ride := inProgressRide(driverID, vehicleID, 10)
	actor := models.Actor{UserID: driverID, Role: models.RoleDriver}

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.inTx()
	f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().AddVehicleMileage(gomock.Any(), vehicleID, gomock.Any()).Return(errors.New("deadlock detected"))

	_, err := f.uc.CompleteRide(context.Background(), actor, ride.ID.String(), models.CompleteRideRequest{EndMileage: floatPtr(15)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
}

func TestCancelRide(t *testing.T) {
	tests := []struct {
		name    string
		status  models.RideStatus
		owner   bool
		role    models.Role
		wantErr error
	}{
		{name: "owner cancels awaiting admin", status: models.RideStatusAwaitingAdmin, owner: true, role: models.RoleUser},
		{name: "owner cancels legacy alias", status: models.RideStatusAwaitingPM, owner: true, role: models.RoleUser},
		{name: "admin cancels someone else's", status: models.RideStatusAwaitingAdmin, role: models.RoleAdmin},
		{name: "stranger cannot cancel", status: models.RideStatusAwaitingAdmin, role: models.RoleUser, wantErr: lifecycle.ErrCancelForbidden},
		{name: "approved ride cannot be cancelled", status: models.RideStatusApproved, owner: true, role: models.RoleUser, wantErr: lifecycle.ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ride := newRide(tt.status)
			actor := models.Actor{UserID: uuid.New(), Role: tt.role}
			if tt.owner {
				actor.UserID = ride.RequesterID
			}

			f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
			f.inTx()
			f.repo.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
			if tt.wantErr == nil {
				f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.expectPublish(nil)
			}

			updated, err := f.uc.CancelRide(context.Background(), actor, ride.ID.String())

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.RideStatusCancelled, updated.Status)
		})
	}
}
