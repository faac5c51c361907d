package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/fleet"
	"github.com/piresc/fleetdispatch/services/fleet/mocks"
)

func newTestVehicleUC(t *testing.T) (*VehicleUC, *mocks.MockVehicleRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(repo)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo
}

func storedVehicle(status models.VehicleStatus) *models.Vehicle {
	driver, ride := uuid.New(), uuid.New()
	return &models.Vehicle{
		ID:              uuid.New(),
		VehicleNumber:   "NB-1985",
		Type:            models.VehicleTypeVan,
		Status:          status,
		CurrentDriverID: &driver,
		CurrentRideID:   &ride,
		IsActive:        true,
	}
}

func TestCreateVehicle_NormalizesNumber(t *testing.T) {
	uc, repo := newTestVehicleUC(t)

	repo.EXPECT().NumberExists(gomock.Any(), "CAB-4410", uuid.Nil).Return(false, nil)
	repo.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).Return(nil)

	vehicle, err := uc.CreateVehicle(context.Background(), models.VehicleRequest{VehicleNumber: "  cab-4410 ", Type: models.VehicleTypeSUV})

	require.NoError(t, err)
	assert.Equal(t, "CAB-4410", vehicle.VehicleNumber)
	assert.Equal(t, models.VehicleStatusAvailable, vehicle.Status)
	assert.Equal(t, fixedNow, vehicle.LastMileageReset)
}

func TestCreateVehicle_Invalid(t *testing.T) {
	uc, _ := newTestVehicleUC(t)

	for _, req := range []models.VehicleRequest{
		{VehicleNumber: "   ", Type: models.VehicleTypeCar},
		{VehicleNumber: "CAB-4410", Type: "Truck"},
	} {
		_, err := uc.CreateVehicle(context.Background(), req)
		assert.ErrorIs(t, err, fleet.ErrInvalidVehicle)
	}
}

func TestCreateVehicle_Duplicate(t *testing.T) {
	uc, repo := newTestVehicleUC(t)
	repo.EXPECT().NumberExists(gomock.Any(), "CAB-4410", uuid.Nil).Return(true, nil)

	_, err := uc.CreateVehicle(context.Background(), models.VehicleRequest{VehicleNumber: "CAB-4410", Type: models.VehicleTypeCar})

	assert.ErrorIs(t, err, fleet.ErrVehicleNumberTaken)
}

func TestUpdateVehicle_SameNumberSkipsUniqueness(t *testing.T) {
	uc, repo := newTestVehicleUC(t)
	vehicle := storedVehicle(models.VehicleStatusAvailable)

	repo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	repo.EXPECT().UpdateVehicle(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.UpdateVehicle(context.Background(), vehicle.ID, models.VehicleRequest{VehicleNumber: "nb-1985", Type: models.VehicleTypeBus})

	require.NoError(t, err)
	assert.Equal(t, models.VehicleTypeBus, updated.Type)
}

func TestVehicleGuards_ActiveRides(t *testing.T) {
	tests := []struct {
		name string
		call func(uc *VehicleUC, id uuid.UUID) error
	}{
		{name: "delete", call: func(uc *VehicleUC, id uuid.UUID) error { return uc.DeleteVehicle(context.Background(), id) }},
		{name: "maintenance", call: func(uc *VehicleUC, id uuid.UUID) error {
			_, err := uc.SetMaintenance(context.Background(), id)
			return err
		}},
		{name: "available", call: func(uc *VehicleUC, id uuid.UUID) error {
			_, err := uc.SetAvailable(context.Background(), id)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestVehicleUC(t)
			vehicle := storedVehicle(models.VehicleStatusBusy)
			repo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
			repo.EXPECT().CountActiveRides(gomock.Any(), vehicle.ID).Return(1, nil)

			err := tt.call(uc, vehicle.ID)

			assert.ErrorIs(t, err, fleet.ErrVehicleHasRides)
			assert.Equal(t, apperror.KindGuard, apperror.KindOf(err))
		})
	}
}

func TestSetAvailable_ClearsMaintenance(t *testing.T) {
	uc, repo := newTestVehicleUC(t)
	vehicle := storedVehicle(models.VehicleStatusMaintenance)

	repo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	repo.EXPECT().CountActiveRides(gomock.Any(), vehicle.ID).Return(0, nil)
	repo.EXPECT().SetVehicleStatus(gomock.Any(), vehicle.ID, models.VehicleStatusAvailable).Return(nil)

	updated, err := uc.SetAvailable(context.Background(), vehicle.ID)

	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusAvailable, updated.Status)
	assert.Nil(t, updated.CurrentDriverID)
	assert.Nil(t, updated.CurrentRideID)
}

func TestDeleteVehicle_NotFound(t *testing.T) {
	uc, repo := newTestVehicleUC(t)
	repo.EXPECT().GetVehicle(gomock.Any(), gomock.Any()).Return(nil, fleet.ErrVehicleNotFound)

	err := uc.DeleteVehicle(context.Background(), uuid.New())

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestResetMonthlyMileage_StorageFailure(t *testing.T) {
	uc, repo := newTestVehicleUC(t)
	repo.EXPECT().ResetMonthlyMileage(gomock.Any()).Return(int64(0), errors.New("deadlock detected"))

	_, err := uc.ResetMonthlyMileage(context.Background())

	assert.Equal(t, apperror.KindDownstream, apperror.KindOf(err))
}
