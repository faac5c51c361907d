package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/fleet/mocks"
)

func seedData() *models.SeedData {
	return &models.SeedData{
		Accounts: []models.SeedAccount{
			{Name: "System Admin", Email: "Admin@Fleet.lk", Password: "admin-pass", Role: models.RoleAdmin, System: true},
		},
		Drivers: []models.SeedAccount{
			{Name: "Ruwan", Email: "ruwan@fleet.lk", Phone: "0771000001", Password: "driver-pass", Role: models.RoleDriver},
		},
		Vehicles: []models.SeedVehicle{
			{VehicleNumber: " nb-1985", Type: models.VehicleTypeVan},
		},
	}
}

func TestSeeder_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepo(ctrl)
	vehicles := mocks.NewMockVehicleRepo(ctrl)
	s := NewSeeder(testConfig(), users, vehicles)
	s.now = func() time.Time { return fixedNow }

	gomock.InOrder(
		users.EXPECT().SeedUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) (bool, error) {
				assert.Equal(t, "admin@fleet.lk", u.Email)
				assert.True(t, u.IsHardcoded)
				assert.Nil(t, u.Status)
				return false, nil
			}),
		users.EXPECT().SeedUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) (bool, error) {
				assert.False(t, u.IsHardcoded)
				require.NotNil(t, u.Status)
				assert.Equal(t, models.DriverStatusAvailable, *u.Status)
				return true, nil
			}),
		vehicles.EXPECT().SeedVehicle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *models.Vehicle) (bool, error) {
				assert.Equal(t, "NB-1985", v.VehicleNumber)
				return true, nil
			}),
	)

	require.NoError(t, s.Run(context.Background(), seedData()))
}

func TestSeeder_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepo(ctrl)
	vehicles := mocks.NewMockVehicleRepo(ctrl)
	s := NewSeeder(testConfig(), users, vehicles)

	users.EXPECT().SeedUser(gomock.Any(), gomock.Any()).Return(false, errors.New("relation \"users\" does not exist"))

	assert.Error(t, s.Run(context.Background(), seedData()))
}
