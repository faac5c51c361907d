package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// UserUC covers authentication and account administration
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleetdispatch/services/fleet UserUC,VehicleUC
type UserUC interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Me(ctx context.Context, id uuid.UUID) (*models.User, error)

	ListUsers(ctx context.Context, filter models.UserFilter) (*models.UserList, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, actor models.Actor, id uuid.UUID) error
	ResetPassword(ctx context.Context, id uuid.UUID, req models.ResetPasswordRequest) error
	ListDrivers(ctx context.Context) ([]*models.User, error)
	CountUsers(ctx context.Context) (*models.UserCounts, error)
}

// VehicleUC covers fleet vehicle administration
type VehicleUC interface {
	ListVehicles(ctx context.Context, filter models.VehicleFilter) ([]*models.Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	CreateVehicle(ctx context.Context, req models.VehicleRequest) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id uuid.UUID, req models.VehicleRequest) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uuid.UUID) error
	SetMaintenance(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	SetAvailable(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ResetMonthlyMileage(ctx context.Context) (int64, error)
	CountVehicles(ctx context.Context) (*models.VehicleCounts, error)
}
