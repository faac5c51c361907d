package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// UserRepo defines the interface for account data access
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fleetdispatch/services/fleet UserRepo,VehicleRepo
type UserRepo interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, int, error)
	ListDrivers(ctx context.Context) ([]*models.User, error)
	CountUsers(ctx context.Context) (*models.UserCounts, error)
	EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	PhoneExists(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	DeactivateUser(ctx context.Context, id uuid.UUID) error
	// CountOpenRides counts live and in-progress rides the user requested or drives
	CountOpenRides(ctx context.Context, id uuid.UUID) (int, error)
	// SeedUser inserts the user unless the email is taken and reports whether it did
	SeedUser(ctx context.Context, user *models.User) (bool, error)
}

// VehicleRepo defines the interface for vehicle data access
type VehicleRepo interface {
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, filter models.VehicleFilter) ([]*models.Vehicle, error)
	CountVehicles(ctx context.Context) (*models.VehicleCounts, error)
	NumberExists(ctx context.Context, number string, excludeID uuid.UUID) (bool, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	SetVehicleStatus(ctx context.Context, id uuid.UUID, status models.VehicleStatus) error
	DeactivateVehicle(ctx context.Context, id uuid.UUID) error
	CountActiveRides(ctx context.Context, id uuid.UUID) (int, error)
	ResetMonthlyMileage(ctx context.Context) (int64, error)
	SeedVehicle(ctx context.Context, vehicle *models.Vehicle) (bool, error)
}
