package rides

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations. It also
// covers the driver and vehicle columns that ride transitions maintain.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fleetdispatch/services/rides RideRepo
type RideRepo interface {
	// RunInTx runs fn in one transaction; repository calls made with the
	// ctx passed to fn join it.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error

	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	GetRideByCode(ctx context.Context, code string) (*models.Ride, error)
	LockRide(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	UpdateRide(ctx context.Context, ride *models.Ride, from []models.RideStatus) error
	ListRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, int, error)
	ListRidesByStatus(ctx context.Context, statuses []models.RideStatus, requiresPM *bool) ([]*models.Ride, error)
	ListDriverRides(ctx context.Context, driverID uuid.UUID, statuses []models.RideStatus, date *time.Time) ([]*models.Ride, error)
	CountLiveRides(ctx context.Context, requesterID uuid.UUID) (int, error)
	GetRideStats(ctx context.Context, requesterID uuid.UUID) (*models.RideStats, error)

	FindConflict(ctx context.Context, resource models.Resource, resourceID uuid.UUID, date time.Time, clock string, excludeRideID uuid.UUID) (*models.Ride, error)
	CountOtherActiveRides(ctx context.Context, resource models.Resource, resourceID, excludeRideID uuid.UUID) (int, error)
	BusyResources(ctx context.Context, resource models.Resource, date time.Time, clock string, excludeRideID *uuid.UUID) ([]uuid.UUID, error)

	LockUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListDrivers(ctx context.Context) ([]*models.User, error)
	AssignDriver(ctx context.Context, driverID, rideID, vehicleID uuid.UUID) error
	ReleaseDriver(ctx context.Context, driverID uuid.UUID) error
	AddUserStats(ctx context.Context, userID uuid.UUID, distance float64) error

	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	LockVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ListActiveVehicles(ctx context.Context) ([]*models.Vehicle, error)
	AssignVehicle(ctx context.Context, vehicleID, driverID, rideID uuid.UUID) error
	ReleaseVehicle(ctx context.Context, vehicleID uuid.UUID) error
	AddVehicleMileage(ctx context.Context, vehicleID uuid.UUID, distance float64) error
}
