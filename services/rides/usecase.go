package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// RideUC defines the interface for ride business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleetdispatch/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, actor models.Actor, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, actor models.Actor, ref string) (*models.Ride, error)
	GetRideVehicle(ctx context.Context, actor models.Actor, ref string) (*models.Ride, *models.Vehicle, error)
	ListRides(ctx context.Context, actor models.Actor, filter models.RideFilter) (*models.RideList, error)
	GetMyStats(ctx context.Context, actor models.Actor) (*models.RideStats, error)
	ListAwaitingPM(ctx context.Context) ([]*models.Ride, error)
	ListAwaitingAdmin(ctx context.Context) ([]*models.Ride, error)
	ListReadyForAssignment(ctx context.Context) ([]*models.Ride, error)

	PMApprove(ctx context.Context, actor models.Actor, ref string) (*models.Ride, error)
	PMReject(ctx context.Context, actor models.Actor, ref string, req models.RejectionRequest) (*models.Ride, error)
	AdminApprove(ctx context.Context, actor models.Actor, ref string, req models.ApprovalRequest) (*models.Ride, error)
	AdminReject(ctx context.Context, actor models.Actor, ref string, req models.RejectionRequest) (*models.Ride, error)
	AssignRide(ctx context.Context, actor models.Actor, ref string, req models.AssignmentRequest) (*models.Ride, error)
	ReassignRide(ctx context.Context, actor models.Actor, ref string, req models.AssignmentRequest) (*models.Ride, error)
	StartRide(ctx context.Context, actor models.Actor, ref string, req models.StartRideRequest) (*models.Ride, error)
	CompleteRide(ctx context.Context, actor models.Actor, ref string, req models.CompleteRideRequest) (*models.CompletionResult, error)
	CancelRide(ctx context.Context, actor models.Actor, ref string) (*models.Ride, error)

	ListDriverAssigned(ctx context.Context, actor models.Actor) ([]*models.Ride, error)
	GetDriverDaily(ctx context.Context, actor models.Actor) (*models.DriverDailyRides, error)
	AvailableDrivers(ctx context.Context, date, clock string, excludeRideID *uuid.UUID) ([]*models.AvailableDriver, error)
	AvailableVehicles(ctx context.Context, date, clock string, excludeRideID *uuid.UUID) ([]*models.AvailableVehicle, error)
}
