package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/rides"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
)

// AssignRide pairs an approved ride with a driver and a vehicle
func (uc *rideUC) AssignRide(ctx context.Context, actor models.Actor, ref string, req models.AssignmentRequest) (*models.Ride, error) {
	tr, err := uc.transition(ctx, lifecycle.EventAssign, ref, func(ctx context.Context, ride *models.Ride) (lifecycle.Transition, error) {
		if err := lifecycle.CanAssign(ride, actor); err != nil {
			return lifecycle.Transition{}, err
		}
		driver, vehicle, err := uc.lockResources(ctx, req)
		if err != nil {
			return lifecycle.Transition{}, err
		}
		tr, err := lifecycle.Assign(ride, actor, driver, vehicle, uc.now())
		if err != nil {
			return tr, err
		}
		if err := uc.checkConflicts(ctx, tr); err != nil {
			return tr, err
		}
		return tr, uc.claim(ctx, tr)
	})
	if err != nil {
		return nil, err
	}
	return tr.Ride, nil
}

// ReassignRide moves an assigned ride to another driver or vehicle. Released
// resources go back to available unless they still serve another active ride.
func (uc *rideUC) ReassignRide(ctx context.Context, actor models.Actor, ref string, req models.AssignmentRequest) (*models.Ride, error) {
	tr, err := uc.transition(ctx, lifecycle.EventReassign, ref, func(ctx context.Context, ride *models.Ride) (lifecycle.Transition, error) {
		if err := lifecycle.CanReassign(ride, actor); err != nil {
			return lifecycle.Transition{}, err
		}
		driver, vehicle, err := uc.lockResources(ctx, req)
		if err != nil {
			return lifecycle.Transition{}, err
		}
		tr, err := lifecycle.Reassign(ride, actor, driver, vehicle, uc.now())
		if err != nil {
			return tr, err
		}
		if err := uc.checkConflicts(ctx, tr); err != nil {
			return tr, err
		}

		if tr.DriverChanged() && tr.Before.AssignedDriverID != nil {
			if err := uc.releaseIfIdle(ctx, models.ResourceDriver, *tr.Before.AssignedDriverID, ride.ID); err != nil {
				return tr, err
			}
		}
		if tr.VehicleChanged() && tr.Before.AssignedVehicleID != nil {
			if err := uc.releaseIfIdle(ctx, models.ResourceVehicle, *tr.Before.AssignedVehicleID, ride.ID); err != nil {
				return tr, err
			}
		}
		return tr, uc.claim(ctx, tr)
	})
	if err != nil {
		return nil, err
	}
	return tr.Ride, nil
}

// lockResources loads and locks the requested driver and vehicle. Missing
// rows are reported as invalid selections rather than not found.
func (uc *rideUC) lockResources(ctx context.Context, req models.AssignmentRequest) (*models.User, *models.Vehicle, error) {
	if req.DriverID == uuid.Nil || req.VehicleID == uuid.Nil {
		return nil, nil, apperror.Validation("assignment_required", "Driver ID and Vehicle ID are required")
	}

	driver, err := uc.ridesRepo.LockUser(ctx, req.DriverID)
	if errors.Is(err, rides.ErrUserNotFound) {
		return nil, nil, lifecycle.ErrInvalidDriver
	}
	if err != nil {
		return nil, nil, err
	}

	vehicle, err := uc.ridesRepo.LockVehicle(ctx, req.VehicleID)
	if errors.Is(err, rides.ErrVehicleNotFound) {
		return nil, nil, lifecycle.ErrInvalidVehicle
	}
	if err != nil {
		return nil, nil, err
	}
	return driver, vehicle, nil
}

// checkConflicts looks for another active ride holding the new driver or
// vehicle in the same slot. Unchanged resources are not rechecked.
func (uc *rideUC) checkConflicts(ctx context.Context, tr lifecycle.Transition) error {
	r := tr.Ride
	if tr.DriverChanged() {
		conflict, err := uc.ridesRepo.FindConflict(ctx, models.ResourceDriver, *r.AssignedDriverID, r.ScheduledDate, r.ScheduledTime, r.ID)
		if err != nil {
			return err
		}
		if conflict != nil {
			return lifecycle.ErrDriverConflict.WithMessage(
				"Driver is already assigned to another ride at this time (Ride #%s)", conflict.RideCode)
		}
	}
	if tr.VehicleChanged() {
		conflict, err := uc.ridesRepo.FindConflict(ctx, models.ResourceVehicle, *r.AssignedVehicleID, r.ScheduledDate, r.ScheduledTime, r.ID)
		if err != nil {
			return err
		}
		if conflict != nil {
			return lifecycle.ErrVehicleConflict.WithMessage(
				"Vehicle is already assigned to another ride at this time (Ride #%s)", conflict.RideCode)
		}
	}
	return nil
}

func (uc *rideUC) claim(ctx context.Context, tr lifecycle.Transition) error {
	r := tr.Ride
	if err := uc.ridesRepo.AssignDriver(ctx, *r.AssignedDriverID, r.ID, *r.AssignedVehicleID); err != nil {
		return err
	}
	return uc.ridesRepo.AssignVehicle(ctx, *r.AssignedVehicleID, *r.AssignedDriverID, r.ID)
}

// releaseIfIdle frees a driver or vehicle once no other active ride holds it
func (uc *rideUC) releaseIfIdle(ctx context.Context, resource models.Resource, id, rideID uuid.UUID) error {
	n, err := uc.ridesRepo.CountOtherActiveRides(ctx, resource, id, rideID)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.DebugCtx(ctx, "Resource still held by another ride",
			logger.String("resource", string(resource)),
			logger.UUID("id", id),
			logger.Int("active_rides", n))
		return nil
	}
	if resource == models.ResourceDriver {
		return uc.ridesRepo.ReleaseDriver(ctx, id)
	}
	return uc.ridesRepo.ReleaseVehicle(ctx, id)
}
