package usecase

import (
	"context"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
)

// StartRide moves an assigned ride into progress for its driver
func (uc *rideUC) StartRide(ctx context.Context, actor models.Actor, ref string, req models.StartRideRequest) (*models.Ride, error) {
	tr, err := uc.transition(ctx, lifecycle.EventStart, ref, func(ctx context.Context, ride *models.Ride) (lifecycle.Transition, error) {
		return lifecycle.Start(ride, actor, req.StartMileage, uc.now())
	})
	if err != nil {
		return nil, err
	}
	return tr.Ride, nil
}

// CompleteRide closes a ride in progress, credits the distance to the
// vehicle, the driver and the requester, and frees the resources.
func (uc *rideUC) CompleteRide(ctx context.Context, actor models.Actor, ref string, req models.CompleteRideRequest) (*models.CompletionResult, error) {
	tr, err := uc.transition(ctx, lifecycle.EventComplete, ref, func(ctx context.Context, ride *models.Ride) (lifecycle.Transition, error) {
		tr, err := lifecycle.Complete(ride, actor, req.EndMileage, uc.now())
		if err != nil {
			return tr, err
		}

		r := tr.Ride
		distance := *r.ActualDistance
		if err := uc.ridesRepo.AddVehicleMileage(ctx, *r.AssignedVehicleID, distance); err != nil {
			return tr, err
		}
		if err := uc.ridesRepo.AddUserStats(ctx, *r.AssignedDriverID, distance); err != nil {
			return tr, err
		}
		if err := uc.releaseIfIdle(ctx, models.ResourceDriver, *r.AssignedDriverID, r.ID); err != nil {
			return tr, err
		}
		if err := uc.ridesRepo.AddUserStats(ctx, r.RequesterID, distance); err != nil {
			return tr, err
		}
		return tr, uc.releaseIfIdle(ctx, models.ResourceVehicle, *r.AssignedVehicleID, r.ID)
	})
	if err != nil {
		return nil, err
	}

	return &models.CompletionResult{
		Ride:           tr.Ride,
		ActualDistance: utils.Round1(*tr.Ride.ActualDistance),
	}, nil
}
