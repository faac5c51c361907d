package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/metrics"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/internal/pkg/retry"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/rides"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
)

const publishTimeout = 5 * time.Second

// rideUC implements rides.RideUC
type rideUC struct {
	cfg       *models.Config
	ridesRepo rides.RideRepo
	ridesGW   rides.RideGW
	policy    lifecycle.Policy
	now       func() time.Time
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
) (rides.RideUC, error) {
	return newRideUC(cfg, rideRepo, rideGW, time.Now), nil
}

func newRideUC(cfg *models.Config, repo rides.RideRepo, gw rides.RideGW, now func() time.Time) *rideUC {
	return &rideUC{
		cfg:       cfg,
		ridesRepo: repo,
		ridesGW:   gw,
		policy:    lifecycle.NewPolicy(cfg.Dispatch),
		now:       now,
	}
}

// CreateRide validates the request, allocates a ride code and stores the ride
func (uc *rideUC) CreateRide(ctx context.Context, actor models.Actor, req models.CreateRideRequest) (_ *models.Ride, err error) {
	defer func() { metrics.RecordTransition(string(lifecycle.EventCreate), err) }()

	var tr lifecycle.Transition
	err = uc.ridesRepo.RunInTx(ctx, func(ctx context.Context) error {
		live := 0
		if actor.Role == models.RoleUser {
			// the requester row lock serialises concurrent creates against the cap
			if _, err := uc.ridesRepo.LockUser(ctx, actor.UserID); err != nil {
				return err
			}
			n, err := uc.ridesRepo.CountLiveRides(ctx, actor.UserID)
			if err != nil {
				return err
			}
			live = n
		}

		var err error
		tr, err = uc.policy.Create(req, actor, live, uc.now())
		if err != nil {
			return err
		}
		return uc.insertWithCode(ctx, tr.Ride)
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to create ride",
			logger.UUID("requester_id", actor.UserID),
			logger.Err(err))
		return nil, classify(err)
	}

	logger.InfoCtx(ctx, "Ride created",
		logger.String("ride_code", tr.Ride.RideCode),
		logger.String("status", string(tr.Ride.Status)),
		logger.Float64("calculated_distance", tr.Ride.CalculatedDistance))
	uc.publish(ctx, tr)
	return tr.Ride, nil
}

func (uc *rideUC) insertWithCode(ctx context.Context, ride *models.Ride) error {
	attempts := uc.cfg.Dispatch.RideCodeMaxAttempts
	if attempts <= 0 {
		attempts = 5
	}
	length := uc.cfg.Dispatch.RideCodeLength
	if length <= 0 {
		length = 6
	}

	policy := retry.Policy{
		Name:      "ride code",
		Attempts:  attempts,
		Retryable: func(err error) bool { return errors.Is(err, rides.ErrDuplicateRideCode) },
		OnFailure: func(_ int, _ error) {
			metrics.RideCodeCollisions.Inc()
			logger.DebugCtx(ctx, "Ride code collision", logger.String("ride_code", ride.RideCode))
		},
	}
	err := policy.Do(ctx, func(ctx context.Context) error {
		code, err := utils.GenerateCode(length)
		if err != nil {
			return err
		}
		ride.RideCode = code
		return uc.ridesRepo.CreateRide(ctx, ride)
	})
	if errors.Is(err, retry.ErrExhausted) {
		return lifecycle.ErrRideCodeExhausted
	}
	return err
}

// PMApprove records the project manager approval
func (uc *rideUC) PMApprove(ctx context.Context, actor models.Actor, ref string) (*models.Ride, error) {
	tr, err := uc.transition(ctx, lifecycle.EventPMApprove, ref, func(ctx context.Context, ride *models.Ride) (lifecycle.Transition, error) {
		return lifecycle.PMApprove(ride, actor, uc.now())
	})
	if err != nil {
		return nil, err
	}
	return tr.Ride, nil
}

// PMReject rejects a ride awaiting approval on behalf of a project manager
func (uc *rideUC) PMReject(ctx context.Context, actor models.Actor, ref string, req models.RejectionRequest) (*models.Ride, error) {
	tr, err := uc.transition(ctx, lifecycle.EventPMReject, ref, func(ctx context.Context, ride *models.Ride) (lifecycle.Transition, error) {
		return lifecycle.PMReject(ride, actor, req.Reason, uc.now())
	})
	if err != nil {
		return nil, err
	}
	return tr.Ride, nil
}

// AdminApprove records the admin approval
func (uc *rideUC) AdminApprove(ctx context.Context, actor models.Actor, ref string, req models.ApprovalRequest) (*models.Ride, error) {
	tr, err := uc.transition(ctx, lifecycle.EventAdminApprove, ref, func(ctx context.Context, ride *models.Ride) (lifecycle.Transition, error) {
		return uc.policy.AdminApprove(ride, actor, req.Note, uc.now())
	})
	if err != nil {
		return nil, err
	}
	return tr.Ride, nil
}

// AdminReject rejects a ride that has not been assigned yet
func (uc *rideUC) AdminReject(ctx context.Context, actor models.Actor, ref string, req models.RejectionRequest) (*models.Ride, error) {
	tr, err := uc.transition(ctx, lifecycle.EventAdminReject, ref, func(ctx context.Context, ride *models.Ride) (lifecycle.Transition, error) {
		return lifecycle.AdminReject(ride, actor, req.Reason, uc.now())
	})
	if err != nil {
		return nil, err
	}
	return tr.Ride, nil
}

// CancelRide lets the requester or an admin withdraw a ride before approval
func (uc *rideUC) CancelRide(ctx context.Context, actor models.Actor, ref string) (*models.Ride, error) {
	tr, err := uc.transition(ctx, lifecycle.EventCancel, ref, func(ctx context.Context, ride *models.Ride) (lifecycle.Transition, error) {
		return lifecycle.Cancel(ride, actor, uc.now())
	})
	if err != nil {
		return nil, err
	}
	return tr.Ride, nil
}

type applyFunc func(ctx context.Context, ride *models.Ride) (lifecycle.Transition, error)

// transition locks the ride, runs apply and writes the result in a single
// transaction. The event is published only after the commit.
func (uc *rideUC) transition(ctx context.Context, event lifecycle.Event, ref string, apply applyFunc) (tr lifecycle.Transition, err error) {
	defer func() { metrics.RecordTransition(string(event), err) }()

	current, err := uc.resolve(ctx, ref)
	if err != nil {
		return tr, err
	}

	err = nrpkg.WithSegment(ctx, "ride.transition."+string(event), func() error {
		return uc.ridesRepo.RunInTx(ctx, func(ctx context.Context) error {
			ride, err := uc.ridesRepo.LockRide(ctx, current.ID)
			if err != nil {
				return err
			}
			tr, err = apply(ctx, ride)
			if err != nil {
				return err
			}
			return uc.ridesRepo.UpdateRide(ctx, tr.Ride, tr.From)
		})
	})
	if err != nil {
		logger.WarnCtx(ctx, "Ride transition rejected",
			logger.String("event", string(event)),
			logger.String("ride_code", current.RideCode),
			logger.Err(err))
		return tr, classify(err)
	}

	logger.InfoCtx(ctx, "Ride transition committed",
		logger.String("event", string(event)),
		logger.String("ride_code", tr.Ride.RideCode),
		logger.String("from", string(tr.Before.Status)),
		logger.String("to", string(tr.Ride.Status)))
	uc.publish(ctx, tr)
	return tr, nil
}

// resolve accepts either the ride UUID or its public code
func (uc *rideUC) resolve(ctx context.Context, ref string) (*models.Ride, error) {
	var (
		ride *models.Ride
		err  error
	)
	if id, perr := uuid.Parse(ref); perr == nil {
		ride, err = uc.ridesRepo.GetRide(ctx, id)
	} else {
		ride, err = uc.ridesRepo.GetRideByCode(ctx, ref)
	}
	if err != nil {
		return nil, classify(err)
	}
	return ride, nil
}

// publish emits the committed transition. Failures are logged and dropped:
// the ride state is already durable.
func (uc *rideUC) publish(ctx context.Context, tr lifecycle.Transition) {
	if uc.ridesGW == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := newRideEvent(tr, uc.now())
	if err := uc.ridesGW.PublishRideEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish ride event",
			logger.String("type", string(event.Type)),
			logger.String("ride_code", event.RideCode),
			logger.Err(err))
	}
}

func newRideEvent(tr lifecycle.Transition, now time.Time) *models.RideEvent {
	r := tr.Ride
	event := &models.RideEvent{
		EventID:            uuid.New(),
		Type:               tr.Event.EventType(),
		RideID:             r.ID,
		RideCode:           r.RideCode,
		Status:             r.Status,
		RequesterID:        r.RequesterID,
		RequiresPMApproval: r.RequiresPMApproval,
		CalculatedDistance: r.CalculatedDistance,
		ScheduledDate:      r.ScheduledDate.Format("2006-01-02"),
		ScheduledTime:      r.ScheduledTime,
		PickupAddress:      r.PickupLocation.Address,
		DestinationAddress: r.DestinationLocation.Address,
		DriverID:           r.AssignedDriverID,
		VehicleID:          r.AssignedVehicleID,
		ActualDistance:     r.ActualDistance,
		ActorID:            tr.Actor.UserID,
		ActorRole:          tr.Actor.Role,
		Note:               tr.Note,
		OccurredAt:         now,
	}
	if tr.Event == lifecycle.EventReassign && tr.Before != nil {
		if tr.DriverChanged() {
			event.PreviousDriverID = tr.Before.AssignedDriverID
		}
		if tr.VehicleChanged() {
			event.PreviousVehicleID = tr.Before.AssignedVehicleID
		}
	}
	return event
}

// classify keeps domain errors as they are and wraps storage failures
func classify(err error) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Downstream("Ride storage failure", err)
}
