package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var errSlotRequired = apperror.Validation("slot_required", "Date (YYYY-MM-DD) and time (HH:MM) are required")

// GetRide returns a ride by id or code
func (uc *rideUC) GetRide(ctx context.Context, actor models.Actor, ref string) (*models.Ride, error) {
	return uc.resolve(ctx, ref)
}

// GetRideVehicle returns a ride together with its assigned vehicle
func (uc *rideUC) GetRideVehicle(ctx context.Context, actor models.Actor, ref string) (*models.Ride, *models.Vehicle, error) {
	ride, err := uc.resolve(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	if ride.AssignedVehicleID == nil {
		return ride, nil, apperror.Guard("no_vehicle", "Ride has no assigned vehicle")
	}
	vehicle, err := uc.ridesRepo.GetVehicle(ctx, *ride.AssignedVehicleID)
	if err != nil {
		return ride, nil, classify(err)
	}
	return ride, vehicle, nil
}

// ListRides returns the page of rides visible to the actor
func (uc *rideUC) ListRides(ctx context.Context, actor models.Actor, filter models.RideFilter) (*models.RideList, error) {
	filter.RequesterID, filter.DriverID, filter.PMView = nil, nil, false
	switch actor.Role {
	case models.RoleUser:
		filter.RequesterID = &actor.UserID
	case models.RoleDriver:
		filter.DriverID = &actor.UserID
	case models.RoleProjectManager:
		filter.RequesterID = &actor.UserID
		filter.PMView = true
	case models.RoleAdmin:
	default:
		return nil, lifecycle.ErrRoleNotAllowed
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	list, total, err := uc.ridesRepo.ListRides(ctx, filter)
	if err != nil {
		return nil, classify(err)
	}
	if list == nil {
		list = []*models.Ride{}
	}
	return &models.RideList{
		Rides:      list,
		Total:      total,
		Page:       filter.Page,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// GetMyStats summarises the actor's own rides
func (uc *rideUC) GetMyStats(ctx context.Context, actor models.Actor) (*models.RideStats, error) {
	stats, err := uc.ridesRepo.GetRideStats(ctx, actor.UserID)
	if err != nil {
		return nil, classify(err)
	}
	stats.TotalDistance = utils.Round1(stats.TotalDistance)
	return stats, nil
}

// ListAwaitingPM returns long rides still waiting for a project manager
func (uc *rideUC) ListAwaitingPM(ctx context.Context) ([]*models.Ride, error) {
	requiresPM := true
	return uc.listByStatus(ctx, models.AwaitingApprovalStatuses, &requiresPM)
}

// ListAwaitingAdmin returns rides waiting for an admin decision
func (uc *rideUC) ListAwaitingAdmin(ctx context.Context) ([]*models.Ride, error) {
	return uc.listByStatus(ctx, models.AwaitingApprovalStatuses, nil)
}

// ListReadyForAssignment returns approved rides without a driver
func (uc *rideUC) ListReadyForAssignment(ctx context.Context) ([]*models.Ride, error) {
	return uc.listByStatus(ctx, []models.RideStatus{models.RideStatusApproved, models.RideStatusPMApproved}, nil)
}

func (uc *rideUC) listByStatus(ctx context.Context, statuses []models.RideStatus, requiresPM *bool) ([]*models.Ride, error) {
	list, err := uc.ridesRepo.ListRidesByStatus(ctx, statuses, requiresPM)
	if err != nil {
		return nil, classify(err)
	}
	if list == nil {
		list = []*models.Ride{}
	}
	return list, nil
}

// ListDriverAssigned returns the driver's assigned and in-progress rides
func (uc *rideUC) ListDriverAssigned(ctx context.Context, actor models.Actor) ([]*models.Ride, error) {
	list, err := uc.ridesRepo.ListDriverRides(ctx, actor.UserID, models.ActiveRideStatuses, nil)
	if err != nil {
		return nil, classify(err)
	}
	if list == nil {
		list = []*models.Ride{}
	}
	return list, nil
}

// GetDriverDaily returns the driver's rides scheduled for today
func (uc *rideUC) GetDriverDaily(ctx context.Context, actor models.Actor) (*models.DriverDailyRides, error) {
	today := lifecycle.Today(uc.now(), uc.policy.Location)
	list, err := uc.ridesRepo.ListDriverRides(ctx, actor.UserID, nil, &today)
	if err != nil {
		return nil, classify(err)
	}

	daily := &models.DriverDailyRides{Date: today, Rides: list}
	if daily.Rides == nil {
		daily.Rides = []*models.Ride{}
	}
	for _, r := range list {
		switch r.Status {
		case models.RideStatusAssigned, models.RideStatusInProgress:
			daily.Active++
		case models.RideStatusCompleted:
			daily.Completed++
		}
	}
	return daily, nil
}

// AvailableDrivers lists active drivers and whether each is free in the slot
func (uc *rideUC) AvailableDrivers(ctx context.Context, date, clock string, excludeRideID *uuid.UUID) ([]*models.AvailableDriver, error) {
	day, clock, err := parseSlot(date, clock)
	if err != nil {
		return nil, err
	}
	drivers, err := uc.ridesRepo.ListDrivers(ctx)
	if err != nil {
		return nil, classify(err)
	}
	busy, err := uc.ridesRepo.BusyResources(ctx, models.ResourceDriver, day, clock, excludeRideID)
	if err != nil {
		return nil, classify(err)
	}

	taken := idSet(busy)
	result := make([]*models.AvailableDriver, 0, len(drivers))
	for _, d := range drivers {
		result = append(result, &models.AvailableDriver{User: d, IsAvailable: !taken[d.ID]})
	}
	return result, nil
}

// AvailableVehicles lists active vehicles and whether each is free in the
// slot. Vehicles in maintenance are never available.
func (uc *rideUC) AvailableVehicles(ctx context.Context, date, clock string, excludeRideID *uuid.UUID) ([]*models.AvailableVehicle, error) {
	day, clock, err := parseSlot(date, clock)
	if err != nil {
		return nil, err
	}
	vehicles, err := uc.ridesRepo.ListActiveVehicles(ctx)
	if err != nil {
		return nil, classify(err)
	}
	busy, err := uc.ridesRepo.BusyResources(ctx, models.ResourceVehicle, day, clock, excludeRideID)
	if err != nil {
		return nil, classify(err)
	}

	taken := idSet(busy)
	result := make([]*models.AvailableVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		available := !taken[v.ID] && v.Status != models.VehicleStatusMaintenance
		result = append(result, &models.AvailableVehicle{Vehicle: v, IsAvailable: available})
	}
	return result, nil
}

func parseSlot(date, clock string) (time.Time, string, error) {
	clock = strings.TrimSpace(clock)
	day, err := lifecycle.ParseScheduledDate(strings.TrimSpace(date))
	if err != nil || !utils.IsValidClockTime(clock) {
		return time.Time{}, "", errSlotRequired
	}
	return day, clock, nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
