// Package lifecycle holds the ride state machine. Every event has one pure
// function that validates the current ride against the event's guard and
// returns the next state as a Transition; nothing here touches storage.
package lifecycle

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
)

// Event names a ride lifecycle event
type Event string

const (
	EventCreate       Event = "create"
	EventPMApprove    Event = "pm_approve"
	EventPMReject     Event = "pm_reject"
	EventAdminApprove Event = "admin_approve"
	EventAdminReject  Event = "admin_reject"
	EventAssign       Event = "assign"
	EventReassign     Event = "reassign"
	EventStart        Event = "start"
	EventComplete     Event = "complete"
	EventCancel       Event = "cancel"
)

var eventTypes = map[Event]models.RideEventType{
	EventCreate:       models.RideEventCreated,
	EventPMApprove:    models.RideEventPMApproved,
	EventPMReject:     models.RideEventPMRejected,
	EventAdminApprove: models.RideEventAdminApproved,
	EventAdminReject:  models.RideEventAdminRejected,
	EventAssign:       models.RideEventAssigned,
	EventReassign:     models.RideEventReassigned,
	EventStart:        models.RideEventStarted,
	EventComplete:     models.RideEventCompleted,
	EventCancel:       models.RideEventCancelled,
}

// EventType is the published event type of e
func (e Event) EventType() models.RideEventType {
	return eventTypes[e]
}

// Transition is a validated state change ready to be persisted. The stored
// row must still be in one of From for the write to apply; an empty From
// means the ride is new.
type Transition struct {
	Event  Event
	From   []models.RideStatus
	Before *models.Ride
	Ride   *models.Ride
	Actor  models.Actor
	Note   string
}

// DriverChanged reports whether the transition moves the ride to another driver
func (t Transition) DriverChanged() bool {
	return !sameID(beforeField(t.Before, func(r *models.Ride) *uuid.UUID { return r.AssignedDriverID }), t.Ride.AssignedDriverID)
}

// VehicleChanged reports whether the transition moves the ride to another vehicle
func (t Transition) VehicleChanged() bool {
	return !sameID(beforeField(t.Before, func(r *models.Ride) *uuid.UUID { return r.AssignedVehicleID }), t.Ride.AssignedVehicleID)
}

func beforeField(r *models.Ride, f func(*models.Ride) *uuid.UUID) *uuid.UUID {
	if r == nil {
		return nil
	}
	return f(r)
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Policy carries the configurable limits of the lifecycle
type Policy struct {
	PMThresholdKm float64
	MaxLiveRides  int
	WindowDays    int
	Location      *time.Location
}

// NewPolicy builds a Policy from config, filling zero values with defaults
func NewPolicy(cfg models.DispatchConfig) Policy {
	p := Policy{
		PMThresholdKm: cfg.PMApprovalThresholdKm,
		MaxLiveRides:  cfg.MaxLiveRidesPerUser,
		WindowDays:    cfg.BookingWindowDays,
		Location:      cfg.Location(),
	}
	if p.PMThresholdKm <= 0 {
		p.PMThresholdKm = 15
	}
	if p.MaxLiveRides <= 0 {
		p.MaxLiveRides = 3
	}
	if p.WindowDays <= 0 {
		p.WindowDays = 14
	}
	return p
}

// Create validates a ride request and builds the new ride. liveRides is the
// requester's current live-ride count; it is only checked for role user.
// The ride code is left empty for the caller to allocate.
func (p Policy) Create(req models.CreateRideRequest, actor models.Actor, liveRides int, now time.Time) (Transition, error) {
	if !req.RideType.Valid() {
		return Transition{}, ErrInvalidRideType
	}
	if !validLocation(req.PickupLocation) || !validLocation(req.DestinationLocation) {
		return Transition{}, ErrInvalidLocation
	}
	date, err := ParseScheduledDate(req.ScheduledDate)
	if err != nil {
		return Transition{}, err
	}
	if !utils.IsValidClockTime(req.ScheduledTime) {
		return Transition{}, ErrInvalidTime
	}
	if !validDistance(req.Distance) {
		return Transition{}, ErrInvalidDistance
	}
	if err := p.CheckBookingWindow(date, now); err != nil {
		return Transition{}, err
	}
	if actor.Role == models.RoleUser && liveRides >= p.MaxLiveRides {
		return Transition{}, ErrLiveRideCap.WithMessage("You can only have %d pending ride requests at a time", p.MaxLiveRides)
	}

	leg := Distance(req.PickupLocation.Coordinates, req.DestinationLocation.Coordinates, req.Distance)
	calculated := CalculatedDistance(req.RideType, leg)

	ride := &models.Ride{
		ID:                  uuid.New(),
		RequesterID:         actor.UserID,
		RequesterRole:       actor.Role,
		RideType:            req.RideType,
		PickupLocation:      trimLocation(req.PickupLocation),
		DestinationLocation: trimLocation(req.DestinationLocation),
		Distance:            leg,
		CalculatedDistance:  calculated,
		ScheduledDate:       date,
		ScheduledTime:       req.ScheduledTime,
		Notes:               utils.SanitizeString(req.Notes),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	ride.RequiresPMApproval = calculated > p.PMThresholdKm
	if actor.Role == models.RoleProjectManager {
		// a PM's own request needs no further approval
		ride.Status = models.RideStatusApproved
		ride.IsPMApproved = true
		ride.PMApproval = models.Approval{ApprovedBy: idPtr(actor.UserID), ApprovedAt: timePtr(now)}
	} else {
		ride.Status = models.RideStatusAwaitingAdmin
	}

	return Transition{Event: EventCreate, Ride: ride, Actor: actor}, nil
}

// PMApprove clears a long-distance ride on behalf of the project manager.
// The first approver wins: a ride that already left the awaiting state
// fails the guard.
func PMApprove(ride *models.Ride, actor models.Actor, now time.Time) (Transition, error) {
	if actor.Role != models.RoleProjectManager {
		return Transition{}, ErrRoleNotAllowed
	}
	if !ride.Status.IsAwaitingApproval() {
		return Transition{}, ErrNotAwaitingPM
	}
	if !ride.RequiresPMApproval {
		return Transition{}, ErrPMNotRequired
	}

	next := clone(ride, now)
	next.Status = models.RideStatusApproved
	next.IsPMApproved = true
	next.PMApproval = models.Approval{ApprovedBy: idPtr(actor.UserID), ApprovedAt: timePtr(now)}

	return Transition{Event: EventPMApprove, From: models.AwaitingApprovalStatuses, Before: ride, Ride: next, Actor: actor}, nil
}

// PMReject rejects a long-distance ride on behalf of the project manager
func PMReject(ride *models.Ride, actor models.Actor, reason string, now time.Time) (Transition, error) {
	if actor.Role != models.RoleProjectManager {
		return Transition{}, ErrRoleNotAllowed
	}
	if !ride.Status.IsAwaitingApproval() {
		return Transition{}, ErrCannotReject
	}
	if !ride.RequiresPMApproval {
		return Transition{}, ErrPMNotRequired
	}

	next := reject(ride, actor, reason, now)
	return Transition{Event: EventPMReject, From: models.AwaitingApprovalStatuses, Before: ride, Ride: next, Actor: actor, Note: next.Rejection.ReasonText()}, nil
}

// AdminApprove clears a ride on behalf of the admin. Long-distance rides
// need a note.
func (p Policy) AdminApprove(ride *models.Ride, actor models.Actor, note string, now time.Time) (Transition, error) {
	if actor.Role != models.RoleAdmin {
		return Transition{}, ErrRoleNotAllowed
	}
	if !ride.Status.IsAwaitingApproval() {
		return Transition{}, ErrNotAwaitingAdmin
	}
	note = strings.TrimSpace(note)
	if ride.RequiresPMApproval && note == "" {
		return Transition{}, ErrNoteRequired.WithMessage("Approval note is required for long-distance rides (>%gkm)", p.PMThresholdKm)
	}

	next := clone(ride, now)
	next.Status = models.RideStatusApproved
	next.IsAdminApproved = true
	next.AdminApproval = models.Approval{ApprovedBy: idPtr(actor.UserID), ApprovedAt: timePtr(now), Note: strPtr(note)}

	return Transition{Event: EventAdminApprove, From: models.AwaitingApprovalStatuses, Before: ride, Ride: next, Actor: actor, Note: note}, nil
}

var adminRejectable = []models.RideStatus{
	models.RideStatusAwaitingAdmin,
	models.RideStatusAwaitingPM,
	models.RideStatusApproved,
	models.RideStatusPMApproved,
}

// AdminReject rejects a ride that is awaiting approval or approved but not yet assigned
func AdminReject(ride *models.Ride, actor models.Actor, reason string, now time.Time) (Transition, error) {
	if actor.Role != models.RoleAdmin {
		return Transition{}, ErrRoleNotAllowed
	}
	if !statusIn(ride.Status, adminRejectable) {
		return Transition{}, ErrCannotReject
	}

	next := reject(ride, actor, reason, now)
	return Transition{Event: EventAdminReject, From: adminRejectable, Before: ride, Ride: next, Actor: actor, Note: next.Rejection.ReasonText()}, nil
}

var assignable = []models.RideStatus{
	models.RideStatusApproved,
	models.RideStatusPMApproved,
}

// CanAssign runs the role and status guards of Assign, so callers can
// refuse before loading any driver or vehicle
func CanAssign(ride *models.Ride, actor models.Actor) error {
	if actor.Role != models.RoleAdmin {
		return ErrRoleNotAllowed
	}
	if !ride.Status.IsApproved() {
		return ErrNotApproved
	}
	return nil
}

// Assign pairs an approved ride with a driver and a vehicle. Slot conflicts
// are checked by the caller against storage.
func Assign(ride *models.Ride, actor models.Actor, driver *models.User, vehicle *models.Vehicle, now time.Time) (Transition, error) {
	if err := CanAssign(ride, actor); err != nil {
		return Transition{}, err
	}
	if err := checkResources(ride, driver, vehicle); err != nil {
		return Transition{}, err
	}

	next := clone(ride, now)
	next.Status = models.RideStatusAssigned
	next.AssignedDriverID = idPtr(driver.ID)
	next.AssignedVehicleID = idPtr(vehicle.ID)

	return Transition{Event: EventAssign, From: assignable, Before: ride, Ride: next, Actor: actor}, nil
}

// CanReassign runs the role and status guards of Reassign
func CanReassign(ride *models.Ride, actor models.Actor) error {
	if actor.Role != models.RoleAdmin {
		return ErrRoleNotAllowed
	}
	if ride.Status != models.RideStatusAssigned {
		return ErrNotAssigned
	}
	return nil
}

// Reassign swaps the driver and vehicle of an assigned ride and records the
// previous pair.
func Reassign(ride *models.Ride, actor models.Actor, driver *models.User, vehicle *models.Vehicle, now time.Time) (Transition, error) {
	if err := CanReassign(ride, actor); err != nil {
		return Transition{}, err
	}
	if err := checkResources(ride, driver, vehicle); err != nil {
		return Transition{}, err
	}

	next := clone(ride, now)
	next.PreviousDriverID = ride.AssignedDriverID
	next.PreviousVehicleID = ride.AssignedVehicleID
	next.AssignedDriverID = idPtr(driver.ID)
	next.AssignedVehicleID = idPtr(vehicle.ID)

	return Transition{Event: EventReassign, From: []models.RideStatus{models.RideStatusAssigned}, Before: ride, Ride: next, Actor: actor}, nil
}

// Start moves an assigned ride into progress for its driver
func Start(ride *models.Ride, actor models.Actor, startMileage *float64, now time.Time) (Transition, error) {
	if startMileage == nil {
		return Transition{}, ErrStartMileage
	}
	if *startMileage < 0 {
		return Transition{}, ErrStartMileage.WithMessage("Start mileage cannot be negative")
	}
	if !ride.IsAssignedTo(actor.UserID) {
		return Transition{}, ErrNotAssignedDriver
	}
	if ride.Status != models.RideStatusAssigned {
		return Transition{}, ErrCannotStart
	}

	next := clone(ride, now)
	next.Status = models.RideStatusInProgress
	next.StartMileage = floatPtr(*startMileage)
	next.StartTime = timePtr(now)

	return Transition{Event: EventStart, From: []models.RideStatus{models.RideStatusAssigned}, Before: ride, Ride: next, Actor: actor}, nil
}

// Complete finishes an in-progress ride. The actual distance is the odometer
// difference and is kept at full precision.
func Complete(ride *models.Ride, actor models.Actor, endMileage *float64, now time.Time) (Transition, error) {
	if endMileage == nil {
		return Transition{}, ErrEndMileage
	}
	if !ride.IsAssignedTo(actor.UserID) {
		return Transition{}, ErrNotAssignedDriver
	}
	if ride.Status != models.RideStatusInProgress {
		return Transition{}, ErrNotInProgress
	}
	var start float64
	if ride.StartMileage != nil {
		start = *ride.StartMileage
	}
	if *endMileage < start {
		return Transition{}, ErrMileageBackwards
	}

	next := clone(ride, now)
	next.Status = models.RideStatusCompleted
	next.EndMileage = floatPtr(*endMileage)
	next.ActualDistance = floatPtr(*endMileage - start)
	next.EndTime = timePtr(now)

	return Transition{Event: EventComplete, From: []models.RideStatus{models.RideStatusInProgress}, Before: ride, Ride: next, Actor: actor}, nil
}

var cancellable = []models.RideStatus{
	models.RideStatusPending,
	models.RideStatusAwaitingPM,
	models.RideStatusAwaitingAdmin,
}

// Cancel withdraws a ride that has not been approved yet. Only the requester
// or an admin may cancel.
func Cancel(ride *models.Ride, actor models.Actor, now time.Time) (Transition, error) {
	if ride.RequesterID != actor.UserID && actor.Role != models.RoleAdmin {
		return Transition{}, ErrCancelForbidden
	}
	if !statusIn(ride.Status, cancellable) {
		return Transition{}, ErrCannotCancel
	}

	next := clone(ride, now)
	next.Status = models.RideStatusCancelled

	return Transition{Event: EventCancel, From: cancellable, Before: ride, Ride: next, Actor: actor}, nil
}

func checkResources(ride *models.Ride, driver *models.User, vehicle *models.Vehicle) error {
	if driver == nil || !driver.IsDriver() || !driver.IsActive {
		return ErrInvalidDriver
	}
	if vehicle == nil || !vehicle.IsActive {
		return ErrInvalidVehicle
	}
	// a vehicle already on this ride keeps it even if flagged since
	if vehicle.Status == models.VehicleStatusMaintenance && !sameID(ride.AssignedVehicleID, &vehicle.ID) {
		return ErrVehicleMaintenance
	}
	return nil
}

func reject(ride *models.Ride, actor models.Actor, reason string, now time.Time) *models.Ride {
	next := clone(ride, now)
	next.Status = models.RideStatusRejected
	role := actor.Role
	next.Rejection = models.Rejection{
		RejectedBy: idPtr(actor.UserID),
		Role:       &role,
		RejectedAt: timePtr(now),
		Reason:     strPtr(strings.TrimSpace(reason)),
	}
	return next
}

func clone(ride *models.Ride, now time.Time) *models.Ride {
	next := *ride
	next.UpdatedAt = now
	return &next
}

func validLocation(l models.Location) bool {
	return utils.SanitizeString(l.Address) != "" && utils.ValidCoordinates(l.Coordinates.Lat, l.Coordinates.Lng)
}

func trimLocation(l models.Location) models.Location {
	l.Address = utils.SanitizeString(l.Address)
	return l
}

func statusIn(s models.RideStatus, set []models.RideStatus) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

func idPtr(id uuid.UUID) *uuid.UUID { return &id }

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }

// strPtr returns nil for empty strings so blank notes are stored as NULL
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
