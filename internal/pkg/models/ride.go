package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle status of a ride
type RideStatus string

const (
	RideStatusPending       RideStatus = "pending"
	RideStatusAwaitingPM    RideStatus = "awaiting_pm" // legacy alias of awaiting_admin, never written
	RideStatusAwaitingAdmin RideStatus = "awaiting_admin"
	RideStatusPMApproved    RideStatus = "pm_approved"
	RideStatusApproved      RideStatus = "approved"
	RideStatusRejected      RideStatus = "rejected"
	RideStatusAssigned      RideStatus = "assigned"
	RideStatusInProgress    RideStatus = "in_progress"
	RideStatusCompleted     RideStatus = "completed"
	RideStatusCancelled     RideStatus = "cancelled"
)

var rideStatuses = map[RideStatus]struct{}{
	RideStatusPending:       {},
	RideStatusAwaitingPM:    {},
	RideStatusAwaitingAdmin: {},
	RideStatusPMApproved:    {},
	RideStatusApproved:      {},
	RideStatusRejected:      {},
	RideStatusAssigned:      {},
	RideStatusInProgress:    {},
	RideStatusCompleted:     {},
	RideStatusCancelled:     {},
}

// Valid reports whether s is a known status
func (s RideStatus) Valid() bool {
	_, ok := rideStatuses[s]
	return ok
}

// IsAwaitingApproval treats the legacy awaiting_pm status the same as awaiting_admin.
func (s RideStatus) IsAwaitingApproval() bool {
	return s == RideStatusAwaitingAdmin || s == RideStatusAwaitingPM
}

// IsApproved covers both the current and the legacy approved states.
func (s RideStatus) IsApproved() bool {
	return s == RideStatusApproved || s == RideStatusPMApproved
}

// LiveRideStatuses are counted against MaxLiveRidesPerUser
var LiveRideStatuses = []RideStatus{
	RideStatusPending,
	RideStatusAwaitingPM,
	RideStatusAwaitingAdmin,
	RideStatusPMApproved,
	RideStatusApproved,
	RideStatusAssigned,
}

// ActiveRideStatuses hold a driver and vehicle
var ActiveRideStatuses = []RideStatus{
	RideStatusAssigned,
	RideStatusInProgress,
}

// AwaitingApprovalStatuses includes the legacy alias
var AwaitingApprovalStatuses = []RideStatus{
	RideStatusAwaitingAdmin,
	RideStatusAwaitingPM,
}

// RideType distinguishes single legs from round trips
type RideType string

const (
	RideTypeOneWay RideType = "one_way"
	RideTypeReturn RideType = "return"
)

// Valid reports whether t is a known ride type
func (t RideType) Valid() bool {
	return t == RideTypeOneWay || t == RideTypeReturn
}

// Coordinates is a WGS84 point
type Coordinates struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Location is an address with coordinates
type Location struct {
	Address     string      `json:"address" db:"address"`
	Coordinates Coordinates `json:"coordinates" db:"coordinates"`
}

// Ride represents a ride request and its whole lifecycle
type Ride struct {
	ID       uuid.UUID `json:"id" db:"id"`
	RideCode string    `json:"rideId" db:"ride_code"`

	RequesterID   uuid.UUID `json:"requester" db:"requester_id"`
	RequesterRole Role      `json:"requesterRole" db:"requester_role"`

	RideType            RideType `json:"rideType" db:"ride_type"`
	PickupLocation      Location `json:"pickupLocation" db:"pickup"`
	DestinationLocation Location `json:"destinationLocation" db:"destination"`
	Distance            float64  `json:"distance" db:"distance"`
	CalculatedDistance  float64  `json:"calculatedDistance" db:"calculated_distance"`

	ScheduledDate time.Time `json:"scheduledDate" db:"scheduled_date"`
	ScheduledTime string    `json:"scheduledTime" db:"scheduled_time"`

	Status             RideStatus `json:"status" db:"status"`
	RequiresPMApproval bool       `json:"requiresPMApproval" db:"requires_pm_approval"`
	IsPMApproved       bool       `json:"isPMApproved" db:"is_pm_approved"`
	IsAdminApproved    bool       `json:"isAdminApproved" db:"is_admin_approved"`

	AssignedDriverID  *uuid.UUID `json:"assignedDriver" db:"assigned_driver_id"`
	AssignedVehicleID *uuid.UUID `json:"assignedVehicle" db:"assigned_vehicle_id"`
	PreviousDriverID  *uuid.UUID `json:"previousDriver,omitempty" db:"previous_driver_id"`
	PreviousVehicleID *uuid.UUID `json:"previousVehicle,omitempty" db:"previous_vehicle_id"`

	StartMileage   *float64   `json:"startMileage,omitempty" db:"start_mileage"`
	EndMileage     *float64   `json:"endMileage,omitempty" db:"end_mileage"`
	ActualDistance *float64   `json:"actualDistance,omitempty" db:"actual_distance"`
	StartTime      *time.Time `json:"startTime,omitempty" db:"start_time"`
	EndTime        *time.Time `json:"endTime,omitempty" db:"end_time"`

	PMApproval    Approval  `json:"pmApproval" db:"pm"`
	AdminApproval Approval  `json:"adminApproval" db:"admin"`
	Rejection     Rejection `json:"rejection" db:"rejection"`

	Notes     string    `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Approval is the audit record of one approval tier
type Approval struct {
	ApprovedBy *uuid.UUID `json:"approvedBy,omitempty" db:"approved_by"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty" db:"approved_at"`
	Note       *string    `json:"note,omitempty" db:"note"`
}

// Rejection is the audit record of a rejected ride
type Rejection struct {
	RejectedBy *uuid.UUID `json:"rejectedBy,omitempty" db:"rejected_by"`
	Role       *Role      `json:"role,omitempty" db:"role"`
	RejectedAt *time.Time `json:"rejectedAt,omitempty" db:"rejected_at"`
	Reason     *string    `json:"reason,omitempty" db:"reason"`
}

// IsAssignedTo reports whether userID is the assigned driver
func (r *Ride) IsAssignedTo(userID uuid.UUID) bool {
	return r.AssignedDriverID != nil && *r.AssignedDriverID == userID
}

// CreateRideRequest is the payload of POST /api/rides
type CreateRideRequest struct {
	RideType            RideType `json:"rideType"`
	PickupLocation      Location `json:"pickupLocation"`
	DestinationLocation Location `json:"destinationLocation"`
	ScheduledDate       string   `json:"scheduledDate"`
	ScheduledTime       string   `json:"scheduledTime"`
	Distance            *float64 `json:"distance,omitempty"`
	Notes               string   `json:"notes,omitempty"`
}

// ApprovalRequest carries the optional admin note
type ApprovalRequest struct {
	Note string `json:"note"`
}

// RejectionRequest carries the optional rejection reason
type RejectionRequest struct {
	Reason string `json:"reason"`
}

// AssignmentRequest selects the driver and vehicle for a ride
type AssignmentRequest struct {
	DriverID  uuid.UUID `json:"driverId"`
	VehicleID uuid.UUID `json:"vehicleId"`
}

// StartRideRequest is sent by the driver when the trip begins
type StartRideRequest struct {
	StartMileage *float64 `json:"startMileage"`
}

// CompleteRideRequest is sent by the driver when the trip ends
type CompleteRideRequest struct {
	EndMileage *float64 `json:"endMileage"`
}

// RideFilter narrows ride listings
type RideFilter struct {
	RequesterID *uuid.UUID
	DriverID    *uuid.UUID
	Statuses    []RideStatus
	StartDate   *time.Time
	EndDate     *time.Time
	// PMView adds rides that need PM attention to the requester's own rides
	PMView bool
	Page   int
	Limit  int
}

// Offset returns the SQL offset for the filter's page
func (f RideFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// RideList is a paginated listing
type RideList struct {
	Rides      []*Ride `json:"rides"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
}

// RideStats summarizes a user's rides
type RideStats struct {
	Total         int     `json:"total"`
	Completed     int     `json:"completed"`
	Live          int     `json:"pending"`
	TotalDistance float64 `json:"totalDistance"`
}

// DriverDailyRides is the driver's schedule for one day
type DriverDailyRides struct {
	Date      time.Time `json:"date"`
	Rides     []*Ride   `json:"rides"`
	Active    int       `json:"active"`
	Completed int       `json:"completed"`
}

// CompletionResult is returned by the complete operation
type CompletionResult struct {
	Ride           *Ride   `json:"ride"`
	ActualDistance float64 `json:"actualDistance"`
}

// AvailableDriver is a driver annotated with slot availability
type AvailableDriver struct {
	*User
	IsAvailable bool `json:"isAvailable"`
}

// AvailableVehicle is a vehicle annotated with slot availability
type AvailableVehicle struct {
	*Vehicle
	IsAvailable bool `json:"isAvailable"`
}

// Resource names the assignment column a conflict check runs against
type Resource string

const (
	ResourceDriver  Resource = "driver"
	ResourceVehicle Resource = "vehicle"
)

// ReasonText returns the rejection reason or an empty string
func (r Rejection) ReasonText() string {
	if r.Reason == nil {
		return ""
	}
	return *r.Reason
}
