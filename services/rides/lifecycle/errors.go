package lifecycle

import "github.com/piresc/fleetdispatch/internal/pkg/apperror"

// Sentinel errors returned by the transition functions. Callers may
// specialise the message with WithMessage; errors.Is still matches on code.
var (
	ErrInvalidRideType    = apperror.Validation("invalid_ride_type", "Ride type must be one_way or return")
	ErrInvalidLocation    = apperror.Validation("invalid_location", "Pickup and destination need an address and valid coordinates")
	ErrInvalidDate        = apperror.Validation("invalid_date", "Scheduled date must be YYYY-MM-DD")
	ErrInvalidTime        = apperror.Validation("invalid_time", "Scheduled time must be HH:MM")
	ErrInvalidDistance    = apperror.Validation("invalid_distance", "Distance must be a non-negative number")
	ErrOutsideWindow      = apperror.Validation("outside_booking_window", "Booking must be within 14 days from today")
	ErrPastDate           = apperror.Validation("past_date", "Cannot book rides for past dates")
	ErrLiveRideCap        = apperror.Validation("live_ride_cap", "You have reached the limit of pending ride requests")
	ErrNotAwaitingPM      = apperror.Guard("not_awaiting_pm", "This ride is not awaiting PM approval")
	ErrPMNotRequired      = apperror.Guard("pm_not_required", "This ride does not require PM approval")
	ErrCannotReject       = apperror.Guard("cannot_reject", "This ride cannot be rejected at this stage")
	ErrNotAwaitingAdmin   = apperror.Guard("not_awaiting_admin", "This ride is not awaiting admin approval")
	ErrNoteRequired       = apperror.Guard("note_required", "Approval note is required for long-distance rides")
	ErrNotApproved        = apperror.Guard("not_approved", "Ride must be approved before assignment")
	ErrInvalidDriver      = apperror.Guard("invalid_driver", "Invalid driver selected")
	ErrInvalidVehicle     = apperror.Guard("invalid_vehicle", "Invalid vehicle selected")
	ErrVehicleMaintenance = apperror.Guard("vehicle_maintenance", "Vehicle is under maintenance")
	ErrDriverConflict     = apperror.Guard("driver_conflict", "Driver is already assigned to another ride at this time")
	ErrVehicleConflict    = apperror.Guard("vehicle_conflict", "Vehicle is already assigned to another ride at this time")
	ErrNotAssigned        = apperror.Guard("not_assigned", "Only assigned rides can be reassigned")
	ErrStartMileage       = apperror.Validation("start_mileage_required", "Start mileage is required")
	ErrEndMileage         = apperror.Validation("end_mileage_required", "End mileage is required")
	ErrNotAssignedDriver  = apperror.Forbidden("not_assigned_driver", "You are not assigned to this ride")
	ErrCannotStart        = apperror.Guard("cannot_start", "Ride cannot be started at this stage")
	ErrNotInProgress      = apperror.Guard("not_in_progress", "Ride must be in progress to complete")
	ErrMileageBackwards   = apperror.Validation("mileage_backwards", "End mileage cannot be less than start mileage")
	ErrCancelForbidden    = apperror.Forbidden("cancel_forbidden", "Not authorized to cancel this ride")
	ErrCannotCancel       = apperror.Guard("cannot_cancel", "Ride can only be cancelled before it is approved")
	ErrRoleNotAllowed     = apperror.Forbidden("role_not_allowed", "Your role cannot perform this action")
	ErrRideNotFound       = apperror.NotFound("ride_not_found", "Ride not found")
	ErrStaleStatus        = apperror.Guard("stale_status", "Ride status changed, reload and try again")
	ErrRideCodeExhausted  = apperror.New(apperror.KindInternal, "ride_code_exhausted", "Could not allocate a unique ride code")
)
