package rides

import (
	"errors"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
)

// Errors shared between the ride repository and its callers
var (
	// ErrDuplicateRideCode is returned by CreateRide when the generated code is taken
	ErrDuplicateRideCode = errors.New("ride code already exists")
	// ErrStatusChanged is returned by UpdateRide when the row left the expected statuses
	ErrStatusChanged = lifecycle.ErrStaleStatus

	ErrRideNotFound    = lifecycle.ErrRideNotFound
	ErrUserNotFound    = apperror.NotFound("user_not_found", "User not found")
	ErrVehicleNotFound = apperror.NotFound("vehicle_not_found", "Vehicle not found")
)
