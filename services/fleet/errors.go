package fleet

import "github.com/piresc/fleetdispatch/internal/pkg/apperror"

// Errors returned by the fleet repositories and usecases
var (
	ErrUserNotFound    = apperror.NotFound("user_not_found", "User not found")
	ErrVehicleNotFound = apperror.NotFound("vehicle_not_found", "Vehicle not found")

	ErrInvalidCredentials = apperror.Unauthorized("invalid_credentials", "Invalid email or password")
	ErrAccountInactive    = apperror.Unauthorized("account_inactive", "Account is deactivated")

	ErrEmailTaken         = apperror.Guard("email_taken", "Email is already registered")
	ErrPhoneTaken         = apperror.Guard("phone_taken", "Phone number is already registered")
	ErrVehicleNumberTaken = apperror.Guard("vehicle_number_taken", "Vehicle number already exists")

	ErrSystemUser      = apperror.Guard("system_user", "Cannot modify system users")
	ErrUserHasRides    = apperror.Guard("user_has_rides", "User has live or in-progress rides")
	ErrVehicleHasRides = apperror.Guard("vehicle_has_rides", "Vehicle has active rides")
	ErrSelfDelete      = apperror.Guard("self_delete", "You cannot delete your own account")

	ErrInvalidName     = apperror.Validation("invalid_name", "Name is required")
	ErrInvalidEmail    = apperror.Validation("invalid_email", "A valid email is required")
	ErrInvalidPhone    = apperror.Validation("invalid_phone", "Phone must be 10 digits starting with 0")
	ErrInvalidPassword = apperror.Validation("invalid_password", "Password must be at least 8 characters")
	ErrInvalidRole     = apperror.Validation("invalid_role", "Role is not recognised")
	ErrInvalidVehicle  = apperror.Validation("invalid_vehicle", "Vehicle number and a type of Car, Van, Bus or SUV are required")
)
