package tracking

import "github.com/piresc/fleetdispatch/internal/pkg/apperror"

var (
	ErrPositionNotFound = apperror.NotFound("position_not_found", "No tracking data for this vehicle")
	ErrTrackingDown     = apperror.New(apperror.KindDownstream, "tracking_unavailable", "Tracking service is unavailable")
	ErrInvalidPoint     = apperror.Validation("invalid_coordinates", "Latitude and longitude are out of range")
)
