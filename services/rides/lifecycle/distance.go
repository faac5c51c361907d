package lifecycle

import (
	"math"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
)

// Distance returns the one-leg distance in km between pickup and destination,
// rounded to one decimal. A positive supplied distance (road distance from the
// client) wins over the straight-line estimate.
func Distance(pickup, destination models.Coordinates, supplied *float64) float64 {
	if supplied != nil && *supplied > 0 {
		return *supplied
	}
	return utils.Round1(utils.CalculateDistance(
		utils.GeoPoint{Latitude: pickup.Lat, Longitude: pickup.Lng},
		utils.GeoPoint{Latitude: destination.Lat, Longitude: destination.Lng},
	))
}

// CalculatedDistance doubles the leg for return trips
func CalculatedDistance(rideType models.RideType, leg float64) float64 {
	if rideType == models.RideTypeReturn {
		return leg * 2
	}
	return leg
}

func validDistance(d *float64) bool {
	if d == nil {
		return true
	}
	return !math.IsNaN(*d) && !math.IsInf(*d, 0) && *d >= 0
}
