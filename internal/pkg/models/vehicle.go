package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleStatus is the operational status of a vehicle
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusBusy        VehicleStatus = "busy"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// VehicleType is the body type of a vehicle
type VehicleType string

const (
	VehicleTypeCar VehicleType = "Car"
	VehicleTypeVan VehicleType = "Van"
	VehicleTypeBus VehicleType = "Bus"
	VehicleTypeSUV VehicleType = "SUV"
)

// Valid reports whether t is a known vehicle type
func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeCar, VehicleTypeVan, VehicleTypeBus, VehicleTypeSUV:
		return true
	}
	return false
}

// Vehicle is a fleet vehicle and its running counters
type Vehicle struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	VehicleNumber    string        `json:"vehicleNumber" db:"vehicle_number"`
	Type             VehicleType   `json:"type" db:"type"`
	Status           VehicleStatus `json:"status" db:"status"`
	CurrentDriverID  *uuid.UUID    `json:"currentDriver,omitempty" db:"current_driver_id"`
	CurrentRideID    *uuid.UUID    `json:"currentRide,omitempty" db:"current_ride_id"`
	TotalMileage     float64       `json:"totalMileage" db:"total_mileage"`
	MonthlyMileage   float64       `json:"monthlyMileage" db:"monthly_mileage"`
	LastMileageReset time.Time     `json:"lastMileageReset" db:"last_mileage_reset"`
	TotalRides       int           `json:"totalRides" db:"total_rides"`
	IsActive         bool          `json:"isActive" db:"is_active"`
	CreatedAt        time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time     `json:"updatedAt" db:"updated_at"`
}

// VehicleRequest creates or edits a vehicle
type VehicleRequest struct {
	VehicleNumber string      `json:"vehicleNumber"`
	Type          VehicleType `json:"type"`
}

// VehicleFilter narrows vehicle listings
type VehicleFilter struct {
	Status *VehicleStatus
	Type   *VehicleType
}

// VehicleCounts groups active vehicles by status
type VehicleCounts struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Busy        int `json:"busy"`
	Maintenance int `json:"maintenance"`
}
