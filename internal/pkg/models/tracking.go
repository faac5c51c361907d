package models

import "time"

// VehiclePosition is the last reported GPS fix of a vehicle
type VehiclePosition struct {
	VehicleNumber string    `json:"vehicleNumber"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Speed         float64   `json:"speed"`
	Heading       float64   `json:"heading"`
	Ignition      bool      `json:"ignition"`
	Geohash       string    `json:"geohash,omitempty"`
	ReportedAt    time.Time `json:"reportedAt"`
}

// TrackingSnapshot is the full fleet feed
type TrackingSnapshot struct {
	Vehicles  []VehiclePosition `json:"vehicles"`
	FetchedAt time.Time         `json:"fetchedAt"`
	Stale     bool              `json:"stale"`
}

// RideETA estimates the arrival of the assigned vehicle at the destination
type RideETA struct {
	RideCode         string          `json:"rideId"`
	VehicleNumber    string          `json:"vehicleNumber"`
	Position         VehiclePosition `json:"position"`
	DistanceKm       float64         `json:"distanceKm"`
	Minutes          int             `json:"minutes"`
	EstimatedArrival time.Time       `json:"estimatedArrival"`
}

// NearbyQuery asks for vehicles around a point, typically a ride pickup
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

// NearbyVehicle is an indexed vehicle within a NearbyQuery radius
type NearbyVehicle struct {
	VehicleNumber string  `json:"vehicleNumber"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	DistanceKm    float64 `json:"distanceKm"`
}
