package constants

// Redis key formats
const (
	KeyTrackingSnapshot = "tracking:snapshot"    // last full fleet feed
	KeyVehiclePosition  = "tracking:vehicle:%s"  // Format: tracking:vehicle:{normalized_number}
	KeyVehicleGeo       = "vehicles:geo"         // geo set of vehicle positions
	KeyDashboardStats   = "reports:dashboard:%s" // Format: reports:dashboard:{admin|pm:<user_id>}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldSpeed     = "speed"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
