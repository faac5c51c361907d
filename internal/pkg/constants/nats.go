package constants

// JetStream streams
const (
	StreamRideEvents = "RIDE_EVENTS"
)

// NATS subjects, one per committed ride transition
const (
	SubjectRideAll           = "ride.>"
	SubjectRideCreated       = "ride.created"
	SubjectRidePMApproved    = "ride.pm_approved"
	SubjectRidePMRejected    = "ride.pm_rejected"
	SubjectRideAdminApproved = "ride.admin_approved"
	SubjectRideAdminRejected = "ride.admin_rejected"
	SubjectRideAssigned      = "ride.assigned"
	SubjectRideReassigned    = "ride.reassigned"
	SubjectRideStarted       = "ride.started"
	SubjectRideCompleted     = "ride.completed"
	SubjectRideCancelled     = "ride.cancelled"
)
