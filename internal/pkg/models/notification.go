package models

import (
	"time"

	"github.com/google/uuid"
)

// RideEventType identifies a committed ride transition
type RideEventType string

const (
	RideEventCreated       RideEventType = "ride_created"
	RideEventPMApproved    RideEventType = "ride_pm_approved"
	RideEventPMRejected    RideEventType = "ride_pm_rejected"
	RideEventAdminApproved RideEventType = "ride_admin_approved"
	RideEventAdminRejected RideEventType = "ride_admin_rejected"
	RideEventAssigned      RideEventType = "ride_assigned"
	RideEventReassigned    RideEventType = "ride_reassigned"
	RideEventStarted       RideEventType = "ride_started"
	RideEventCompleted     RideEventType = "ride_completed"
	RideEventCancelled     RideEventType = "ride_cancelled"
)

// RideEvent is published after a ride transition commits
type RideEvent struct {
	EventID            uuid.UUID     `json:"event_id"`
	Type               RideEventType `json:"type"`
	RideID             uuid.UUID     `json:"ride_id"`
	RideCode           string        `json:"ride_code"`
	Status             RideStatus    `json:"status"`
	RequesterID        uuid.UUID     `json:"requester_id"`
	RequiresPMApproval bool          `json:"requires_pm_approval"`
	CalculatedDistance float64       `json:"calculated_distance"`
	ScheduledDate      string        `json:"scheduled_date"`
	ScheduledTime      string        `json:"scheduled_time"`
	PickupAddress      string        `json:"pickup_address"`
	DestinationAddress string        `json:"destination_address"`
	DriverID           *uuid.UUID    `json:"driver_id,omitempty"`
	VehicleID          *uuid.UUID    `json:"vehicle_id,omitempty"`
	PreviousDriverID   *uuid.UUID    `json:"previous_driver_id,omitempty"`
	PreviousVehicleID  *uuid.UUID    `json:"previous_vehicle_id,omitempty"`
	ActualDistance     *float64      `json:"actual_distance,omitempty"`
	ActorID            uuid.UUID     `json:"actor_id"`
	ActorRole          Role          `json:"actor_role"`
	Note               string        `json:"note,omitempty"`
	OccurredAt         time.Time     `json:"occurred_at"`
}

// Notification is an in-app message stored for one recipient
type Notification struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	RecipientID uuid.UUID     `json:"recipient" db:"recipient_id"`
	Type        RideEventType `json:"type" db:"type"`
	Title       string        `json:"title" db:"title"`
	Message     string        `json:"message" db:"message"`
	RideID      *uuid.UUID    `json:"ride,omitempty" db:"ride_id"`
	EventID     uuid.UUID     `json:"-" db:"event_id"`
	IsRead      bool          `json:"isRead" db:"is_read"`
	EmailSent   bool          `json:"emailSent" db:"email_sent"`
	SMSSent     bool          `json:"smsSent" db:"sms_sent"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
}

// NotificationFilter narrows a recipient's notification feed
type NotificationFilter struct {
	RecipientID uuid.UUID
	UnreadOnly  bool
	Page        int
	Limit       int
}

// Offset returns the SQL offset for the filter's page
func (f NotificationFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// NotificationList is a paginated feed
type NotificationList struct {
	Notifications []*Notification `json:"notifications"`
	Total         int             `json:"total"`
	Unread        int             `json:"unread"`
	Page          int             `json:"page"`
}

// DeliveryChannel is an out-of-band delivery medium
type DeliveryChannel string

const (
	DeliveryEmail DeliveryChannel = "email"
	DeliverySMS   DeliveryChannel = "sms"
)

// DeliveryJob asks a downstream sender to deliver one notification
type DeliveryJob struct {
	NotificationID uuid.UUID       `json:"notification_id"`
	Channel        DeliveryChannel `json:"channel"`
	To             string          `json:"to"`
	Name           string          `json:"name"`
	Subject        string          `json:"subject"`
	Body           string          `json:"body"`
}
