package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// compose renders the title and body a recipient sees for evt
func compose(evt *models.RideEvent, recipient uuid.UUID) (string, string) {
	route := fmt.Sprintf("%s to %s", evt.PickupAddress, evt.DestinationAddress)
	slot := fmt.Sprintf("%s %s", evt.ScheduledDate, evt.ScheduledTime)
	ref := evt.RideCode

	switch evt.Type {
	case models.RideEventCreated:
		if evt.Status.IsApproved() {
			return "New approved ride", fmt.Sprintf("Ride %s (%s, %.1f km) on %s was booked by a project manager and is ready for assignment.", ref, route, evt.CalculatedDistance, slot)
		}
		if evt.RequiresPMApproval {
			return "New long-distance ride request",
				fmt.Sprintf("Ride %s (%s, %.1f km) on %s needs approval.", ref, route, evt.CalculatedDistance, slot)
		}
		return "New ride request", fmt.Sprintf("Ride %s (%s) on %s needs approval.", ref, route, slot)

	case models.RideEventPMApproved:
		return "Ride approved by project manager", fmt.Sprintf("Ride %s on %s was approved and is ready for assignment.", ref, slot)

	case models.RideEventPMRejected:
		return "Ride rejected by project manager", rejection(ref, evt.Note)

	case models.RideEventAdminApproved:
		return "Ride approved", fmt.Sprintf("Ride %s on %s was approved.", ref, slot)

	case models.RideEventAdminRejected:
		return "Ride rejected", rejection(ref, evt.Note)

	case models.RideEventAssigned:
		if isUser(evt.DriverID, recipient) {
			return "New ride assignment", fmt.Sprintf("You are driving ride %s (%s) on %s.", ref, route, slot)
		}
		return "Driver assigned", fmt.Sprintf("A driver and vehicle were assigned to ride %s on %s.", ref, slot)

	case models.RideEventReassigned:
		switch {
		case isUser(evt.PreviousDriverID, recipient) && !isUser(evt.DriverID, recipient):
			return "Ride reassigned", fmt.Sprintf("You are no longer assigned to ride %s on %s.", ref, slot)
		case isUser(evt.DriverID, recipient):
			return "New ride assignment", fmt.Sprintf("You are driving ride %s (%s) on %s.", ref, route, slot)
		}
		return "Ride reassigned", fmt.Sprintf("Ride %s on %s has a new driver or vehicle.", ref, slot)

	case models.RideEventStarted:
		return "Ride started", fmt.Sprintf("Your ride %s is on the way.", ref)

	case models.RideEventCompleted:
		if evt.ActualDistance != nil {
			return "Ride completed", fmt.Sprintf("Ride %s was completed. Distance travelled: %.1f km.", ref, *evt.ActualDistance)
		}
		return "Ride completed", fmt.Sprintf("Ride %s was completed.", ref)

	case models.RideEventCancelled:
		return "Ride cancelled", fmt.Sprintf("Ride %s on %s was cancelled.", ref, slot)
	}
	return "Ride update", fmt.Sprintf("Ride %s changed status to %s.", ref, evt.Status)
}

func rejection(ref, reason string) string {
	if reason == "" {
		return fmt.Sprintf("Ride %s was rejected.", ref)
	}
	return fmt.Sprintf("Ride %s was rejected: %s", ref, reason)
}

func isUser(id *uuid.UUID, recipient uuid.UUID) bool {
	return id != nil && *id == recipient
}
