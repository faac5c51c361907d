package usecase

import (
	"github.com/google/uuid"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// audience is who hears about an event: everyone in roles plus the listed users
type audience struct {
	roles []models.Role
	ids   []uuid.UUID
}

// audienceFor maps a ride event to its recipients. Long rides also reach
// project managers on creation and on the admin decision.
func audienceFor(evt *models.RideEvent) audience {
	var a audience
	pmIfLong := func() {
		if evt.RequiresPMApproval {
			a.roles = append(a.roles, models.RoleProjectManager)
		}
	}

	switch evt.Type {
	case models.RideEventCreated:
		a.roles = append(a.roles, models.RoleAdmin)
		pmIfLong()
	case models.RideEventPMApproved, models.RideEventPMRejected, models.RideEventCancelled:
		a.roles = append(a.roles, models.RoleAdmin)
		a.ids = append(a.ids, evt.RequesterID)
	case models.RideEventAdminApproved, models.RideEventAdminRejected:
		a.ids = append(a.ids, evt.RequesterID)
		pmIfLong()
	case models.RideEventAssigned:
		a.ids = append(a.ids, evt.RequesterID)
		if evt.DriverID != nil {
			a.ids = append(a.ids, *evt.DriverID)
		}
	case models.RideEventReassigned:
		a.ids = append(a.ids, evt.RequesterID)
		if evt.DriverID != nil {
			a.ids = append(a.ids, *evt.DriverID)
		}
		if evt.PreviousDriverID != nil {
			a.ids = append(a.ids, *evt.PreviousDriverID)
		}
	case models.RideEventStarted, models.RideEventCompleted:
		a.ids = append(a.ids, evt.RequesterID)
	}
	return a
}

// mergeRecipients dedupes users by ID in first-seen order and drops the actor
func mergeRecipients(actor uuid.UUID, groups ...[]*models.User) []*models.User {
	seen := map[uuid.UUID]struct{}{actor: {}}
	var out []*models.User
	for _, group := range groups {
		for _, u := range group {
			if _, dup := seen[u.ID]; dup {
				continue
			}
			seen[u.ID] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}
