package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// Attribute names set on the request's New Relic transaction
const (
	AttrRequestID = "request_id"
	AttrUserID    = "user.id"
	AttrUserRole  = "user.role"
	AttrRideRef   = "ride.ref"
)

// annotate adds attributes to the transaction of c, if there is one
func annotate(c echo.Context, kv ...interface{}) {
	txn := newrelic.FromContext(c.Request().Context())
	if txn == nil {
		return
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			txn.AddAttribute(key, kv[i+1])
		}
	}
}

// TagActor records who made the request
func TagActor(c echo.Context, actor models.Actor) {
	annotate(c, AttrUserID, actor.UserID.String(), AttrUserRole, string(actor.Role))
}

// TagRide records the ride id or code a handler acts on
func TagRide(c echo.Context, ref string) {
	if ref != "" {
		annotate(c, AttrRideRef, ref)
	}
}
