package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/rides"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// rideActor returns the caller of a ride-scoped route and tags the trace
// with the ride reference.
func rideActor(c echo.Context) (models.Actor, bool) {
	middleware.TagRide(c, c.Param("id"))
	return middleware.ActorFromContext(c)
}

// CreateRide handles POST /api/rides
func (h *RidesHandler) CreateRide(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), a, req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride request created successfully", ride)
}

// ListRides handles GET /api/rides
func (h *RidesHandler) ListRides(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter, err := parseRideFilter(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	list, err := h.rideUC.ListRides(c.Request().Context(), a, filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetRide handles GET /api/rides/:id
func (h *RidesHandler) GetRide(c echo.Context) error {
	a, ok := rideActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	ride, err := h.rideUC.GetRide(c.Request().Context(), a, c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", ride)
}

// GetMyStats handles GET /api/rides/my-stats
func (h *RidesHandler) GetMyStats(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	stats, err := h.rideUC.GetMyStats(c.Request().Context(), a)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// ListAwaitingPM handles GET /api/rides/awaiting-pm
func (h *RidesHandler) ListAwaitingPM(c echo.Context) error {
	list, err := h.rideUC.ListAwaitingPM(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListAwaitingAdmin handles GET /api/rides/awaiting-admin
func (h *RidesHandler) ListAwaitingAdmin(c echo.Context) error {
	list, err := h.rideUC.ListAwaitingAdmin(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListReadyForAssignment handles GET /api/rides/ready-for-assignment
func (h *RidesHandler) ListReadyForAssignment(c echo.Context) error {
	list, err := h.rideUC.ListReadyForAssignment(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// PMApprove handles PUT /api/rides/:id/pm-approve
func (h *RidesHandler) PMApprove(c echo.Context) error {
	a, ok := rideActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	ride, err := h.rideUC.PMApprove(c.Request().Context(), a, c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride approved by project manager", ride)
}

// PMReject handles PUT /api/rides/:id/pm-reject
func (h *RidesHandler) PMReject(c echo.Context) error {
	a, ok := rideActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.RejectionRequest
	if err := bindOptional(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	ride, err := h.rideUC.PMReject(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride rejected by project manager", ride)
}

// AdminApprove handles PUT /api/rides/:id/admin-approve
func (h *RidesHandler) AdminApprove(c echo.Context) error {
	a, ok := rideActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.ApprovalRequest
	if err := bindOptional(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	ride, err := h.rideUC.AdminApprove(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride approved by admin", ride)
}

// AdminReject handles PUT /api/rides/:id/admin-reject
func (h *RidesHandler) AdminReject(c echo.Context) error {
	a, ok := rideActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.RejectionRequest
	if err := bindOptional(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	ride, err := h.rideUC.AdminReject(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride rejected by admin", ride)
}

// AssignRide handles PUT /api/rides/:id/assign
func (h *RidesHandler) AssignRide(c echo.Context) error {
	a, ok := rideActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.AssignmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Driver ID and Vehicle ID are required")
	}
	ride, err := h.rideUC.AssignRide(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver and vehicle assigned successfully", ride)
}

// ReassignRide handles PUT /api/rides/:id/reassign
func (h *RidesHandler) ReassignRide(c echo.Context) error {
	a, ok := rideActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.AssignmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Driver ID and Vehicle ID are required")
	}
	ride, err := h.rideUC.ReassignRide(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride reassigned successfully", ride)
}

// StartRide handles PUT /api/rides/:id/start
func (h *RidesHandler) StartRide(c echo.Context) error {
	a, ok := rideActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.StartRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	ride, err := h.rideUC.StartRide(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride started successfully", ride)
}

// CompleteRide handles PUT /api/rides/:id/complete
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	a, ok := rideActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.CompleteRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	result, err := h.rideUC.CompleteRide(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride completed successfully", result)
}

// CancelRide handles PUT /api/rides/:id/cancel
func (h *RidesHandler) CancelRide(c echo.Context) error {
	a, ok := rideActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	ride, err := h.rideUC.CancelRide(c.Request().Context(), a, c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled successfully", ride)
}

// ListDriverAssigned handles GET /api/rides/driver/assigned
func (h *RidesHandler) ListDriverAssigned(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	list, err := h.rideUC.ListDriverAssigned(c.Request().Context(), a)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetDriverDaily handles GET /api/rides/driver/daily
func (h *RidesHandler) GetDriverDaily(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	daily, err := h.rideUC.GetDriverDaily(c.Request().Context(), a)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", daily)
}

// AvailableDrivers handles GET /api/rides/available-drivers
func (h *RidesHandler) AvailableDrivers(c echo.Context) error {
	exclude, err := excludeRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid excludeRideId")
	}
	list, err := h.rideUC.AvailableDrivers(c.Request().Context(), c.QueryParam("date"), c.QueryParam("time"), exclude)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// AvailableVehicles handles GET /api/rides/available-vehicles
func (h *RidesHandler) AvailableVehicles(c echo.Context) error {
	exclude, err := excludeRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid excludeRideId")
	}
	list, err := h.rideUC.AvailableVehicles(c.Request().Context(), c.QueryParam("date"), c.QueryParam("time"), exclude)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// bindOptional binds a JSON body when one was sent
func bindOptional(c echo.Context, dst interface{}) error {
	if c.Request().ContentLength == 0 {
		return nil
	}
	return c.Bind(dst)
}

func excludeRideID(c echo.Context) (*uuid.UUID, error) {
	raw := c.QueryParam("excludeRideId")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

var errInvalidFilter = lifecycle.ErrInvalidDate.WithMessage("startDate and endDate must be YYYY-MM-DD")

// parseRideFilter reads status (repeatable or comma separated), startDate,
// endDate, page and limit from the query string.
func parseRideFilter(c echo.Context) (models.RideFilter, error) {
	var filter models.RideFilter
	q := c.QueryParams()

	for _, raw := range q["status"] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, models.RideStatus(s))
			}
		}
	}

	if s := q.Get("startDate"); s != "" {
		d, err := lifecycle.ParseScheduledDate(s)
		if err != nil {
			return filter, errInvalidFilter
		}
		filter.StartDate = &d
	}
	if s := q.Get("endDate"); s != "" {
		d, err := lifecycle.ParseScheduledDate(s)
		if err != nil {
			return filter, errInvalidFilter
		}
		filter.EndDate = &d
	}

	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	return filter, nil
}
