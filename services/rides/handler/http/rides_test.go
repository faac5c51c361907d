package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
	"github.com/piresc/fleetdispatch/services/rides/mocks"
)

func newContext(method, target, body string, a *models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if a != nil {
		c.Set(middleware.ContextUserID, a.UserID)
		c.Set(middleware.ContextUserRole, a.Role)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateRide_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRidesHandler(mockUC)
	user := models.Actor{UserID: uuid.New(), Role: models.RoleUser}
	body := `{
		"rideType": "return",
		"pickupLocation": {"address": "HQ", "coordinates": {"lat": -6.2, "lng": 106.8}},
		"destinationLocation": {"address": "Plant", "coordinates": {"lat": -6.3, "lng": 106.9}},
		"scheduledDate": "2026-03-12",
		"scheduledTime": "07:15",
		"distance": 9.5
	}`
	c, rec := newContext(http.MethodPost, "/api/rides", body, &user)

	mockUC.EXPECT().
		CreateRide(gomock.Any(), user, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Actor, req models.CreateRideRequest) (*models.Ride, error) {
			assert.Equal(t, models.RideTypeReturn, req.RideType)
			assert.Equal(t, "Plant", req.DestinationLocation.Address)
			require.NotNil(t, req.Distance)
			assert.Equal(t, 9.5, *req.Distance)
			return &models.Ride{ID: uuid.New(), RideCode: "K7M2QX", Status: models.RideStatusAwaitingAdmin}, nil
		})

	// Act
	err := h.CreateRide(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "K7M2QX", data["rideId"])
	assert.Equal(t, "awaiting_admin", data["status"])
}

func TestCreateRide_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRidesHandler(mockUC)
	user := models.Actor{UserID: uuid.New(), Role: models.RoleUser}
	c, rec := newContext(http.MethodPost, "/api/rides", `{"rideType":"loop"}`, &user)

	mockUC.EXPECT().CreateRide(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, lifecycle.ErrInvalidRideType)

	require.NoError(t, h.CreateRide(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "invalid_ride_type", resp["errorCode"])
}

func TestCreateRide_NoActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRidesHandler(mocks.NewMockRideUC(ctrl))
	c, rec := newContext(http.MethodPost, "/api/rides", `{}`, nil)

	require.NoError(t, h.CreateRide(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAssignRide_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRidesHandler(mockUC)
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	driverID, vehicleID := uuid.New(), uuid.New()
	body := `{"driverId":"` + driverID.String() + `","vehicleId":"` + vehicleID.String() + `"}`
	c, rec := newContext(http.MethodPut, "/api/rides/K7M2QX/assign", body, &admin)
	c.SetParamNames("id")
	c.SetParamValues("K7M2QX")

	conflict := lifecycle.ErrDriverConflict.WithMessage("Driver is already assigned to another ride at this time (Ride #%s)", "QW34ER")
	mockUC.EXPECT().
		AssignRide(gomock.Any(), admin, "K7M2QX", models.AssignmentRequest{DriverID: driverID, VehicleID: vehicleID}).
		Return(nil, conflict)

	require.NoError(t, h.AssignRide(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "(Ride #QW34ER)")
}

func TestAdminApprove_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRidesHandler(mockUC)
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	c, rec := newContext(http.MethodPut, "/api/rides/K7M2QX/admin-approve", "", &admin)
	c.SetParamNames("id")
	c.SetParamValues("K7M2QX")

	mockUC.EXPECT().
		AdminApprove(gomock.Any(), admin, "K7M2QX", models.ApprovalRequest{}).
		Return(&models.Ride{Status: models.RideStatusApproved}, nil)

	require.NoError(t, h.AdminApprove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCompleteRide_ReturnsDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRidesHandler(mockUC)
	driver := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}
	c, rec := newContext(http.MethodPut, "/api/rides/K7M2QX/complete", `{"endMileage":145}`, &driver)
	c.SetParamNames("id")
	c.SetParamValues("K7M2QX")

	mockUC.EXPECT().
		CompleteRide(gomock.Any(), driver, "K7M2QX", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Actor, _ string, req models.CompleteRideRequest) (*models.CompletionResult, error) {
			assert.Equal(t, 145.0, *req.EndMileage)
			return &models.CompletionResult{Ride: &models.Ride{Status: models.RideStatusCompleted}, ActualDistance: 45}, nil
		})

	require.NoError(t, h.CompleteRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, 45.0, data["actualDistance"])
}

func TestGetRide_StorageFailureIsGeneric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRidesHandler(mockUC)
	user := models.Actor{UserID: uuid.New(), Role: models.RoleUser}
	c, rec := newContext(http.MethodGet, "/api/rides/K7M2QX", "", &user)
	c.SetParamNames("id")
	c.SetParamValues("K7M2QX")

	mockUC.EXPECT().GetRide(gomock.Any(), user, "K7M2QX").Return(nil, errors.New("pq: connection refused"))

	require.NoError(t, h.GetRide(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestListRides_ParsesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRidesHandler(mockUC)
	user := models.Actor{UserID: uuid.New(), Role: models.RoleUser}
	c, rec := newContext(http.MethodGet,
		"/api/rides?status=approved&status=assigned,in_progress&startDate=2026-03-01&endDate=2026-03-31&page=2&limit=5", "", &user)

	mockUC.EXPECT().
		ListRides(gomock.Any(), user, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Actor, f models.RideFilter) (*models.RideList, error) {
			assert.Equal(t, []models.RideStatus{models.RideStatusApproved, models.RideStatusAssigned, models.RideStatusInProgress}, f.Statuses)
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *f.StartDate)
			assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), *f.EndDate)
			assert.Equal(t, 2, f.Page)
			assert.Equal(t, 5, f.Limit)
			return &models.RideList{Rides: []*models.Ride{}, Page: 2}, nil
		})

	require.NoError(t, h.ListRides(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRides_BadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRidesHandler(mocks.NewMockRideUC(ctrl))
	user := models.Actor{UserID: uuid.New(), Role: models.RoleUser}
	c, rec := newContext(http.MethodGet, "/api/rides?startDate=March", "", &user)

	require.NoError(t, h.ListRides(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailableVehicles_ExcludeRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRidesHandler(mockUC)
	exclude := uuid.New()
	c, rec := newContext(http.MethodGet, "/api/rides/available-vehicles?date=2026-03-12&time=08:30&excludeRideId="+exclude.String(), "", nil)

	mockUC.EXPECT().
		AvailableVehicles(gomock.Any(), "2026-03-12", "08:30", &exclude).
		Return([]*models.AvailableVehicle{{Vehicle: &models.Vehicle{VehicleNumber: "NB1985"}, IsAvailable: true}}, nil)

	require.NoError(t, h.AvailableVehicles(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isAvailable":true`)
}

func TestAvailableDrivers_BadExclude(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRidesHandler(mocks.NewMockRideUC(ctrl))
	c, rec := newContext(http.MethodGet, "/api/rides/available-drivers?date=2026-03-12&time=08:30&excludeRideId=nope", "", nil)

	require.NoError(t, h.AvailableDrivers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
