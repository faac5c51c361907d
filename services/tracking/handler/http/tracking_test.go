package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/tracking"
	"github.com/piresc/fleetdispatch/services/tracking/mocks"
)

func TestListVehicles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/tracking/vehicles", nil), rec)

	mockUC.EXPECT().Snapshot(gomock.Any()).Return(&models.TrackingSnapshot{
		Vehicles: []models.VehiclePosition{{VehicleNumber: "NB1985"}},
		Stale:    true,
	}, nil)

	require.NoError(t, h.ListVehicles(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stale":true`)
}

func TestGetVehicle_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/tracking/vehicles/XY1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("XY1")

	mockUC.EXPECT().GetVehiclePosition(gomock.Any(), "XY1").Return(nil, tracking.ErrPositionNotFound)

	require.NoError(t, h.GetVehicle(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRideETA(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/rides/K7M2QX/eta", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("K7M2QX")
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleUser}
	c.Set(middleware.ContextUserID, actor.UserID)
	c.Set(middleware.ContextUserRole, actor.Role)

	mockUC.EXPECT().RideETA(gomock.Any(), actor, "K7M2QX").Return(&models.RideETA{RideCode: "K7M2QX", DistanceKm: 12.4, Minutes: 25}, nil)

	require.NoError(t, h.RideETA(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"minutes":25`)
}

func TestRideETA_UpstreamDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/rides/K7M2QX/eta", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("K7M2QX")
	c.Set(middleware.ContextUserID, uuid.New())
	c.Set(middleware.ContextUserRole, models.RoleAdmin)

	mockUC.EXPECT().RideETA(gomock.Any(), gomock.Any(), "K7M2QX").
		Return(nil, apperror.Downstream("Tracking service is unavailable", errors.New("timeout")))

	require.NoError(t, h.RideETA(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNearbyVehicles(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		expect     func(uc *mocks.MockTrackingUC)
		wantStatus int
	}{
		{
			name:  "passes the query through",
			query: "lat=6.9271&lng=79.8612&radius=3&limit=5",
			expect: func(uc *mocks.MockTrackingUC) {
				uc.EXPECT().NearbyVehicles(gomock.Any(), models.NearbyQuery{
					Latitude: 6.9271, Longitude: 79.8612, RadiusKm: 3, Limit: 5,
				}).Return([]models.NearbyVehicle{{VehicleNumber: "NB1985", DistanceKm: 0.4}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{name: "missing lat", query: "lng=79.8612", wantStatus: http.StatusBadRequest},
		{name: "bad radius", query: "lat=6.9&lng=79.8&radius=far", wantStatus: http.StatusBadRequest},
		{
			name:  "out of range point",
			query: "lat=95&lng=79.8",
			expect: func(uc *mocks.MockTrackingUC) {
				uc.EXPECT().NearbyVehicles(gomock.Any(), gomock.Any()).Return(nil, tracking.ErrInvalidPoint)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockTrackingUC(ctrl)
			if tt.expect != nil {
				tt.expect(mockUC)
			}
			h := NewTrackingHandler(mockUC)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/tracking/nearby?"+tt.query, nil), rec)

			require.NoError(t, h.NearbyVehicles(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
