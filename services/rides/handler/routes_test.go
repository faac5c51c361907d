package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/piresc/fleetdispatch/internal/pkg/jwt"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/rides/mocks"
)

func TestRegisterRoutes_RoleGuards(t *testing.T) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "fleetdispatch"}}

	tests := []struct {
		name       string
		method     string
		path       string
		role       models.Role
		token      bool
		expect     func(uc *mocks.MockRideUC)
		wantStatus int
	}{
		{
			name:       "missing token",
			method:     http.MethodGet,
			path:       "/api/rides",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "user cannot approve as admin",
			method:     http.MethodPut,
			path:       "/api/rides/K7M2QX/admin-approve",
			role:       models.RoleUser,
			token:      true,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin cannot start a ride",
			method:     http.MethodPut,
			path:       "/api/rides/K7M2QX/start",
			role:       models.RoleAdmin,
			token:      true,
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "project manager lists awaiting pm",
			method: http.MethodGet,
			path:   "/api/rides/awaiting-pm",
			role:   models.RoleProjectManager,
			token:  true,
			expect: func(uc *mocks.MockRideUC) {
				uc.EXPECT().ListAwaitingPM(gomock.Any()).Return([]*models.Ride{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "static route wins over ride id",
			method: http.MethodGet,
			path:   "/api/rides/my-stats",
			role:   models.RoleUser,
			token:  true,
			expect: func(uc *mocks.MockRideUC) {
				uc.EXPECT().GetMyStats(gomock.Any(), gomock.Any()).Return(&models.RideStats{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "any role may cancel",
			method: http.MethodPut,
			path:   "/api/rides/K7M2QX/cancel",
			role:   models.RoleUser,
			token:  true,
			expect: func(uc *mocks.MockRideUC) {
				uc.EXPECT().CancelRide(gomock.Any(), gomock.Any(), "K7M2QX").Return(&models.Ride{}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := mocks.NewMockRideUC(ctrl)
			if tt.expect != nil {
				tt.expect(uc)
			}
			e := echo.New()
			NewHandler(uc, cfg).RegisterRoutes(e)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token {
				token, _, err := jwtpkg.GenerateToken(uuid.New(), "someone@fleet.local", tt.role, cfg.JWT)
				require.NoError(t, err)
				req.Header.Set("Authorization", "Bearer "+token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
