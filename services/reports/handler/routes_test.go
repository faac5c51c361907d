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
	"github.com/piresc/fleetdispatch/services/reports/mocks"
)

func TestRegisterRoutes_RoleGuards(t *testing.T) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "fleetdispatch"}}

	tests := []struct {
		name       string
		path       string
		role       models.Role
		token      bool
		expect     func(uc *mocks.MockReportUC)
		wantStatus int
	}{
		{
			name:       "missing token",
			path:       "/api/reports/dashboard-stats",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "user cannot read the dashboard",
			path:       "/api/reports/dashboard-stats",
			role:       models.RoleUser,
			token:      true,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "driver cannot export",
			path:       "/api/reports/export/rides",
			role:       models.RoleDriver,
			token:      true,
			wantStatus: http.StatusForbidden,
		},
		{
			name:  "project manager reads vehicle usage",
			path:  "/api/reports/vehicle-usage?month=3&year=2026",
			role:  models.RoleProjectManager,
			token: true,
			expect: func(uc *mocks.MockReportUC) {
				uc.EXPECT().VehicleUsage(gomock.Any(), 3, 2026, nil).Return(&models.VehicleUsageReport{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "admin exports drivers",
			path:  "/api/reports/export/drivers",
			role:  models.RoleAdmin,
			token: true,
			expect: func(uc *mocks.MockReportUC) {
				uc.EXPECT().Export(gomock.Any(), models.ExportDrivers, 0, 0).Return(&models.ReportExport{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "driver reads own history",
			path:  "/api/reports/my-history",
			role:  models.RoleDriver,
			token: true,
			expect: func(uc *mocks.MockReportUC) {
				uc.EXPECT().MyHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.ReportRideList{}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := mocks.NewMockReportUC(ctrl)
			if tt.expect != nil {
				tt.expect(uc)
			}
			e := echo.New()
			NewHandler(uc, cfg).RegisterRoutes(e)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
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
