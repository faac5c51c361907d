package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/reports"
	"github.com/piresc/fleetdispatch/services/reports/mocks"
)

// colombo is fixed so tests do not depend on the host tz database
var colombo = time.FixedZone("+0530", 5*3600+30*60)

type fixture struct {
	repo *mocks.MockReportRepo
	now  time.Time
	uc   *reportUC
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo: mocks.NewMockReportRepo(ctrl),
		now:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	cfg := &models.Config{Reports: models.ReportsConfig{DashboardTTL: 30 * time.Second}}
	f.uc = newReportUC(cfg, f.repo, func() time.Time { return f.now })
	f.uc.loc = colombo
	return f
}

func TestDashboardStats_CacheHit(t *testing.T) {
	f := newFixture(t)
	cached := &models.DashboardStats{PendingApprovals: 4}
	f.repo.EXPECT().GetCachedDashboard(gomock.Any(), "reports:dashboard:admin").Return(cached, nil)

	stats, err := f.uc.DashboardStats(context.Background(), models.Actor{UserID: uuid.New(), Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Same(t, cached, stats)
}

func TestDashboardStats_MissQueriesAndCaches(t *testing.T) {
	f := newFixture(t)
	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, colombo)

	gomock.InOrder(
		f.repo.EXPECT().GetCachedDashboard(gomock.Any(), "reports:dashboard:admin").Return(nil, nil),
		f.repo.EXPECT().DashboardStats(gomock.Any(), dayStart, dayStart.AddDate(0, 0, 1)).
			Return(&models.DashboardStats{LiveRides: 2, MonthlyMileage: 1234.56}, nil),
		f.repo.EXPECT().CacheDashboard(gomock.Any(), "reports:dashboard:admin", gomock.Any(), 30*time.Second).Return(nil),
	)

	stats, err := f.uc.DashboardStats(context.Background(), models.Actor{UserID: uuid.New(), Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.LiveRides)
	assert.Equal(t, 1234.6, stats.MonthlyMileage)
	assert.Nil(t, stats.PM)
}

func TestDashboardStats_ProjectManagerQueue(t *testing.T) {
	f := newFixture(t)
	pm := models.Actor{UserID: uuid.New(), Role: models.RoleProjectManager}
	key := "reports:dashboard:pm:" + pm.UserID.String()

	f.repo.EXPECT().GetCachedDashboard(gomock.Any(), key).Return(nil, errors.New("redis down"))
	f.repo.EXPECT().DashboardStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.DashboardStats{}, nil)
	f.repo.EXPECT().PMDashboard(gomock.Any(), pm.UserID, gomock.Any(), gomock.Any()).
		Return(&models.PMDashboard{AwaitingPM: 3, ApprovedToday: 1}, nil)
	f.repo.EXPECT().CacheDashboard(gomock.Any(), key, gomock.Any(), 30*time.Second).Return(errors.New("redis down"))

	stats, err := f.uc.DashboardStats(context.Background(), pm)
	require.NoError(t, err)
	require.NotNil(t, stats.PM)
	assert.Equal(t, 3, stats.PM.AwaitingPM)
}

func TestDashboardStats_CacheDisabled(t *testing.T) {
	f := newFixture(t)
	f.uc.dashboardTTL = 0
	f.repo.EXPECT().DashboardStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.DashboardStats{}, nil)

	_, err := f.uc.DashboardStats(context.Background(), models.Actor{UserID: uuid.New(), Role: models.RoleAdmin})
	assert.NoError(t, err)
}

func TestDashboardStats_QueryFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetCachedDashboard(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().DashboardStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := f.uc.DashboardStats(context.Background(), models.Actor{UserID: uuid.New(), Role: models.RoleAdmin})
	assert.Equal(t, apperror.KindDownstream, apperror.KindOf(err))
}

func TestPeriod(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name      string
		month     int
		year      int
		wantMonth int
		wantYear  int
		wantErr   bool
	}{
		{name: "defaults to current month", wantMonth: 3, wantYear: 2026},
		{name: "explicit month", month: 12, year: 2025, wantMonth: 12, wantYear: 2025},
		{name: "month only", month: 1, wantMonth: 1, wantYear: 2026},
		{name: "month out of range", month: 13, year: 2026, wantErr: true},
		{name: "negative month", month: -1, year: 2026, wantErr: true},
		{name: "year too early", month: 5, year: 1999, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := f.uc.period(tt.month, tt.year)
			if tt.wantErr {
				assert.ErrorIs(t, err, reports.ErrInvalidPeriod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMonth, p.Month)
			assert.Equal(t, tt.wantYear, p.Year)
			assert.Equal(t, time.Date(tt.wantYear, time.Month(tt.wantMonth), 1, 0, 0, 0, 0, colombo), p.From)
			assert.Equal(t, p.From.AddDate(0, 1, 0), p.To)
		})
	}
}

func TestPeriod_UsesDispatchZone(t *testing.T) {
	f := newFixture(t)
	// 20:00 UTC on the last day of March is already April in Colombo
	f.now = time.Date(2026, 3, 31, 20, 0, 0, 0, time.UTC)

	p, err := f.uc.period(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Month)
	assert.Equal(t, "April", p.MonthName)
	assert.Equal(t, "April 2026", p.Label())
}
