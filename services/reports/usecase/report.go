package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/metrics"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/reports"
)

// reportUC implements reports.ReportUC
type reportUC struct {
	repo         reports.ReportRepo
	loc          *time.Location
	dashboardTTL time.Duration
	now          func() time.Time
}

// NewReportUC creates a new report use case
func NewReportUC(cfg *models.Config, repo reports.ReportRepo) reports.ReportUC {
	return newReportUC(cfg, repo, time.Now)
}

func newReportUC(cfg *models.Config, repo reports.ReportRepo, now func() time.Time) *reportUC {
	return &reportUC{
		repo:         repo,
		loc:          cfg.Dispatch.Location(),
		dashboardTTL: cfg.Reports.DashboardTTL,
		now:          now,
	}
}

// DashboardStats returns the fleet summary, adding the PM queue for project
// managers. Results are cached briefly; cache failures only cost a query.
func (uc *reportUC) DashboardStats(ctx context.Context, actor models.Actor) (*models.DashboardStats, error) {
	key := fmt.Sprintf(constants.KeyDashboardStats, "admin")
	if actor.Role == models.RoleProjectManager {
		key = fmt.Sprintf(constants.KeyDashboardStats, "pm:"+actor.UserID.String())
	}

	if uc.dashboardTTL > 0 {
		cached, err := uc.repo.GetCachedDashboard(ctx, key)
		if err != nil {
			logger.WarnCtx(ctx, "Dashboard cache read failed", logger.Err(err))
		}
		metrics.RecordReportCache(cached != nil)
		if cached != nil {
			return cached, nil
		}
	}

	dayStart, dayEnd := uc.today()
	stats, err := uc.repo.DashboardStats(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, classify(err)
	}
	stats.MonthlyMileage = utils.Round1(stats.MonthlyMileage)

	if actor.Role == models.RoleProjectManager {
		pm, err := uc.repo.PMDashboard(ctx, actor.UserID, dayStart, dayEnd)
		if err != nil {
			return nil, classify(err)
		}
		stats.PM = pm
	}

	if uc.dashboardTTL > 0 {
		if err := uc.repo.CacheDashboard(ctx, key, stats, uc.dashboardTTL); err != nil {
			logger.WarnCtx(ctx, "Dashboard cache write failed", logger.Err(err))
		}
	}
	return stats, nil
}

// period resolves a month and year, defaulting either to the current one
func (uc *reportUC) period(month, year int) (models.ReportPeriod, error) {
	now := uc.now().In(uc.loc)
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 || year < 2000 || year > 9999 {
		return models.ReportPeriod{}, reports.ErrInvalidPeriod
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	return models.ReportPeriod{
		Month:     month,
		Year:      year,
		MonthName: time.Month(month).String(),
		From:      from,
		To:        from.AddDate(0, 1, 0),
	}, nil
}

// today returns the bounds of the current day in the dispatch zone
func (uc *reportUC) today() (time.Time, time.Time) {
	return uc.dayBounds(uc.now())
}

func (uc *reportUC) dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.In(uc.loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, uc.loc)
	return start, start.AddDate(0, 0, 1)
}

// localDay places a calendar date in the dispatch zone
func (uc *reportUC) localDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, uc.loc)
}

func classify(err error) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Downstream("Report query failed", err)
}
