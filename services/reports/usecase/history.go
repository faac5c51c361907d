package usecase

import (
	"context"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/reports"
)

const (
	defaultHistoryLimit   = 20
	defaultMyHistoryLimit = 10
	maxHistoryLimit       = 100
)

// RideHistory pages through all rides for admins and project managers
func (uc *reportUC) RideHistory(ctx context.Context, q models.HistoryQuery) (*models.ReportRideList, error) {
	filter, err := uc.historyFilter(q, defaultHistoryLimit)
	if err != nil {
		return nil, err
	}
	filter.RequesterID = q.RequesterID
	filter.DriverID = q.DriverID
	filter.VehicleID = q.VehicleID
	return uc.listHistory(ctx, filter)
}

// MyHistory pages through the caller's rides: driven rides for drivers,
// requested rides for everyone else
func (uc *reportUC) MyHistory(ctx context.Context, actor models.Actor, q models.HistoryQuery) (*models.ReportRideList, error) {
	filter, err := uc.historyFilter(q, defaultMyHistoryLimit)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleDriver {
		filter.DriverID = &actor.UserID
	} else {
		filter.RequesterID = &actor.UserID
	}
	return uc.listHistory(ctx, filter)
}

func (uc *reportUC) historyFilter(q models.HistoryQuery, defaultLimit int) (models.ReportRideFilter, error) {
	var f models.ReportRideFilter
	for _, s := range q.Statuses {
		if !s.Valid() {
			return f, reports.ErrInvalidStatus
		}
	}
	f.Statuses = q.Statuses

	if q.StartDate != nil && q.EndDate != nil && q.StartDate.After(*q.EndDate) {
		return f, reports.ErrInvalidDateRange
	}
	if q.StartDate != nil {
		from := uc.localDay(*q.StartDate)
		f.CreatedFrom = &from
	}
	if q.EndDate != nil {
		to := uc.localDay(*q.EndDate).AddDate(0, 0, 1)
		f.CreatedTo = &to
	}

	f.Page, f.Limit = q.Page, q.Limit
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxHistoryLimit {
		f.Limit = maxHistoryLimit
	}
	return f, nil
}

func (uc *reportUC) listHistory(ctx context.Context, filter models.ReportRideFilter) (*models.ReportRideList, error) {
	rides, total, err := uc.repo.ListReportRides(ctx, filter)
	if err != nil {
		return nil, classify(err)
	}
	if rides == nil {
		rides = []*models.ReportRide{}
	}
	return &models.ReportRideList{
		Rides:      rides,
		Count:      len(rides),
		Total:      total,
		Page:       filter.Page,
		TotalPages: (total + filter.Limit - 1) / filter.Limit,
	}, nil
}
