package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
)

// MonthlyRides summarizes the rides created in a month. Distances count
// completed rides only, preferring the odometer distance.
func (uc *reportUC) MonthlyRides(ctx context.Context, month, year int) (*models.MonthlyRideReport, error) {
	p, err := uc.period(month, year)
	if err != nil {
		return nil, err
	}

	rides, _, err := uc.repo.ListReportRides(ctx, models.ReportRideFilter{
		CreatedFrom: &p.From,
		CreatedTo:   &p.To,
	})
	if err != nil {
		return nil, classify(err)
	}

	report := &models.MonthlyRideReport{
		Period: p,
		Rides:  rides,
	}

	days := p.To.AddDate(0, 0, -1).Day()
	report.DailyBreakdown = make([]models.DailyCount, days)
	for i := range report.DailyBreakdown {
		report.DailyBreakdown[i] = models.DailyCount{
			Day:  i + 1,
			Date: p.From.AddDate(0, 0, i).Format("2006-01-02"),
		}
	}

	var distance float64
	s := &report.Summary
	for _, r := range rides {
		s.TotalRides++
		day := &report.DailyBreakdown[r.CreatedAt.In(uc.loc).Day()-1]
		day.Total++

		switch r.Status {
		case models.RideStatusCompleted:
			s.CompletedRides++
			day.Completed++
			distance += r.TravelledDistance()
		case models.RideStatusCancelled:
			s.CancelledRides++
		case models.RideStatusRejected:
			s.RejectedRides++
		}

		switch r.RideType {
		case models.RideTypeOneWay:
			report.ByType.OneWay++
		case models.RideTypeReturn:
			report.ByType.Return++
		}
		if r.RequiresPMApproval {
			report.LongDistanceRides++
		}
	}

	s.TotalDistance = utils.Round1(distance)
	if s.TotalRides > 0 {
		s.CompletionRate = utils.Round1(float64(s.CompletedRides) * 100 / float64(s.TotalRides))
	}
	if s.CompletedRides > 0 {
		s.AverageDistance = utils.Round1(distance / float64(s.CompletedRides))
	}
	return report, nil
}

// DriverPerformance ranks drivers by the rides they completed in a month
func (uc *reportUC) DriverPerformance(ctx context.Context, month, year int, driverID *uuid.UUID) (*models.DriverPerformanceReport, error) {
	p, err := uc.period(month, year)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.DriverPerformance(ctx, p.From, p.To, driverID)
	if err != nil {
		return nil, classify(err)
	}
	for _, row := range rows {
		roundDriver(row)
	}

	return &models.DriverPerformanceReport{
		Period:       p,
		TotalDrivers: len(rows),
		Performance:  rows,
	}, nil
}

func roundDriver(row *models.DriverPerformance) {
	m := &row.Monthly
	if m.CompletedRides > 0 {
		m.AvgDistance = utils.Round1(m.TotalDistance / float64(m.CompletedRides))
	}
	m.TotalDistance = utils.Round1(m.TotalDistance)
	row.Overall.TotalDistance = utils.Round1(row.Overall.TotalDistance)
}

// VehicleUsage ranks active vehicles by the distance they covered in a month
func (uc *reportUC) VehicleUsage(ctx context.Context, month, year int, vehicleID *uuid.UUID) (*models.VehicleUsageReport, error) {
	p, err := uc.period(month, year)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.VehicleUsage(ctx, p.From, p.To, vehicleID)
	if err != nil {
		return nil, classify(err)
	}

	report := &models.VehicleUsageReport{
		Period:        p,
		TotalVehicles: len(rows),
		Vehicles:      rows,
	}
	t := &report.Totals
	for _, row := range rows {
		roundVehicle(row)
		t.MonthlyRides += row.Monthly.Rides
		t.MonthlyDistance += row.Monthly.Distance
		t.TotalMileage += row.Overall.TotalMileage
	}
	t.MonthlyDistance = utils.Round1(t.MonthlyDistance)
	t.TotalMileage = utils.Round1(t.TotalMileage)
	return report, nil
}

func roundVehicle(row *models.VehicleUsage) {
	row.Monthly.Distance = utils.Round1(row.Monthly.Distance)
	row.Monthly.RecordedMileage = utils.Round1(row.Monthly.RecordedMileage)
	row.Overall.TotalMileage = utils.Round1(row.Overall.TotalMileage)
}
