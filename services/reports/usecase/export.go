package usecase

import (
	"context"
	"strconv"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/reports"
)

var (
	rideExportHeader = []string{
		"Ride ID", "Requester", "Requester Email", "Driver", "Vehicle", "Ride Type",
		"Pickup", "Destination", "Distance (km)", "Scheduled Date", "Scheduled Time",
		"Completed At", "Status",
	}
	driverExportHeader = []string{
		"Name", "Email", "Phone", "Status", "Monthly Rides", "Monthly Distance (km)",
		"Total Rides", "Total Distance (km)",
	}
	vehicleExportHeader = []string{
		"Vehicle Number", "Type", "Status", "Monthly Rides", "Monthly Distance (km)",
		"Total Mileage (km)", "Total Rides",
	}
)

// Export builds a downloadable table for one month: completed rides,
// driver performance or vehicle usage
func (uc *reportUC) Export(ctx context.Context, kind models.ExportKind, month, year int) (*models.ReportExport, error) {
	p, err := uc.period(month, year)
	if err != nil {
		return nil, err
	}

	out := &models.ReportExport{
		Kind:        kind,
		Period:      p.Label(),
		GeneratedAt: uc.now().UTC(),
	}

	switch kind {
	case models.ExportRides:
		rides, _, err := uc.repo.ListReportRides(ctx, models.ReportRideFilter{
			CompletedFrom: &p.From,
			CompletedTo:   &p.To,
		})
		if err != nil {
			return nil, classify(err)
		}
		out.Title = "Monthly Rides Report"
		out.Records = rides
		out.Header = rideExportHeader
		for _, r := range rides {
			out.Rows = append(out.Rows, uc.rideRow(r))
		}

	case models.ExportDrivers:
		rows, err := uc.repo.DriverPerformance(ctx, p.From, p.To, nil)
		if err != nil {
			return nil, classify(err)
		}
		out.Title = "Driver Performance Report"
		out.Records = rows
		out.Header = driverExportHeader
		for _, d := range rows {
			roundDriver(d)
			out.Rows = append(out.Rows, driverRow(d))
		}

	case models.ExportVehicles:
		rows, err := uc.repo.VehicleUsage(ctx, p.From, p.To, nil)
		if err != nil {
			return nil, classify(err)
		}
		out.Title = "Vehicle Usage Report"
		out.Records = rows
		out.Header = vehicleExportHeader
		for _, v := range rows {
			roundVehicle(v)
			out.Rows = append(out.Rows, vehicleRow(v))
		}

	default:
		return nil, reports.ErrInvalidExportKind
	}

	out.TotalRecords = len(out.Rows)
	return out, nil
}

func (uc *reportUC) rideRow(r *models.ReportRide) []string {
	completed := ""
	if r.CompletedAt != nil {
		completed = r.CompletedAt.In(uc.loc).Format("2006-01-02 15:04")
	}
	return []string{
		r.RideCode,
		r.RequesterName,
		r.RequesterEmail,
		deref(r.DriverName),
		deref(r.VehicleNumber),
		string(r.RideType),
		r.PickupAddress,
		r.DestinationAddress,
		km(r.TravelledDistance()),
		r.ScheduledDate.Format("2006-01-02"),
		r.ScheduledTime,
		completed,
		string(r.Status),
	}
}

func driverRow(d *models.DriverPerformance) []string {
	status := ""
	if d.Driver.Status != nil {
		status = string(*d.Driver.Status)
	}
	return []string{
		d.Driver.Name,
		d.Driver.Email,
		d.Driver.Phone,
		status,
		strconv.Itoa(d.Monthly.CompletedRides),
		km(d.Monthly.TotalDistance),
		strconv.Itoa(d.Overall.TotalRides),
		km(d.Overall.TotalDistance),
	}
}

func vehicleRow(v *models.VehicleUsage) []string {
	return []string{
		v.Vehicle.VehicleNumber,
		string(v.Vehicle.Type),
		string(v.Vehicle.Status),
		strconv.Itoa(v.Monthly.Rides),
		km(v.Monthly.Distance),
		km(v.Overall.TotalMileage),
		strconv.Itoa(v.Overall.TotalRides),
	}
}

func km(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
