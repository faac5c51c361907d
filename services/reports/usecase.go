package reports

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// ReportUC builds the fleet reports. Periods are calendar months in the
// dispatch time zone; a zero month or year means the current one.
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleetdispatch/services/reports ReportUC
type ReportUC interface {
	DashboardStats(ctx context.Context, actor models.Actor) (*models.DashboardStats, error)
	MonthlyRides(ctx context.Context, month, year int) (*models.MonthlyRideReport, error)
	DriverPerformance(ctx context.Context, month, year int, driverID *uuid.UUID) (*models.DriverPerformanceReport, error)
	VehicleUsage(ctx context.Context, month, year int, vehicleID *uuid.UUID) (*models.VehicleUsageReport, error)
	RideHistory(ctx context.Context, q models.HistoryQuery) (*models.ReportRideList, error)
	MyHistory(ctx context.Context, actor models.Actor, q models.HistoryQuery) (*models.ReportRideList, error)
	Export(ctx context.Context, kind models.ExportKind, month, year int) (*models.ReportExport, error)
}
