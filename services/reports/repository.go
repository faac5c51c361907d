package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

// ReportRepo reads the aggregates behind the reporting endpoints. It only
// reads rides, users and vehicles.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fleetdispatch/services/reports ReportRepo
type ReportRepo interface {
	// DashboardStats counts the fleet; completedToday covers [dayStart, dayEnd)
	DashboardStats(ctx context.Context, dayStart, dayEnd time.Time) (*models.DashboardStats, error)
	PMDashboard(ctx context.Context, pmID uuid.UUID, dayStart, dayEnd time.Time) (*models.PMDashboard, error)
	ListReportRides(ctx context.Context, filter models.ReportRideFilter) ([]*models.ReportRide, int, error)
	DriverPerformance(ctx context.Context, from, to time.Time, driverID *uuid.UUID) ([]*models.DriverPerformance, error)
	VehicleUsage(ctx context.Context, from, to time.Time, vehicleID *uuid.UUID) ([]*models.VehicleUsage, error)

	// GetCachedDashboard returns nil without error on a cache miss
	GetCachedDashboard(ctx context.Context, key string) (*models.DashboardStats, error)
	CacheDashboard(ctx context.Context, key string, stats *models.DashboardStats, ttl time.Duration) error
}
