package reports

import "github.com/piresc/fleetdispatch/internal/pkg/apperror"

var (
	ErrInvalidPeriod     = apperror.Validation("invalid_period", "Month must be 1-12 and year 2000-9999")
	ErrInvalidDateRange  = apperror.Validation("invalid_date_range", "startDate must not be after endDate")
	ErrInvalidStatus     = apperror.Validation("invalid_status", "Unknown ride status filter")
	ErrInvalidExportKind = apperror.Validation("invalid_report_type", "Invalid report type. Use: rides, drivers, or vehicles")
)
