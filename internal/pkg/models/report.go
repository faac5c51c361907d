package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportPeriod is one calendar month in the dispatch time zone
type ReportPeriod struct {
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	MonthName string    `json:"monthName"`
	From      time.Time `json:"-"`
	To        time.Time `json:"-"` // exclusive
}

// Label renders the period as "May 2025"
func (p ReportPeriod) Label() string {
	return p.From.Format("January 2006")
}

// DashboardStats is the admin and PM landing summary
type DashboardStats struct {
	PendingApprovals int          `json:"pendingApprovals" db:"pending_approvals"`
	LiveRides        int          `json:"liveRides" db:"live_rides"`
	ActiveRides      int          `json:"activeRides" db:"active_rides"`
	CompletedToday   int          `json:"completedToday" db:"completed_today"`
	Drivers          DriverCounts `json:"drivers" db:"drivers"`
	Vehicles         FleetCounts  `json:"vehicles" db:"vehicles"`
	MonthlyMileage   float64      `json:"monthlyMileage" db:"monthly_mileage"`
	PM               *PMDashboard `json:"pm,omitempty" db:"-"`
}

// DriverCounts counts active drivers
type DriverCounts struct {
	Total     int `json:"total" db:"total"`
	Available int `json:"available" db:"available"`
}

// FleetCounts counts active vehicles; InService excludes maintenance
type FleetCounts struct {
	Total     int `json:"total" db:"total"`
	Available int `json:"available" db:"available"`
	InService int `json:"active" db:"in_service"`
}

// PMDashboard adds the project manager's own queue to the dashboard
type PMDashboard struct {
	AwaitingPM        int `json:"awaitingPM" db:"awaiting_pm"`
	ApprovedToday     int `json:"approvedToday" db:"approved_today"`
	LongDistanceRides int `json:"longDistanceRides" db:"long_distance_rides"`
	TotalProcessed    int `json:"totalProcessed" db:"total_processed"`
}

// ReportRide is a ride joined with the names a report shows
type ReportRide struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	RideCode           string     `json:"rideId" db:"ride_code"`
	RequesterID        uuid.UUID  `json:"requesterId" db:"requester_id"`
	RequesterName      string     `json:"requester" db:"requester_name"`
	RequesterEmail     string     `json:"requesterEmail" db:"requester_email"`
	DriverName         *string    `json:"driver,omitempty" db:"driver_name"`
	VehicleNumber      *string    `json:"vehicle,omitempty" db:"vehicle_number"`
	RideType           RideType   `json:"rideType" db:"ride_type"`
	PickupAddress      string     `json:"pickup" db:"pickup_address"`
	DestinationAddress string     `json:"destination" db:"destination_address"`
	CalculatedDistance float64    `json:"calculatedDistance" db:"calculated_distance"`
	ActualDistance     *float64   `json:"actualDistance,omitempty" db:"actual_distance"`
	ScheduledDate      time.Time  `json:"scheduledDate" db:"scheduled_date"`
	ScheduledTime      string     `json:"scheduledTime" db:"scheduled_time"`
	Status             RideStatus `json:"status" db:"status"`
	RequiresPMApproval bool       `json:"requiresPMApproval" db:"requires_pm_approval"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	CompletedAt        *time.Time `json:"completedAt,omitempty" db:"end_time"`
}

// TravelledDistance is the odometer distance when recorded, else the planned one
func (r *ReportRide) TravelledDistance() float64 {
	if r.ActualDistance != nil && *r.ActualDistance > 0 {
		return *r.ActualDistance
	}
	return r.CalculatedDistance
}

// ReportRideFilter narrows report ride listings. Created and completed
// ranges are half open. A zero Limit returns every match.
type ReportRideFilter struct {
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	CompletedFrom *time.Time
	CompletedTo   *time.Time
	Statuses      []RideStatus
	RequesterID   *uuid.UUID
	DriverID      *uuid.UUID
	VehicleID     *uuid.UUID
	Page          int
	Limit         int
}

// Offset returns the SQL offset for the filter's page
func (f ReportRideFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// HistoryQuery is the caller's ride history filter. StartDate and EndDate
// are calendar days in the dispatch time zone, both inclusive.
type HistoryQuery struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Statuses    []RideStatus
	RequesterID *uuid.UUID
	DriverID    *uuid.UUID
	VehicleID   *uuid.UUID
	Page        int
	Limit       int
}

// ReportRideList is a paginated ride history
type ReportRideList struct {
	Rides      []*ReportRide `json:"rides"`
	Count      int           `json:"count"`
	Total      int           `json:"total"`
	Page       int           `json:"currentPage"`
	TotalPages int           `json:"totalPages"`
}

// MonthlyRideReport summarizes the rides created in one month
type MonthlyRideReport struct {
	Period            ReportPeriod   `json:"period"`
	Summary           MonthlySummary `json:"summary"`
	ByType            RideTypeCounts `json:"byType"`
	LongDistanceRides int            `json:"longDistanceRides"`
	DailyBreakdown    []DailyCount   `json:"dailyBreakdown"`
	Rides             []*ReportRide  `json:"rides"`
}

// MonthlySummary totals one month; distances cover completed rides only
type MonthlySummary struct {
	TotalRides      int     `json:"totalRides"`
	CompletedRides  int     `json:"completedRides"`
	CancelledRides  int     `json:"cancelledRides"`
	RejectedRides   int     `json:"rejectedRides"`
	CompletionRate  float64 `json:"completionRate"`
	TotalDistance   float64 `json:"totalDistance"`
	AverageDistance float64 `json:"averageDistance"`
}

// RideTypeCounts splits rides by leg type
type RideTypeCounts struct {
	OneWay int `json:"oneWay"`
	Return int `json:"return"`
}

// DailyCount is one day of a monthly breakdown
type DailyCount struct {
	Day       int    `json:"day"`
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// DriverPerformance is one driver's line in the performance report
type DriverPerformance struct {
	Driver      DriverSummary `json:"driver" db:"driver"`
	Monthly     DriverMonthly `json:"monthly" db:"monthly"`
	Overall     DriverOverall `json:"overall" db:"overall"`
	ActiveRides int           `json:"activeRides" db:"active_rides"`
}

// DriverSummary identifies a driver in reports
type DriverSummary struct {
	ID     uuid.UUID     `json:"id" db:"id"`
	Name   string        `json:"name" db:"name"`
	Email  string        `json:"email" db:"email"`
	Phone  string        `json:"phone" db:"phone"`
	Status *DriverStatus `json:"status,omitempty" db:"status"`
}

// DriverMonthly covers rides the driver completed in the period
type DriverMonthly struct {
	CompletedRides int     `json:"completedRides" db:"completed_rides"`
	TotalDistance  float64 `json:"totalDistance" db:"total_distance"`
	AvgDistance    float64 `json:"avgDistance" db:"-"`
}

// DriverOverall is the driver's running totals
type DriverOverall struct {
	TotalRides    int     `json:"totalRides" db:"total_rides"`
	TotalDistance float64 `json:"totalDistance" db:"total_distance"`
}

// DriverPerformanceReport ranks drivers by rides completed in the period
type DriverPerformanceReport struct {
	Period       ReportPeriod         `json:"period"`
	TotalDrivers int                  `json:"totalDrivers"`
	Performance  []*DriverPerformance `json:"performance"`
}

// VehicleUsage is one vehicle's line in the usage report
type VehicleUsage struct {
	Vehicle     VehicleSummary `json:"vehicle" db:"vehicle"`
	Monthly     VehicleMonthly `json:"monthly" db:"monthly"`
	Overall     VehicleOverall `json:"overall" db:"overall"`
	ActiveRides int            `json:"activeRides" db:"active_rides"`
}

// VehicleSummary identifies a vehicle in reports
type VehicleSummary struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	VehicleNumber string        `json:"vehicleNumber" db:"vehicle_number"`
	Type          VehicleType   `json:"type" db:"type"`
	Status        VehicleStatus `json:"status" db:"status"`
}

// VehicleMonthly covers rides the vehicle completed in the period.
// RecordedMileage is the resettable counter as stored.
type VehicleMonthly struct {
	Rides           int     `json:"rides" db:"rides"`
	Distance        float64 `json:"distance" db:"distance"`
	RecordedMileage float64 `json:"recordedMileage" db:"recorded_mileage"`
}

// VehicleOverall is the vehicle's running totals
type VehicleOverall struct {
	TotalRides   int     `json:"totalRides" db:"total_rides"`
	TotalMileage float64 `json:"totalMileage" db:"total_mileage"`
}

// VehicleUsageReport ranks vehicles by distance driven in the period
type VehicleUsageReport struct {
	Period        ReportPeriod      `json:"period"`
	TotalVehicles int               `json:"totalVehicles"`
	Totals        VehicleUsageTotal `json:"totals"`
	Vehicles      []*VehicleUsage   `json:"vehicles"`
}

// VehicleUsageTotal sums the usage report
type VehicleUsageTotal struct {
	MonthlyRides    int     `json:"monthlyRides"`
	MonthlyDistance float64 `json:"monthlyDistance"`
	TotalMileage    float64 `json:"totalMileage"`
}

// ExportKind selects the dataset of a report export
type ExportKind string

const (
	ExportRides    ExportKind = "rides"
	ExportDrivers  ExportKind = "drivers"
	ExportVehicles ExportKind = "vehicles"
)

// ExportFormat is the wire format of a report export
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// ReportExport is a flat table built for download. Header and Rows carry
// the CSV rendering of Records.
type ReportExport struct {
	Kind         ExportKind  `json:"-"`
	Title        string      `json:"type"`
	Period       string      `json:"period"`
	GeneratedAt  time.Time   `json:"generatedAt"`
	TotalRecords int         `json:"totalRecords"`
	Records      interface{} `json:"records"`
	Header       []string    `json:"-"`
	Rows         [][]string  `json:"-"`
}
