package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/reports"
	"github.com/piresc/fleetdispatch/services/rides/lifecycle"
)

var (
	errInvalidQuery  = apperror.Validation("invalid_query", "Invalid report query parameters")
	errInvalidFormat = apperror.Validation("invalid_format", "Invalid export format. Use: json or csv")
)

// ReportsHandler serves the fleet reports
type ReportsHandler struct {
	reportUC reports.ReportUC
}

// NewReportsHandler creates a reports HTTP handler
func NewReportsHandler(reportUC reports.ReportUC) *ReportsHandler {
	return &ReportsHandler{reportUC: reportUC}
}

// DashboardStats handles GET /api/reports/dashboard-stats
func (h *ReportsHandler) DashboardStats(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	stats, err := h.reportUC.DashboardStats(c.Request().Context(), a)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// MonthlyRides handles GET /api/reports/monthly-rides?month=&year=
func (h *ReportsHandler) MonthlyRides(c echo.Context) error {
	month, year, err := parsePeriod(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	report, err := h.reportUC.MonthlyRides(c.Request().Context(), month, year)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", report)
}

// DriverPerformance handles GET /api/reports/driver-performance?month=&year=&driverId=
func (h *ReportsHandler) DriverPerformance(c echo.Context) error {
	month, year, err := parsePeriod(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	driverID, err := optionalUUID(c.QueryParam("driverId"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	report, err := h.reportUC.DriverPerformance(c.Request().Context(), month, year, driverID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", report)
}

// VehicleUsage handles GET /api/reports/vehicle-usage?month=&year=&vehicleId=
func (h *ReportsHandler) VehicleUsage(c echo.Context) error {
	month, year, err := parsePeriod(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	vehicleID, err := optionalUUID(c.QueryParam("vehicleId"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	report, err := h.reportUC.VehicleUsage(c.Request().Context(), month, year, vehicleID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", report)
}

// RideHistory handles GET /api/reports/ride-history
func (h *ReportsHandler) RideHistory(c echo.Context) error {
	q, err := parseHistoryQuery(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if q.DriverID, err = optionalUUID(c.QueryParam("driverId")); err != nil {
		return utils.HandleError(c, err)
	}
	if q.VehicleID, err = optionalUUID(c.QueryParam("vehicleId")); err != nil {
		return utils.HandleError(c, err)
	}
	if q.RequesterID, err = optionalUUID(c.QueryParam("requesterId")); err != nil {
		return utils.HandleError(c, err)
	}

	list, err := h.reportUC.RideHistory(c.Request().Context(), q)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// MyHistory handles GET /api/reports/my-history
func (h *ReportsHandler) MyHistory(c echo.Context) error {
	a, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	q, err := parseHistoryQuery(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	list, err := h.reportUC.MyHistory(c.Request().Context(), a, q)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// Export handles GET /api/reports/export/:type?month=&year=&format=json|csv
func (h *ReportsHandler) Export(c echo.Context) error {
	month, year, err := parsePeriod(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	format := models.ExportFormat(strings.ToLower(c.QueryParam("format")))
	if format == "" {
		format = models.ExportJSON
	}
	if format != models.ExportJSON && format != models.ExportCSV {
		return utils.HandleError(c, errInvalidFormat)
	}

	out, err := h.reportUC.Export(c.Request().Context(), models.ExportKind(c.Param("type")), month, year)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if format == models.ExportJSON {
		return utils.SuccessResponse(c, http.StatusOK, "", out)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(out.Header); err != nil {
		return utils.HandleError(c, err)
	}
	if err := w.WriteAll(out.Rows); err != nil {
		return utils.HandleError(c, err)
	}

	filename := fmt.Sprintf("%s-%s.csv", out.Kind, strings.ReplaceAll(out.Period, " ", "-"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func parsePeriod(c echo.Context) (month, year int, err error) {
	if s := c.QueryParam("month"); s != "" {
		if month, err = strconv.Atoi(s); err != nil {
			return 0, 0, reports.ErrInvalidPeriod
		}
	}
	if s := c.QueryParam("year"); s != "" {
		if year, err = strconv.Atoi(s); err != nil {
			return 0, 0, reports.ErrInvalidPeriod
		}
	}
	return month, year, nil
}

func parseHistoryQuery(c echo.Context) (models.HistoryQuery, error) {
	var q models.HistoryQuery
	params := c.QueryParams()

	for _, raw := range params["status"] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				q.Statuses = append(q.Statuses, models.RideStatus(s))
			}
		}
	}
	if s := params.Get("startDate"); s != "" {
		d, err := lifecycle.ParseScheduledDate(s)
		if err != nil {
			return q, errInvalidQuery
		}
		q.StartDate = &d
	}
	if s := params.Get("endDate"); s != "" {
		d, err := lifecycle.ParseScheduledDate(s)
		if err != nil {
			return q, errInvalidQuery
		}
		q.EndDate = &d
	}

	q.Page, _ = strconv.Atoi(params.Get("page"))
	q.Limit, _ = strconv.Atoi(params.Get("limit"))
	return q, nil
}

func optionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, errInvalidQuery
	}
	return &id, nil
}
