package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Reports: svc}
}

// reportRange reads from/to query parameters, defaulting to the last 30
// days.
func reportRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from, ok := dateQueryOrDefault(c, "from", now.AddDate(0, 0, -30))
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := dateQueryOrDefault(c, "to", now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// Revenue handles GET /employee/reports/revenue
func (ctrl *ReportController) Revenue(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}
	report, err := ctrl.Reports.Revenue(c.Request.Context(), from, to)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, report)
}

// Occupancy handles GET /employee/reports/occupancy
func (ctrl *ReportController) Occupancy(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}
	report, err := ctrl.Reports.Occupancy(c.Request.Context(), from, to)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, report)
}

// TopCustomers handles GET /employee/reports/customers
func (ctrl *ReportController) TopCustomers(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}
	items, err := ctrl.Reports.TopCustomers(c.Request.Context(), from, to, atoiDefault(c.Query("limit"), 10))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, items)
}

// ServiceBreakdown handles GET /employee/reports/services
func (ctrl *ReportController) ServiceBreakdown(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}
	items, err := ctrl.Reports.ServiceBreakdown(c.Request.Context(), from, to)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, items)
}
