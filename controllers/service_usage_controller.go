package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type ServiceUsageController struct {
	Usage *services.ServiceUsageService
}

func NewServiceUsageController(svc *services.ServiceUsageService) *ServiceUsageController {
	return &ServiceUsageController{Usage: svc}
}

// Catalog handles GET /employee/services
func (ctrl *ServiceUsageController) Catalog(c *gin.Context) {
	items, err := ctrl.Usage.Catalog(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, items)
}

// Record handles POST /employee/service-usages: charge a catalog service to
// a checked-in booking room.
func (ctrl *ServiceUsageController) Record(c *gin.Context) {
	var in services.ServiceUsageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid service usage payload")
		return
	}
	in.EmployeeID = employeeID(c)

	usage, err := ctrl.Usage.Record(c.Request.Context(), in, time.Now())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, usage)
}

// ForBooking handles GET /employee/bookings/:id/service-usages
func (ctrl *ServiceUsageController) ForBooking(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	usages, err := ctrl.Usage.ForBooking(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, usages)
}
