package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type ActivityController struct {
	Activity *services.ActivityService
}

func NewActivityController(svc *services.ActivityService) *ActivityController {
	return &ActivityController{Activity: svc}
}

// Recent handles GET /employee/activity?limit=
func (ctrl *ActivityController) Recent(c *gin.Context) {
	entries, err := ctrl.Activity.Recent(c.Request.Context(), atoiDefault(c.Query("limit"), 50))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, entries)
}
