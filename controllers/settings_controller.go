package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: svc}
}

// Get handles GET /employee/app-settings/:key
func (ctrl *SettingsController) Get(c *gin.Context) {
	setting, err := ctrl.Settings.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, setting)
}

// Put handles PUT /employee/app-settings/:key. The body is the raw JSON
// value, stored as-is.
func (ctrl *SettingsController) Put(c *gin.Context) {
	var value json.RawMessage
	if err := c.ShouldBindJSON(&value); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "value must be valid JSON")
		return
	}
	setting, err := ctrl.Settings.Put(c.Request.Context(), c.Param("key"), value)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, setting)
}
