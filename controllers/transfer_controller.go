package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type TransferController struct {
	Transfers *services.TransferService
}

func NewTransferController(svc *services.TransferService) *TransferController {
	return &TransferController{Transfers: svc}
}

// Create handles POST /employee/room-transfers: move a checked-in guest to
// another available room and return the signed price adjustment.
func (ctrl *TransferController) Create(c *gin.Context) {
	var in services.TransferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid transfer payload")
		return
	}
	in.EmployeeID = employeeID(c)

	result, err := ctrl.Transfers.Transfer(c.Request.Context(), in, time.Now())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, result)
}

// History handles GET /employee/room-transfers
func (ctrl *TransferController) History(c *gin.Context) {
	transfers, err := ctrl.Transfers.History(c.Request.Context(), atoiDefault(c.Query("limit"), 50))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, transfers)
}
