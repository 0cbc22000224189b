package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type PromotionController struct {
	Promotions *services.PromotionService
}

func NewPromotionController(svc *services.PromotionService) *PromotionController {
	return &PromotionController{Promotions: svc}
}

// List handles GET /employee/promotions?status=
func (ctrl *PromotionController) List(c *gin.Context) {
	promos, err := ctrl.Promotions.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, promos)
}

// Get handles GET /employee/promotions/:id
func (ctrl *PromotionController) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	promo, err := ctrl.Promotions.ByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, promo)
}

// Create handles POST /employee/promotions
func (ctrl *PromotionController) Create(c *gin.Context) {
	var in services.PromotionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid promotion payload")
		return
	}
	promo, err := ctrl.Promotions.Create(c.Request.Context(), in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, promo)
}

// Update handles PUT /employee/promotions/:id
func (ctrl *PromotionController) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var in services.PromotionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid promotion payload")
		return
	}
	promo, err := ctrl.Promotions.Update(c.Request.Context(), id, in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, promo)
}

// Delete handles DELETE /employee/promotions/:id
func (ctrl *PromotionController) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Promotions.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"deleted": true})
}

type claimPayload struct {
	Code       string `json:"code" binding:"required"`
	CustomerID uint   `json:"customerId" binding:"required"`
}

// Claim handles POST /employee/promotions/claim: claim a promotion code on a
// customer's behalf. A second claim for the same customer conflicts.
func (ctrl *PromotionController) Claim(c *gin.Context) {
	var p claimPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "code and customerId are required")
		return
	}
	claim, err := ctrl.Promotions.Claim(c.Request.Context(), p.Code, p.CustomerID, time.Now())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, claim)
}

// CustomerClaims handles GET /employee/customers/:id/promotions
func (ctrl *PromotionController) CustomerClaims(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	claims, err := ctrl.Promotions.ClaimsForCustomer(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, claims)
}
