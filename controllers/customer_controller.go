package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type CustomerController struct {
	Customers *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{Customers: svc}
}

// List handles GET /employee/customers?search=&page=&pageSize=
func (ctrl *CustomerController) List(c *gin.Context) {
	pageNum := atoiDefault(c.Query("page"), 1)
	pageSize := atoiDefault(c.Query("pageSize"), 100)

	customers, total, err := ctrl.Customers.List(c.Request.Context(), c.Query("search"), pageNum, pageSize)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, customers, total, pageNum, pageSize)
}

// Get handles GET /employee/customers/:id
func (ctrl *CustomerController) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	cust, err := ctrl.Customers.CustomerByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, cust)
}

// Create handles POST /employee/customers
func (ctrl *CustomerController) Create(c *gin.Context) {
	var in services.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid customer payload")
		return
	}
	cust, err := ctrl.Customers.Create(c.Request.Context(), in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, cust)
}

// Update handles PUT /employee/customers/:id
func (ctrl *CustomerController) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var in services.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid customer payload")
		return
	}
	cust, err := ctrl.Customers.Update(c.Request.Context(), id, in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, cust)
}

// Delete handles DELETE /employee/customers/:id
func (ctrl *CustomerController) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Customers.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"deleted": true})
}

type selectionPayload struct {
	IDs []uint `json:"ids" binding:"required"`
}

// ResolveSelection handles POST /employee/customers/selection: the
// multi-select confirm step. Ids are resolved against the database; unknown
// ids fail instead of being silently dropped.
func (ctrl *CustomerController) ResolveSelection(c *gin.Context) {
	var p selectionPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "ids are required")
		return
	}
	customers, err := ctrl.Customers.ResolveMany(c.Request.Context(), p.IDs)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, customers)
}
