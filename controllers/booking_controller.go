package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

// List handles GET /employee/bookings with status/date/search filters.
func (ctrl *BookingController) List(c *gin.Context) {
	f := services.BookingListFilter{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     atoiDefault(c.Query("page"), 1),
		PageSize: atoiDefault(c.Query("pageSize"), 20),
	}
	if raw := c.Query("from"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "from must be a valid date (YYYY-MM-DD)")
			return
		}
		f.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "to must be a valid date (YYYY-MM-DD)")
			return
		}
		f.To = &t
	}

	bookings, total, err := ctrl.Bookings.List(c.Request.Context(), f)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, bookings, total, f.Page, f.PageSize)
}

// Create handles POST /employee/bookings: the direct (non-wizard) creation
// path used by API clients.
func (ctrl *BookingController) Create(c *gin.Context) {
	var in services.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid booking payload")
		return
	}
	in.EmployeeID = employeeID(c)

	booking, err := ctrl.Bookings.CreateBooking(c.Request.Context(), in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, booking)
}

// Get handles GET /employee/bookings/:id
func (ctrl *BookingController) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.Details(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, booking)
}

// Update handles PUT /employee/bookings/:id with a partial body.
func (ctrl *BookingController) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var in services.UpdateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid booking payload")
		return
	}
	in.EmployeeID = employeeID(c)

	booking, err := ctrl.Bookings.Update(c.Request.Context(), id, in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, booking)
}

// Delete handles DELETE /employee/bookings/:id
func (ctrl *BookingController) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Bookings.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"deleted": true})
}

// CheckIn handles POST /employee/bookings/:id/check-in
func (ctrl *BookingController) CheckIn(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.CheckIn(c.Request.Context(), id, employeeID(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, booking)
}

// Checkout handles POST /employee/bookings/:id/checkout
func (ctrl *BookingController) Checkout(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.Checkout(c.Request.Context(), id, employeeID(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, booking)
}

// CheckedInRooms handles GET /employee/bookings/checked-in-rooms: the
// transfer picker, guest name with room and remaining nights per row.
func (ctrl *BookingController) CheckedInRooms(c *gin.Context) {
	rooms, err := ctrl.Bookings.CheckedInRooms(c.Request.Context(), time.Now())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, rooms)
}
