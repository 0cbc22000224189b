package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// BookingSessionController exposes the booking wizard as a REST resource:
// open a session, walk it forward and back, and submit it into a booking.
type BookingSessionController struct {
	Sessions *services.BookingSessionService
}

func NewBookingSessionController(svc *services.BookingSessionService) *BookingSessionController {
	return &BookingSessionController{Sessions: svc}
}

// Open handles POST /employee/booking-sessions. A new session always starts
// from the zero state.
func (ctrl *BookingSessionController) Open(c *gin.Context) {
	sess, err := ctrl.Sessions.Open(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, sess)
}

// Get handles GET /employee/booking-sessions/:sessionId
func (ctrl *BookingSessionController) Get(c *gin.Context) {
	sess, err := ctrl.Sessions.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, sess)
}

// Close handles DELETE /employee/booking-sessions/:sessionId (wizard cancel).
func (ctrl *BookingSessionController) Close(c *gin.Context) {
	if err := ctrl.Sessions.Close(c.Request.Context(), c.Param("sessionId")); err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"closed": true})
}

type selectCustomerPayload struct {
	CustomerID uint `json:"customerId" binding:"required"`
}

// SelectCustomer handles PUT /employee/booking-sessions/:sessionId/customer
func (ctrl *BookingSessionController) SelectCustomer(c *gin.Context) {
	var p selectCustomerPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "customerId is required")
		return
	}
	sess, err := ctrl.Sessions.SelectCustomer(c.Request.Context(), c.Param("sessionId"), p.CustomerID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, sess)
}

type sessionDatesPayload struct {
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

// SetDates handles PUT /employee/booking-sessions/:sessionId/dates. Changing
// the range recomputes every selected room's nights and totals.
func (ctrl *BookingSessionController) SetDates(c *gin.Context) {
	var p sessionDatesPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "checkIn and checkOut are required")
		return
	}
	checkIn, err := parseDate(p.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "checkIn must be a valid date (YYYY-MM-DD)")
		return
	}
	checkOut, err := parseDate(p.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "checkOut must be a valid date (YYYY-MM-DD)")
		return
	}

	sess, err := ctrl.Sessions.SetDates(c.Request.Context(), c.Param("sessionId"), checkIn, checkOut)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, sess)
}

type addRoomPayload struct {
	RoomID uint `json:"roomId" binding:"required"`
	Guests int  `json:"guests"`
}

// AddRoom handles POST /employee/booking-sessions/:sessionId/rooms
func (ctrl *BookingSessionController) AddRoom(c *gin.Context) {
	var p addRoomPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "roomId is required")
		return
	}
	sess, err := ctrl.Sessions.AddRoom(c.Request.Context(), c.Param("sessionId"), p.RoomID, p.Guests)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, sess)
}

// RemoveRoom handles DELETE /employee/booking-sessions/:sessionId/rooms/:roomId
func (ctrl *BookingSessionController) RemoveRoom(c *gin.Context) {
	roomID, ok := uintParam(c, "roomId")
	if !ok {
		return
	}
	sess, err := ctrl.Sessions.RemoveRoom(c.Request.Context(), c.Param("sessionId"), roomID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, sess)
}

type depositPayload struct {
	Amount    *float64 `json:"amount"`
	Confirmed *bool    `json:"confirmed"`
	Method    *string  `json:"method"`
}

// SetDeposit handles PUT /employee/booking-sessions/:sessionId/deposit. The
// suggested amount is synced when the summary step is entered; this endpoint
// lets the employee override it before submit.
func (ctrl *BookingSessionController) SetDeposit(c *gin.Context) {
	var p depositPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid deposit payload")
		return
	}
	sess, err := ctrl.Sessions.SetDeposit(c.Request.Context(), c.Param("sessionId"), p.Amount, p.Confirmed, p.Method)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, sess)
}

type notesPayload struct {
	Notes string `json:"notes"`
}

// SetNotes handles PUT /employee/booking-sessions/:sessionId/notes
func (ctrl *BookingSessionController) SetNotes(c *gin.Context) {
	var p notesPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid notes payload")
		return
	}
	sess, err := ctrl.Sessions.SetNotes(c.Request.Context(), c.Param("sessionId"), p.Notes)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, sess)
}

// Next handles POST /employee/booking-sessions/:sessionId/next. Step guards
// return 400 and leave the session where it was.
func (ctrl *BookingSessionController) Next(c *gin.Context) {
	sess, err := ctrl.Sessions.Next(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, sess)
}

// Back handles POST /employee/booking-sessions/:sessionId/back
func (ctrl *BookingSessionController) Back(c *gin.Context) {
	sess, err := ctrl.Sessions.Back(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, sess)
}

// Submit handles POST /employee/booking-sessions/:sessionId/submit. Success
// creates the booking and discards the session; failure keeps the session so
// the employee can correct and retry.
func (ctrl *BookingSessionController) Submit(c *gin.Context) {
	booking, err := ctrl.Sessions.Submit(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, booking)
}
