package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// sessionFinder is the slice of the booking-session service the availability
// list needs: resolving a wizard session so its selected rooms can be
// excluded.
type sessionFinder interface {
	Get(ctx context.Context, id string) (*services.BookingSession, error)
}

type RoomController struct {
	Rooms    *services.RoomService
	Sessions sessionFinder
}

func NewRoomController(svc *services.RoomService, sessions sessionFinder) *RoomController {
	return &RoomController{Rooms: svc, Sessions: sessions}
}

// availabilityExclusions resolves the room ids a wizard session has already
// selected. An empty session id means no exclusions; a stale one fails
// loudly instead of silently showing selectable duplicates.
func availabilityExclusions(ctx context.Context, sessions sessionFinder, sessionID string) ([]uint, error) {
	if sessionID == "" || sessions == nil {
		return nil, nil
	}
	sess, err := sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.SelectedRoomIDs(), nil
}

// Available handles GET /employee/rooms/available. Dates are required; the
// remaining filters narrow the grouped result, and passing the wizard's
// sessionId keeps already-selected rooms out of the list.
func (ctrl *RoomController) Available(c *gin.Context) {
	checkIn, err := parseDate(c.Query("checkIn"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "checkIn must be a valid date (YYYY-MM-DD)")
		return
	}
	checkOut, err := parseDate(c.Query("checkOut"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "checkOut must be a valid date (YYYY-MM-DD)")
		return
	}

	excludeIDs, err := availabilityExclusions(c.Request.Context(), ctrl.Sessions, c.Query("sessionId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	filter := services.AvailabilityFilter{Search: c.Query("search"), ExcludeIDs: excludeIDs}
	if raw := c.Query("roomTypeId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.RoomTypeID = uint(id)
		}
	}
	if raw := c.Query("minPrice"); raw != "" {
		filter.MinPrice, _ = strconv.ParseFloat(raw, 64)
	}
	if raw := c.Query("maxPrice"); raw != "" {
		filter.MaxPrice, _ = strconv.ParseFloat(raw, 64)
	}

	groups, err := ctrl.Rooms.Available(c.Request.Context(), checkIn, checkOut, filter)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, groups)
}

// List handles GET /employee/rooms?status=
func (ctrl *RoomController) List(c *gin.Context) {
	rooms, err := ctrl.Rooms.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, rooms)
}

// Get handles GET /employee/rooms/:id
func (ctrl *RoomController) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.Rooms.RoomByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, room)
}

// Create handles POST /employee/rooms
func (ctrl *RoomController) Create(c *gin.Context) {
	var in services.RoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid room payload")
		return
	}
	room, err := ctrl.Rooms.Create(c.Request.Context(), in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, room)
}

// Update handles PUT /employee/rooms/:id with a partial body.
func (ctrl *RoomController) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid room payload")
		return
	}
	room, err := ctrl.Rooms.Update(c.Request.Context(), id, updates)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, room)
}

// Delete handles DELETE /employee/rooms/:id
func (ctrl *RoomController) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Rooms.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"deleted": true})
}

// RoomTypes handles GET /employee/room-types
func (ctrl *RoomController) RoomTypes(c *gin.Context) {
	types, err := ctrl.Rooms.RoomTypes(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, types)
}

// CreateRoomType handles POST /employee/room-types
func (ctrl *RoomController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid room type payload")
		return
	}
	created, err := ctrl.Rooms.CreateRoomType(c.Request.Context(), rt)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, created)
}

// dateQueryOrDefault parses an optional date query parameter.
func dateQueryOrDefault(c *gin.Context, name string, def time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	t, err := parseDate(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, name+" must be a valid date (YYYY-MM-DD)")
		return time.Time{}, false
	}
	return t, true
}
