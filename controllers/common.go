// Package controllers binds HTTP requests to the front-desk services and
// writes the {data}/{error} envelopes the frontend unwraps.
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// Error codes surfaced in the error envelope.
const (
	codeInvalidPayload   = "error.invalidPayload"
	codeValidationFailed = "error.validationFailed"
	codeNotFound         = "error.notFound"
	codeConflict         = "error.conflict"
	codeInternal         = "error.internal"
)

// RespondServiceError maps domain errors to HTTP statuses. Validation and
// conflict messages are user-facing and returned verbatim; anything else is
// an opaque 500.
func RespondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONError(c, http.StatusBadRequest, codeValidationFailed, vErr.Message)
		return
	}
	var cErr *services.ConflictError
	if errors.As(err, &cErr) {
		utils.JSONError(c, http.StatusConflict, codeConflict, cErr.Message)
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, codeNotFound, "the requested resource was not found")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, codeInternal, "an internal error occurred")
}

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidPayload, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(n), true
}

// parseDate parses an ISO date string (no time component).
func parseDate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}

// employeeID reads the authenticated employee id set by the auth middleware.
func employeeID(c *gin.Context) uint {
	if v, ok := c.Get("employeeID"); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}

// atoiDefault parses a query integer, falling back when absent or invalid.
func atoiDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
