// Package services holds the front-desk domain logic. Sentinel and typed
// errors defined here let controllers translate failures into HTTP statuses:
// ErrNotFound -> 404, ConflictError -> 409, ValidationError -> 400.
package services

import (
	"errors"
	"fmt"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError is a local, recoverable input failure. Its message is
// user-facing and blocks only the operation that produced it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ConflictError is a business-rule failure (room no longer available,
// promotion already claimed, ...). The message is surfaced verbatim so the
// user can adjust and retry.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflictf builds a ConflictError.
func Conflictf(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// isDuplicateErr detects MySQL duplicate-key failures (error 1062) so they
// can surface as conflicts instead of opaque 500s.
func isDuplicateErr(err error) bool {
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate")
}
