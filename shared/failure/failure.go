package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// Domain error kinds. The booking core reports these as sentinel-ish values so
// callers can branch on them with errors.Is while handlers still get an HTTP
// code for free.
var (
	// SlotConflict means the requested slot is already occupied by a
	// non-cancelled booking. Recoverable by picking another slot.
	SlotConflict = &Failure{Code: http.StatusConflict, Message: "requested time slot is already booked"}

	// InvalidTransition means the requested status change is not a legal edge
	// in the booking state machine.
	InvalidTransition = &Failure{Code: http.StatusConflict, Message: "status change is not allowed from the current status"}

	// AuthorizationDenied means the actor does not own the booking or
	// organization it tried to act on. Fails closed.
	AuthorizationDenied = &Failure{Code: http.StatusForbidden, Message: "you are not allowed to act on this resource"}
)

// StorageUnavailable wraps a persistence failure. It must never be mapped to a
// success or an empty result; in particular a failed availability read means
// "unknown", not "all slots free".
func StorageUnavailable(err error) error {
	msg := "storage is temporarily unavailable"
	if err != nil {
		msg = msg + ": " + err.Error()
	}

	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
	}
}

// IsStorageUnavailable reports whether err carries the storage-unavailable code.
func IsStorageUnavailable(err error) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code == http.StatusServiceUnavailable
	}

	return false
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
