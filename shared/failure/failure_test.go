package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"seatsafe/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
		},
		{
			name:    "SlotConflict",
			failure: failure.SlotConflict,
			code:    http.StatusConflict,
		},
		{
			name:    "InvalidTransition",
			failure: failure.InvalidTransition,
			code:    http.StatusConflict,
		},
		{
			name:    "AuthorizationDenied",
			failure: failure.AuthorizationDenied,
			code:    http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "BadRequest",
			err:  failure.BadRequest(errors.New("bad input")),
			code: http.StatusBadRequest,
		},
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("bad input"),
			code: http.StatusBadRequest,
		},
		{
			name: "Unauthorized",
			err:  failure.Unauthorized("no token"),
			code: http.StatusUnauthorized,
		},
		{
			name: "InternalError",
			err:  failure.InternalError(errors.New("boom")),
			code: http.StatusInternalServerError,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("booking not found"),
			code: http.StatusNotFound,
		},
		{
			name: "Conflict",
			err:  failure.Conflict("already booked"),
			code: http.StatusConflict,
		},
		{
			name: "Forbidden",
			err:  failure.Forbidden("nope"),
			code: http.StatusForbidden,
		},
		{
			name: "StorageUnavailable",
			err:  failure.StorageUnavailable(errors.New("connection refused")),
			code: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected %d for a plain error, got %d", http.StatusInternalServerError, got)
	}
}

func TestIsStorageUnavailable(t *testing.T) {
	if !failure.IsStorageUnavailable(failure.StorageUnavailable(errors.New("down"))) {
		t.Error("expected storage failure to be detected")
	}

	if failure.IsStorageUnavailable(failure.SlotConflict) {
		t.Error("slot conflict must not read as storage unavailability")
	}

	if failure.IsStorageUnavailable(errors.New("plain error")) {
		t.Error("plain error must not read as storage unavailability")
	}
}

func TestStorageUnavailable_WrapsMessage(t *testing.T) {
	err := failure.StorageUnavailable(errors.New("dial tcp: refused"))

	var f *failure.Failure
	if !errors.As(err, &f) {
		t.Fatal("expected a *Failure")
	}

	if f.Message == "" {
		t.Error("expected the cause to be carried in the message")
	}
}
