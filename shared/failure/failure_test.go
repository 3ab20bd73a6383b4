package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"apelcal/shared/failure"
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

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("bad input"),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("invalid password"),
			code:    http.StatusUnauthorized,
			message: "invalid password",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("event type not found"),
			code:    http.StatusNotFound,
			message: "event type not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("slot already taken"),
			code:    http.StatusConflict,
			message: "slot already taken",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("not allowed"),
			code:    http.StatusForbidden,
			message: "not allowed",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestNilErrors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should be nil")
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected %d for plain errors, got %d", http.StatusInternalServerError, got)
	}
}

func TestPredicates(t *testing.T) {
	if !failure.IsConflict(failure.Conflict("taken")) {
		t.Error("IsConflict should be true for conflict failures")
	}
	if failure.IsConflict(failure.NotFound("missing")) {
		t.Error("IsConflict should be false for other failures")
	}
	if !failure.IsNotFound(failure.NotFound("missing")) {
		t.Error("IsNotFound should be true for not-found failures")
	}
	if failure.IsNotFound(errors.New("plain error")) {
		t.Error("IsNotFound should be false for plain errors")
	}
}
