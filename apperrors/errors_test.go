package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Authorization("nope"), http.StatusForbidden},
		{InvalidTransition("cannot"), http.StatusConflict},
		{Conflict("lost race"), http.StatusConflict},
		{Timeout("op", errors.New("deadline")), http.StatusGatewayTimeout},
		{NotFound("missing"), http.StatusNotFound},
		{Internal("boom", errors.New("x")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.err.Code, got, tc.want)
		}
	}
}

func TestCodeOf(t *testing.T) {
	err := Validation("no good")
	if CodeOf(err) != CodeValidation {
		t.Errorf("CodeOf = %s, want %s", CodeOf(err), CodeValidation)
	}

	wrapped := fmt.Errorf("while handling request: %w", err)
	if !Is(wrapped, CodeValidation) {
		t.Error("wrapped taxonomy errors should still match their code")
	}

	if CodeOf(errors.New("plain")) != CodeInternal {
		t.Error("plain errors should default to internal")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := Timeout("load report", cause)
	if !errors.Is(err, cause) {
		t.Error("taxonomy errors should unwrap to their cause")
	}
}
