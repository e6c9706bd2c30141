package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"cause and code", BadRequest("invalid_period_key", errors.New("bad key")), "invalid_period_key: bad key"},
		{"code only", &Error{Status: http.StatusBadRequest, Code: "empty_upload"}, "empty_upload"},
		{"status only", &Error{Status: http.StatusNotFound}, "Not Found"},
		{"zero value", &Error{}, "api error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestConstructorsAndUnwrap(t *testing.T) {
	cause := errors.New("no note")
	err := NotFound("note_not_found", cause)

	if err.Status != http.StatusNotFound {
		t.Fatalf("NotFound status = %d", err.Status)
	}
	if BadRequest("x", nil).Status != http.StatusBadRequest {
		t.Fatal("BadRequest status mismatch")
	}

	// Wrapping keeps both the cause and the *Error reachable.
	wrapped := fmt.Errorf("add note: %w", err)
	if !errors.Is(wrapped, cause) {
		t.Fatal("cause lost through wrapping")
	}
	var ae *Error
	if !errors.As(wrapped, &ae) || ae.Code != "note_not_found" {
		t.Fatalf("errors.As failed: %+v", ae)
	}
}
