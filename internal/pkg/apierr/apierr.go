// Package apierr lets the service layer say how a failure should surface
// over HTTP without importing gin. Handlers unwrap with errors.As and treat
// anything else as a 500.
package apierr

import (
	"fmt"
	"net/http"
)

// Error pairs a wrapped cause with the status and code its response
// envelope should carry. Codes are stable snake_case identifiers the
// dashboard frontend matches on, e.g. "invalid_period_key".
type Error struct {
	Status int
	Code   string
	Err    error
}

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// BadRequest tags a validation or upload failure the client can correct.
func BadRequest(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

// NotFound tags a lookup miss for a key the client named.
func NotFound(code string, err error) *Error {
	return New(http.StatusNotFound, code, err)
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	case e.Code != "":
		return e.Code
	default:
		if t := http.StatusText(e.Status); t != "" {
			return t
		}
		return "api error"
	}
}

func (e *Error) Unwrap() error { return e.Err }
