package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures (connection refused, DNS,
// broken response body). Match with errors.Is.
var ErrUnavailable = errors.New("service unavailable")

// Error is the uniform failure produced for non-2xx responses. Message holds
// the response body text, or a generic message when the body was empty.
// Callers never see transport detail beyond this.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}
