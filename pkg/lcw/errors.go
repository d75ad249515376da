package lcw

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies an upstream failure.
type ErrorKind string

const (
	// KindUnauthorized means the API key was rejected (upstream 401).
	KindUnauthorized ErrorKind = "unauthorized"

	// KindNotFound means the requested resource does not exist (upstream 404).
	KindNotFound ErrorKind = "not_found"

	// KindRateLimited means the upstream rate limit was hit (upstream 429).
	KindRateLimited ErrorKind = "rate_limited"

	// KindUpstream covers any other non-2xx upstream response.
	KindUpstream ErrorKind = "upstream_error"

	// KindTimeout means the upstream call exceeded its deadline.
	KindTimeout ErrorKind = "timeout"

	// KindNetwork covers any other transport failure.
	KindNetwork ErrorKind = "network_error"
)

// Error is a classified upstream failure. The routing layer selects the
// response status from Kind via HTTPStatus, never from the message text.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lcw %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("lcw %s: %s", e.Kind, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to the status the routing layer returns.
// Everything upstream-related that is not one of the three client-visible
// kinds surfaces as a bad gateway.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}
