package adapter

import "errors"

var (
	// ErrUnauthorized means the users service did not recognise the token.
	ErrUnauthorized = errors.New("caller unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")

	// ErrUpstreamUnavailable means a downstream service could not be reached
	// or did not answer in time.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamFailure means a downstream service answered with an
	// outcome the gateway has no mapping for.
	ErrUpstreamFailure = errors.New("upstream failure")
)

// DownstreamError pairs a sentinel with the detail message the downstream
// service answered with.
type DownstreamError struct {
	Err    error
	Detail string
}

func (e *DownstreamError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *DownstreamError) Unwrap() error {
	return e.Err
}
