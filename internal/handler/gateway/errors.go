package gateway

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("not authenticated")

	// ErrInvalidJSON is returned when a request body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidParam is returned for a malformed path or query parameter.
	ErrInvalidParam = errors.New("invalid parameter")
)
