package utils

import "github.com/google/uuid"

// TraceIDHeader carries the request trace id across HTTP hops; the same
// name, lower-cased, is used as gRPC metadata key.
const TraceIDHeader = "X-Trace-ID"

// NewTraceID returns a time-ordered UUIDv7, falling back to a random v4.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
