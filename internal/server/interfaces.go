package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// Run starts serving requests and blocks until ctx is cancelled or a
	// transport fails, then shuts every transport down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the servers; ctx bounds the wait for
	// in-flight requests.
	Shutdown(ctx context.Context) error
}
