package server

import "context"

// Server defines the lifecycle contract of the remote authority's transport
// servers.
type Server interface {
	// RunServer serves until ctx is cancelled, a stop signal arrives or a
	// listener fails, then shuts every transport down gracefully.
	RunServer(ctx context.Context) error
}
