// Package workers runs the client's background jobs: the retry queue and
// the scheduler that drains it into the remote authority.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; it launches whatever goroutines the worker needs,
// bound to ctx. Stop cancels them and waits until they have exited. Both
// are safe to call repeatedly.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
