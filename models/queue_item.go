package models

import "time"

// QueueItem is a pending unit of sync work held by the retry queue.
// The queue keeps at most one item per key.
type QueueItem struct {
	Key        string
	RetryCount int
	// LastAttempt is zero until the first failed attempt.
	LastAttempt time.Time
}
