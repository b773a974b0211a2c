package utils

import "time"

// Clock is the source of wall-clock time for components whose behavior
// depends on it (cache freshness, record timestamps, retry backoff).
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
