// internal/poller/types.go
package poller

import "time"

// Probe reports whether the watched resource is ready.
// It must not block.
type Probe func() bool

// Progress is called before each wait, with a 1-based attempt number.
type Progress func(attempt, max int)

// Result is what one bounded wait produced.
type Result struct {
	Ready    bool
	Attempts int // sleeps performed
	Elapsed  time.Duration

	// Err is non-nil only when the wait was cancelled.
	// Exhausting attempts is NOT an error.
	Err error
}
