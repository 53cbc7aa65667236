// internal/monitor/reporter.go
package monitor

import (
	"context"
	"log"
	"time"

	"github.com/tamzrod/js8-monitor/internal/status"
	"github.com/tamzrod/js8-monitor/internal/writer"
)

// dialReporter is implemented by clients that remember the last dial frequency.
type dialReporter interface {
	DialFrequency() int64
}

// reporter owns the station snapshot and publishes it on a 1 Hz tick.
// It reads only lock-free state from the client and handler.
type reporter struct {
	w        writer.StatusWriter
	online   func() bool
	received func() uint64
	dialHz   func() int64
	interval time.Duration
}

func newReporter(w writer.StatusWriter, c Client, h *Handler) *reporter {
	r := &reporter{
		w:        w,
		online:   c.Online,
		received: h.Received,
		dialHz:   func() int64 { return 0 },
		interval: time.Second,
	}
	if d, ok := c.(dialReporter); ok {
		r.dialHz = d.DialFrequency
	}
	return r
}

// Run writes the boot snapshot, then one snapshot per tick until ctx ends.
func (r *reporter) Run(ctx context.Context) {
	var snap status.Snapshot

	// Default snapshot state on start.
	snap.Health = status.HealthUnknown

	// Full block write on start (identity re-assert).
	dirty := false
	if err := r.w.WriteStatus(snap); err != nil {
		log.Printf("status write failed on start: %v", err)
		dirty = true
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			next := r.next(snap)
			if next == snap && !dirty {
				continue
			}
			snap = next

			if err := r.w.WriteStatus(snap); err != nil {
				log.Printf("status write failed: %v", err)
				dirty = true
				continue
			}
			dirty = false
		}
	}
}

// next derives the snapshot for one tick from prev.
// seconds_offline counts ticks spent offline and resets on recovery.
func (r *reporter) next(prev status.Snapshot) status.Snapshot {
	s := prev

	s.MessagesReceived = status.Saturate(r.received())
	if hz := r.dialHz(); hz > 0 && hz <= 0xFFFFFFFF {
		s.DialHz = uint32(hz)
	}

	if r.online() {
		// Recovery / OK
		s.Health = status.HealthOK
		s.LastErrorCode = status.ErrorNone
		s.SecondsOffline = 0
		return s
	}

	s.Health = status.HealthError
	s.LastErrorCode = status.ErrorAPIOffline
	if s.SecondsOffline < 0xFFFF {
		s.SecondsOffline++
	}
	return s
}
