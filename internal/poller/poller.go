// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"time"
)

// Config is the minimal runtime config the poller needs.
type Config struct {
	Attempts int
	Interval time.Duration
}

// Poller is a dumb, clock-driven readiness check.
// Linear interval, no backoff, no jitter.
type Poller struct {
	cfg   Config
	probe Probe
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a poller with immutable config.
func New(cfg Config, probe Probe) (*Poller, error) {
	if probe == nil {
		return nil, errors.New("poller: probe required")
	}
	if cfg.Attempts < 0 {
		return nil, errors.New("poller: attempts must be >= 0")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	return &Poller{cfg: cfg, probe: probe, sleep: sleepCtx}, nil
}

// PollOnce performs exactly one probe.
func (p *Poller) PollOnce() bool {
	return p.probe()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
