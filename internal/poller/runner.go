// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Wait probes until ready, the attempt budget is spent, or ctx ends.
// Each round: probe, report progress, sleep one interval.
// Budget exhaustion returns Ready=false with a nil Err.
func (p *Poller) Wait(ctx context.Context, progress Progress) Result {
	start := time.Now()
	res := Result{}

	for {
		if p.PollOnce() {
			res.Ready = true
			break
		}
		if res.Attempts >= p.cfg.Attempts {
			break
		}

		if progress != nil {
			progress(res.Attempts+1, p.cfg.Attempts)
		}

		if err := p.sleep(ctx, p.cfg.Interval); err != nil {
			res.Err = err
			break
		}
		res.Attempts++
	}

	res.Elapsed = time.Since(start)
	return res
}
