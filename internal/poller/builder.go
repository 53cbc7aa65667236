// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/js8-monitor/internal/config"
)

// ConfigFrom maps the monitor section onto poller config.
func ConfigFrom(m cfg.MonitorConfig) Config {
	return Config{
		Attempts: m.ReadyAttempts,
		Interval: time.Duration(m.ReadyIntervalMs) * time.Millisecond,
	}
}
