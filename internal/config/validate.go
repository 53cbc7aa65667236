// internal/config/validate.go
package config

import (
	"fmt"
	"net"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// MONITOR
	// ------------------------------------------------------------

	if cfg.Monitor.ReadyAttempts < 0 {
		return fmt.Errorf("monitor: ready_attempts must be >= 0, got %d", cfg.Monitor.ReadyAttempts)
	}
	if cfg.Monitor.ReadyIntervalMs < 0 {
		return fmt.Errorf("monitor: ready_interval_ms must be >= 0, got %d", cfg.Monitor.ReadyIntervalMs)
	}

	// ------------------------------------------------------------
	// JS8CALL API
	// ------------------------------------------------------------

	if cfg.JS8Call.APIEndpoint != "" {
		if _, _, err := net.SplitHostPort(cfg.JS8Call.APIEndpoint); err != nil {
			return fmt.Errorf("js8call: api_endpoint %q: %w", cfg.JS8Call.APIEndpoint, err)
		}
	}
	if cfg.JS8Call.DialTimeoutMs < 0 {
		return fmt.Errorf("js8call: dial_timeout_ms must be >= 0, got %d", cfg.JS8Call.DialTimeoutMs)
	}
	if cfg.JS8Call.ReconnectIntervalMs < 0 {
		return fmt.Errorf("js8call: reconnect_interval_ms must be >= 0, got %d", cfg.JS8Call.ReconnectIntervalMs)
	}

	// ------------------------------------------------------------
	// STATUS BLOCK (OPT-IN)
	// ------------------------------------------------------------

	s := cfg.Status
	if s == nil {
		return nil
	}

	switch s.Transport {
	case "", TransportModbus, TransportIngest:
	default:
		return fmt.Errorf("status: unknown transport %q", s.Transport)
	}

	if s.Endpoint == "" {
		return fmt.Errorf("status: endpoint required")
	}
	if _, _, err := net.SplitHostPort(s.Endpoint); err != nil {
		return fmt.Errorf("status: endpoint %q: %w", s.Endpoint, err)
	}

	// station_name sanity (ASCII only)
	for i := 0; i < len(s.StationName); i++ {
		if s.StationName[i] > 0x7F {
			return fmt.Errorf("status: station_name must contain ASCII characters only")
		}
	}

	if s.TimeoutMs < 0 {
		return fmt.Errorf("status: timeout_ms must be >= 0, got %d", s.TimeoutMs)
	}

	return nil
}
