// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	m := &cfg.Monitor
	if m.LogFile == "" {
		m.LogFile = DefaultLogFile
	}
	if m.ReadyIntervalMs == 0 {
		m.ReadyIntervalMs = DefaultReadyIntervalMs
	}

	j := &cfg.JS8Call
	if j.APIEndpoint == "" {
		j.APIEndpoint = DefaultAPIEndpoint
	}
	if j.QtPlatform == "" {
		j.QtPlatform = DefaultQtPlatform
	}
	if j.DialTimeoutMs == 0 {
		j.DialTimeoutMs = DefaultDialTimeoutMs
	}
	if j.ReconnectIntervalMs == 0 {
		j.ReconnectIntervalMs = DefaultReconnectIntervalMs
	}

	// ------------------------------------------------------------
	// STATUS BLOCK NORMALIZATION (OPT-IN)
	// ------------------------------------------------------------

	s := cfg.Status
	if s == nil {
		return
	}

	if s.Transport == "" {
		s.Transport = DefaultStatusTransport
	}
	if s.TimeoutMs == 0 {
		s.TimeoutMs = DefaultStatusTimeoutMs
	}

	// Normalize station_name:
	// - ASCII already validated
	// - Truncate to max 16 characters
	if len(s.StationName) > 16 {
		s.StationName = s.StationName[:16]
	}
}
