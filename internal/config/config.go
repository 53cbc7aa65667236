// internal/config/config.go
package config

type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
	JS8Call JS8CallConfig `yaml:"js8call"`

	// Status publishing is optional (opt-in).
	Status *StatusConfig `yaml:"status"`
}

// ---- MONITOR ----

type MonitorConfig struct {
	LogFile         string `yaml:"log_file"`
	ReadyAttempts   int    `yaml:"ready_attempts"`
	ReadyIntervalMs int    `yaml:"ready_interval_ms"`
}

// ---- JS8CALL ----

type JS8CallConfig struct {
	// Executable is the JS8Call binary. Empty means attach to an
	// instance that is already running.
	Executable      string   `yaml:"executable"`
	HeadlessWrapper []string `yaml:"headless_wrapper"`

	APIEndpoint         string `yaml:"api_endpoint"`
	QtPlatform          string `yaml:"qt_platform"`
	DialTimeoutMs       int    `yaml:"dial_timeout_ms"`
	ReconnectIntervalMs int    `yaml:"reconnect_interval_ms"`
}

// ---- STATUS ----

type StatusConfig struct {
	Transport   string `yaml:"transport"` // modbus | ingest
	Endpoint    string `yaml:"endpoint"`
	UnitID      uint8  `yaml:"unit_id"`
	Slot        uint16 `yaml:"slot"`
	StationName string `yaml:"station_name"`
	TimeoutMs   int    `yaml:"timeout_ms"`
}

// ---- DEFAULTS ----

const (
	DefaultLogFile         = "js8call.log"
	DefaultReadyAttempts   = 30
	DefaultReadyIntervalMs = 1000

	DefaultExecutable          = "js8call"
	DefaultAPIEndpoint         = "127.0.0.1:2442"
	DefaultQtPlatform          = "xcb"
	DefaultDialTimeoutMs       = 2000
	DefaultReconnectIntervalMs = 1000

	DefaultStatusTransport = TransportModbus
	DefaultStatusTimeoutMs = 1000
)

const (
	TransportModbus = "modbus"
	TransportIngest = "ingest"
)

// DefaultHeadlessWrapper runs JS8Call against a virtual X server.
var DefaultHeadlessWrapper = []string{"xvfb-run", "-a"}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Monitor: MonitorConfig{
			LogFile:         DefaultLogFile,
			ReadyAttempts:   DefaultReadyAttempts,
			ReadyIntervalMs: DefaultReadyIntervalMs,
		},
		JS8Call: JS8CallConfig{
			Executable:          DefaultExecutable,
			HeadlessWrapper:     append([]string(nil), DefaultHeadlessWrapper...),
			APIEndpoint:         DefaultAPIEndpoint,
			QtPlatform:          DefaultQtPlatform,
			DialTimeoutMs:       DefaultDialTimeoutMs,
			ReconnectIntervalMs: DefaultReconnectIntervalMs,
		},
	}
}
