// internal/writer/types.go
package writer

import (
	"time"

	"github.com/tamzrod/js8-monitor/internal/status"
)

// StatusPlan is the fully-built status delivery plan.
type StatusPlan struct {
	Transport   string
	Endpoint    string
	UnitID      uint8
	BaseSlot    uint16
	StationName string
	Timeout     time.Duration
}

// StatusWriter is the delivery-only contract for station status.
// It receives a snapshot and writes it verbatim.
// No logic, no state, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// endpointClient is the exact contract the status writer uses.
// Both transports implement it.
type endpointClient interface {
	WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error
}
