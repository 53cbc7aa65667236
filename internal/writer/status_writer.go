// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/js8-monitor/internal/status"
)

// stationStatusWriter is the concrete implementation used by the monitor.
type stationStatusWriter struct {
	plan *StatusPlan
	cli  endpointClient

	needFull bool
	last     status.Snapshot
	nameRegs []uint16
}

const statusAreaHoldingRegisters byte = 3

// NewStationStatusWriter builds a status writer if a plan is present.
// If plan is nil, status is disabled.
func NewStationStatusWriter(plan *StatusPlan, cli endpointClient) (*stationStatusWriter, bool) {
	if plan == nil {
		return nil, false
	}

	return &stationStatusWriter{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		last: status.Snapshot{
			Health: status.HealthUnknown,
		},
		nameRegs: status.EncodeStationName(plan.StationName),
	}, true
}

// WriteStatus delivers a station status snapshot into status memory.
// On any write failure, the next successful call will re-assert the full block.
func (sw *stationStatusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil || sw.plan == nil {
		return errors.New("status writer: disabled")
	}
	if sw.cli == nil {
		return fmt.Errorf("status writer: missing client for endpoint %s", sw.plan.Endpoint)
	}

	baseAddr := sw.baseAddr()
	unitID := sw.plan.UnitID

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		if err := sw.cli.WriteRegisters(
			statusAreaHoldingRegisters,
			unitID,
			baseAddr,
			sw.fullBlockRegs(s),
		); err != nil {
			sw.needFull = true
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = s
		return nil
	}

	var errs []string

	// Slot 0 - health_code
	if sw.last.Health != s.Health {
		if err := sw.writeSlot(unitID, baseAddr+status.SlotHealthCode, s.Health); err != nil {
			errs = append(errs, fmt.Sprintf("slot0 health write failed: %v", err))
		} else {
			sw.last.Health = s.Health
		}
	}

	// Slot 1 - last_error_code
	if sw.last.LastErrorCode != s.LastErrorCode {
		if err := sw.writeSlot(unitID, baseAddr+status.SlotLastErrorCode, s.LastErrorCode); err != nil {
			errs = append(errs, fmt.Sprintf("slot1 last_error write failed: %v", err))
		} else {
			sw.last.LastErrorCode = s.LastErrorCode
		}
	}

	// Slot 2 - seconds_offline
	if sw.last.SecondsOffline != s.SecondsOffline {
		if err := sw.writeSlot(unitID, baseAddr+status.SlotSecondsOffline, s.SecondsOffline); err != nil {
			errs = append(errs, fmt.Sprintf("slot2 seconds write failed: %v", err))
		} else {
			sw.last.SecondsOffline = s.SecondsOffline
		}
	}

	// Slots 3-4 - dial_hz (always written as a pair)
	if sw.last.DialHz != s.DialHz {
		if err := sw.cli.WriteRegisters(
			statusAreaHoldingRegisters,
			unitID,
			baseAddr+status.SlotDialHzHigh,
			[]uint16{uint16(s.DialHz >> 16), uint16(s.DialHz)},
		); err != nil {
			errs = append(errs, fmt.Sprintf("slot3-4 dial write failed: %v", err))
		} else {
			sw.last.DialHz = s.DialHz
		}
	}

	// Slot 5 - messages_received
	if sw.last.MessagesReceived != s.MessagesReceived {
		if err := sw.writeSlot(unitID, baseAddr+status.SlotMessagesReceived, s.MessagesReceived); err != nil {
			errs = append(errs, fmt.Sprintf("slot5 messages write failed: %v", err))
		} else {
			sw.last.MessagesReceived = s.MessagesReceived
		}
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt - re-assert on next success.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *stationStatusWriter) writeSlot(unitID uint8, addr uint16, v uint16) error {
	return sw.cli.WriteRegisters(statusAreaHoldingRegisters, unitID, addr, []uint16{v})
}

func (sw *stationStatusWriter) baseAddr() uint16 {
	// Each station owns a fixed SlotsPerStation block.
	return sw.plan.BaseSlot * status.SlotsPerStation
}

func (sw *stationStatusWriter) fullBlockRegs(s status.Snapshot) []uint16 {
	regs := status.Encode(s)

	// Station name always lives at the end of the block
	for i := 0; i < status.SlotStationNameSlots && i < len(sw.nameRegs); i++ {
		regs[status.SlotStationNameStart+i] = sw.nameRegs[i]
	}

	return regs
}
