// internal/status/snapshot.go
package status

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health           uint16
	LastErrorCode    uint16
	SecondsOffline   uint16
	DialHz           uint32
	MessagesReceived uint16
}

// Saturate clamps a counter into a register without wrapping.
func Saturate(v uint64) uint16 {
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}
