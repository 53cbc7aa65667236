// internal/status/encode.go
package status

// Encode converts a Snapshot into the live slots of a status block.
// Reserved and station name slots are left zero.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerStation)

	regs[SlotHealthCode] = s.Health
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotSecondsOffline] = s.SecondsOffline
	regs[SlotDialHzHigh] = uint16(s.DialHz >> 16)
	regs[SlotDialHzLow] = uint16(s.DialHz)
	regs[SlotMessagesReceived] = s.MessagesReceived

	return regs
}

// EncodeStationName packs up to 16 ASCII characters into 8 uint16 registers.
// Each register stores two ASCII bytes in big-endian order.
func EncodeStationName(name string) []uint16 {
	out := make([]uint16, SlotStationNameSlots)

	b := []byte(name)
	if len(b) > StationNameMaxChars {
		b = b[:StationNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < StationNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
