// internal/status/encode_test.go
package status

import "testing"

func TestEncode_Layout(t *testing.T) {
	regs := Encode(Snapshot{
		Health:           HealthOK,
		LastErrorCode:    ErrorNone,
		SecondsOffline:   0,
		DialHz:           7078000,
		MessagesReceived: 42,
	})

	if len(regs) != SlotsPerStation {
		t.Fatalf("expected %d regs, got %d", SlotsPerStation, len(regs))
	}
	if regs[SlotHealthCode] != HealthOK {
		t.Fatalf("health slot: got %d", regs[SlotHealthCode])
	}

	hz := uint32(regs[SlotDialHzHigh])<<16 | uint32(regs[SlotDialHzLow])
	if hz != 7078000 {
		t.Fatalf("dial hz: got %d want 7078000", hz)
	}
	if regs[SlotMessagesReceived] != 42 {
		t.Fatalf("messages slot: got %d", regs[SlotMessagesReceived])
	}
	for i := SlotReservedStart; i <= SlotStationNameEnd; i++ {
		if regs[i] != 0 {
			t.Fatalf("slot %d should be zero, got %d", i, regs[i])
		}
	}
}

func TestEncodeStationName(t *testing.T) {
	regs := EncodeStationName("N0CALL")

	if len(regs) != SlotStationNameSlots {
		t.Fatalf("expected %d regs, got %d", SlotStationNameSlots, len(regs))
	}
	if regs[0] != uint16('N')<<8|uint16('0') {
		t.Fatalf("first pair mismatch: %04x", regs[0])
	}
	if regs[2] != uint16('L')<<8|uint16('L') {
		t.Fatalf("third pair mismatch: %04x", regs[2])
	}
	if regs[3] != 0 {
		t.Fatalf("padding should be zero, got %04x", regs[3])
	}
}

func TestEncodeStationName_TruncatesAndSanitizes(t *testing.T) {
	regs := EncodeStationName("AB\x01DEFGHIJKLMNOPQRSTUVWXYZ")

	if regs[1] != uint16('?')<<8|uint16('D') {
		t.Fatalf("control char not sanitized: %04x", regs[1])
	}
	if regs[7] != uint16('O')<<8|uint16('P') {
		t.Fatalf("expected truncation at 16 chars, last pair %04x", regs[7])
	}
}

func TestSaturate(t *testing.T) {
	if Saturate(5) != 5 {
		t.Fatalf("small value changed")
	}
	if Saturate(1<<20) != 0xFFFF {
		t.Fatalf("large value not clamped")
	}
}
