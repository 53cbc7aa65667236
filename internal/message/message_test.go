// internal/message/message_test.go
package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestLine_AllFields(t *testing.T) {
	ts := time.Date(2024, 3, 9, 18, 4, 5, 0, time.Local)
	m := Message{
		Timestamp: &ts,
		Origin:    ptr("KN4CRD"),
		SNR:       ptr(-12.0),
		Text:      ptr("HELLO WORLD"),
	}

	assert.Equal(t, "[2024-03-09 18:04:05] KN4CRD (-12dB): HELLO WORLD", m.Line(time.Now()))
}

func TestLine_FractionalSNR(t *testing.T) {
	ts := time.Date(2024, 3, 9, 18, 4, 5, 0, time.Local)
	m := Message{Timestamp: &ts, Origin: ptr("W1AW"), SNR: ptr(1.5), Text: ptr("HI")}

	assert.Equal(t, "[2024-03-09 18:04:05] W1AW (1.5dB): HI", m.Line(time.Now()))
}

func TestLine_MissingOriginAndSNR(t *testing.T) {
	ts := time.Date(2024, 3, 9, 18, 4, 5, 0, time.Local)
	m := Message{Timestamp: &ts, Text: ptr("CQ")}

	assert.Equal(t, "[2024-03-09 18:04:05] - (-dB): CQ", m.Line(time.Now()))
}

func TestLine_MissingTimestampUsesNow(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)
	m := Message{Origin: ptr("W1AW"), SNR: ptr(0.0), Text: ptr("X")}

	assert.Equal(t, "[2025-01-02 03:04:05] W1AW (0dB): X", m.Line(now))
}

func TestLine_EmptyMessage(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)

	assert.Equal(t, "[2025-01-02 03:04:05] - (-dB): ", Message{}.Line(now))
	assert.Equal(t, "", Message{}.TextOrEmpty())
}

func TestLine_RendersLocalTime(t *testing.T) {
	ts := time.Date(2024, 3, 9, 18, 4, 5, 0, time.UTC)
	m := Message{Timestamp: &ts}

	want := "[" + ts.Local().Format(TimeLayout) + "] - (-dB): "
	assert.Equal(t, want, m.Line(time.Now()))
}
