// internal/message/message.go
package message

import (
	"strconv"
	"time"
)

// Placeholder stands in for an absent origin or SNR.
const Placeholder = "-"

// TimeLayout is the rendered timestamp format (local time).
const TimeLayout = "2006-01-02 15:04:05"

// Message is one decoded incoming message.
// Every field is optional: nil means the sender did not provide it.
type Message struct {
	Timestamp *time.Time
	Origin    *string
	SNR       *float64
	Text      *string
}

// Line renders the message as
//
//	[YYYY-MM-DD HH:MM:SS] <origin> (<snr>dB): <text>
//
// now supplies the timestamp when the message has none.
func (m Message) Line(now time.Time) string {
	ts := now
	if m.Timestamp != nil {
		ts = *m.Timestamp
	}

	origin := Placeholder
	if m.Origin != nil {
		origin = *m.Origin
	}

	snr := Placeholder
	if m.SNR != nil {
		snr = strconv.FormatFloat(*m.SNR, 'f', -1, 64)
	}

	return "[" + ts.Local().Format(TimeLayout) + "] " +
		origin + " (" + snr + "dB): " + m.TextOrEmpty()
}

// TextOrEmpty returns the text, or "" when absent.
func (m Message) TextOrEmpty() string {
	if m.Text == nil {
		return ""
	}
	return *m.Text
}
