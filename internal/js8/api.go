// internal/js8/api.go
package js8

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/tamzrod/js8-monitor/internal/message"
)

// API message types used by the monitor.
// The JS8Call API sends one JSON object per line.
const (
	TypeRxDirected = "RX.DIRECTED"
	TypeRigSetFreq = "RIG.SET_FREQ"
)

// Param keys of RX.DIRECTED.
const (
	paramFrom = "FROM"
	paramSNR  = "SNR"
	paramUTC  = "UTC" // epoch milliseconds
	paramText = "TEXT"
	paramDial = "DIAL"
)

type envelope struct {
	Type   string                     `json:"type"`
	Value  string                     `json:"value"`
	Params map[string]json.RawMessage `json:"params,omitempty"`
}

type request struct {
	Type   string         `json:"type"`
	Value  string         `json:"value"`
	Params map[string]any `json:"params"`
}

var errNotIncoming = errors.New("js8: not an incoming message")

// decodeIncoming maps one API line to a Message.
// Absent or mistyped params stay absent; they never fail the line.
func decodeIncoming(line []byte) (message.Message, error) {
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return message.Message{}, err
	}
	if env.Type != TypeRxDirected {
		return message.Message{}, errNotIncoming
	}

	var m message.Message

	if s, ok := stringParam(env.Params, paramFrom); ok {
		m.Origin = &s
	}
	if f, ok := numberParam(env.Params, paramSNR); ok {
		m.SNR = &f
	}
	if ms, ok := numberParam(env.Params, paramUTC); ok {
		ts := time.UnixMilli(int64(ms))
		m.Timestamp = &ts
	}
	if s, ok := stringParam(env.Params, paramText); ok {
		m.Text = &s
	} else if env.Value != "" {
		v := env.Value
		m.Text = &v
	}

	return m, nil
}

func stringParam(p map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := p[key]
	if !ok {
		return "", false
	}
	// null decodes without error into a nil pointer: treat as absent.
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}

func numberParam(p map[string]json.RawMessage, key string) (float64, bool) {
	raw, ok := p[key]
	if !ok {
		return 0, false
	}
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		return 0, false
	}
	return *f, true
}

// encodeSetFreq builds the RIG.SET_FREQ line, newline included.
func encodeSetFreq(hz int64) ([]byte, error) {
	b, err := json.Marshal(request{
		Type:   TypeRigSetFreq,
		Value:  "",
		Params: map[string]any{paramDial: hz},
	})
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
