// internal/monitor/fakes_test.go
package monitor

import (
	"bytes"
	"strings"
	"sync"

	"github.com/tamzrod/js8-monitor/internal/message"
)

// syncBuffer is a goroutine-safe output sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) contains(s string) bool {
	return strings.Contains(b.String(), s)
}

// ---- fake client ----

type fakeClient struct {
	mu sync.Mutex

	startErr error
	online   bool
	freqErr  error

	handler func(message.Message)
	events  []string
	freqs   []int64
	stops   int
	dialHz  int64
}

func (f *fakeClient) RegisterIncoming(h func(message.Message)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handler = h
	f.events = append(f.events, "register")
}

func (f *fakeClient) Start(headless bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if headless {
		f.events = append(f.events, "start:headless")
	} else {
		f.events = append(f.events, "start")
	}
	return f.startErr
}

func (f *fakeClient) Online() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.online
}

func (f *fakeClient) setOnline(v bool) {
	f.mu.Lock()
	f.online = v
	f.mu.Unlock()
}

func (f *fakeClient) SetFreq(hz int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.freqs = append(f.freqs, hz)
	if f.freqErr == nil {
		f.dialHz = hz
	}
	return f.freqErr
}

func (f *fakeClient) DialFrequency() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dialHz
}

func (f *fakeClient) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	f.events = append(f.events, "stop")
	return nil
}

func (f *fakeClient) snapshot() (events []string, freqs []int64, stops int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...), append([]int64(nil), f.freqs...), f.stops
}

func (f *fakeClient) deliver(m message.Message) {
	f.mu.Lock()
	h := f.handler
	f.mu.Unlock()
	h(m)
}
