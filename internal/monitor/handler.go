// internal/monitor/handler.go
package monitor

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/fatih/color"

	"github.com/tamzrod/js8-monitor/internal/message"
	"github.com/tamzrod/js8-monitor/internal/rxlog"
)

// Handler formats incoming messages and routes them to the console and
// the log file. It is registered once with the client and may be
// called from any goroutine.
type Handler struct {
	out io.Writer
	log *rxlog.File // nil: console only
	now func() time.Time

	received atomic.Uint64
}

// NewHandler binds a handler to out and log. log may be nil.
func NewHandler(out io.Writer, log *rxlog.File) *Handler {
	return &Handler{out: out, log: log, now: time.Now}
}

// Handle never panics and never returns an error: log failures are
// printed and dropped.
func (h *Handler) Handle(m message.Message) {
	h.received.Add(1)

	line := m.Line(h.now())

	if m.TextOrEmpty() != "" {
		fmt.Fprintln(h.out, line)
	}

	if h.log == nil {
		return
	}
	if err := h.log.Append(line); err != nil {
		color.New(color.FgRed).Fprintf(h.out, "[LOG ERROR] Could not write to file: %v\n", err)
	}
}

// Received is the number of messages handled so far.
func (h *Handler) Received() uint64 {
	return h.received.Load()
}
