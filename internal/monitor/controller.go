// internal/monitor/controller.go
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/fatih/color"

	"github.com/tamzrod/js8-monitor/internal/freq"
	"github.com/tamzrod/js8-monitor/internal/message"
	"github.com/tamzrod/js8-monitor/internal/poller"
	"github.com/tamzrod/js8-monitor/internal/rxlog"
	"github.com/tamzrod/js8-monitor/internal/writer"
)

// ErrStart marks a failed client start. Callers exit non-zero on it.
var ErrStart = errors.New("monitor: client start failed")

// Client is the part of the JS8Call client the controller drives.
type Client interface {
	RegisterIncoming(h func(message.Message))
	Start(headless bool) error
	Online() bool
	SetFreq(hz int64) error
	Stop() error
}

// Controller runs one monitor session.
type Controller struct {
	Client  Client
	Options freq.Options
	Log     *rxlog.File // nil disables the log file
	Ready   poller.Config
	Out     io.Writer

	// Status is optional. When set, a 1 Hz reporter publishes the
	// station snapshot while the client is running.
	Status writer.StatusWriter

	now func() time.Time
}

// Run walks the startup sequence and then blocks until ctx ends.
//
// Start failure returns ErrStart without touching Stop. Every return
// after a successful Start has called Stop exactly once.
func (c *Controller) Run(ctx context.Context) error {
	if c.Client == nil {
		return errors.New("monitor: client required")
	}
	now := c.now
	if now == nil {
		now = time.Now
	}

	// ---- log init ----
	if c.Log != nil {
		if err := c.Log.Header(now()); err != nil {
			color.New(color.FgRed).Fprintf(c.Out, "[LOG ERROR] Could not write to file: %v\n", err)
		}
	}

	// ---- callback before start ----
	h := NewHandler(c.Out, c.Log)
	h.now = now
	c.Client.RegisterIncoming(h.Handle)

	// ---- start ----
	fmt.Fprintln(c.Out, "Starting engine...")
	if err := c.Client.Start(true); err != nil {
		color.New(color.FgRed).Fprintf(c.Out, "Error starting JS8Call: %v\n", err)
		return fmt.Errorf("%w: %v", ErrStart, err)
	}
	defer func() {
		if err := c.Client.Stop(); err != nil {
			log.Printf("monitor: stop failed: %v", err)
		}
	}()

	// ---- status reporter (optional) ----
	if c.Status != nil {
		rctx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		r := newReporter(c.Status, c.Client, h)
		go func() {
			defer close(done)
			r.Run(rctx)
		}()
		defer func() {
			cancel()
			<-done
		}()
	}

	// ---- wait online ----
	p, err := poller.New(c.Ready, c.Client.Online)
	if err != nil {
		return err
	}
	res := p.Wait(ctx, func(attempt, max int) {
		fmt.Fprintf(c.Out, "Waiting for JS8Call API... (Attempt %d/%d)\n", attempt, max)
	})
	if res.Err != nil {
		fmt.Fprintln(c.Out, "\nStopping...")
		return nil
	}
	if !res.Ready {
		log.Printf("monitor: api not online after %d attempts, continuing", res.Attempts)
	}

	// ---- frequency ----
	freq.Apply(c.Options, c.Client, c.Out)

	// ---- listen ----
	fmt.Fprintln(c.Out, "Listening... (Ctrl+C to stop)")
	<-ctx.Done()
	fmt.Fprintln(c.Out, "\nStopping...")

	return nil
}
