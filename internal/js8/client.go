// internal/js8/client.go
package js8

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	cfg "github.com/tamzrod/js8-monitor/internal/config"
	"github.com/tamzrod/js8-monitor/internal/message"
)

// Handler receives one incoming message.
// It runs on the client's reader goroutine.
type Handler = func(message.Message)

// Config is the minimal runtime config the client needs.
type Config struct {
	// Executable is launched on Start. Empty attaches to a running instance.
	Executable      string
	HeadlessWrapper []string
	QtPlatform      string

	APIEndpoint       string
	DialTimeout       time.Duration
	ReconnectInterval time.Duration

	// StopTimeout bounds the wait for the process after the interrupt.
	StopTimeout time.Duration
}

// ConfigFrom maps the js8call config section.
func ConfigFrom(j cfg.JS8CallConfig) Config {
	return Config{
		Executable:        j.Executable,
		HeadlessWrapper:   j.HeadlessWrapper,
		QtPlatform:        j.QtPlatform,
		APIEndpoint:       j.APIEndpoint,
		DialTimeout:       time.Duration(j.DialTimeoutMs) * time.Millisecond,
		ReconnectInterval: time.Duration(j.ReconnectIntervalMs) * time.Millisecond,
	}
}

// Client drives one JS8Call instance through its TCP API.
// Online reports whether the API connection is up.
type Client struct {
	cfg Config

	hmu      sync.RWMutex
	handlers []Handler

	wmu  sync.Mutex // guards conn and serializes API writes
	conn net.Conn

	online atomic.Bool
	dialHz atomic.Int64

	smu      sync.Mutex
	started  bool
	cancel   context.CancelFunc
	loopDone chan struct{}
	proc     *exec.Cmd
	procDone chan struct{}
	stopOnce sync.Once
	stopErr  error
}

// New creates an idle client. Nothing is launched or dialed until Start.
func New(c Config) *Client {
	if c.DialTimeout <= 0 {
		c.DialTimeout = 2 * time.Second
	}
	if c.ReconnectInterval <= 0 {
		c.ReconnectInterval = time.Second
	}
	if c.StopTimeout <= 0 {
		c.StopTimeout = 5 * time.Second
	}
	return &Client{cfg: c}
}

// RegisterIncoming adds a handler for RX.DIRECTED messages.
// Register before Start so that no message is missed.
func (c *Client) RegisterIncoming(h Handler) {
	if h == nil {
		return
	}
	c.hmu.Lock()
	c.handlers = append(c.handlers, h)
	c.hmu.Unlock()
}

// Online reports whether the API connection is established.
func (c *Client) Online() bool {
	return c.online.Load()
}

// DialFrequency returns the last dial frequency set through this client, 0 if none.
func (c *Client) DialFrequency() int64 {
	return c.dialHz.Load()
}

// Start launches JS8Call (when an executable is configured) and begins
// connecting to its API in the background. It does not wait for the
// API to come up; poll Online for that.
func (c *Client) Start(headless bool) error {
	c.smu.Lock()
	defer c.smu.Unlock()

	if c.started {
		return errors.New("js8: already started")
	}
	if c.cfg.APIEndpoint == "" {
		return errors.New("js8: api endpoint required")
	}

	if c.cfg.Executable != "" {
		argv := []string{c.cfg.Executable}
		if headless && len(c.cfg.HeadlessWrapper) > 0 {
			argv = append(append([]string(nil), c.cfg.HeadlessWrapper...), c.cfg.Executable)
		}

		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Env = childEnv(os.Environ(), c.cfg.QtPlatform)

		if err := cmd.Start(); err != nil {
			return fmt.Errorf("js8: launch %s: %w", argv[0], err)
		}

		c.proc = cmd
		c.procDone = make(chan struct{})
		go func() {
			defer close(c.procDone)
			if err := cmd.Wait(); err != nil {
				log.Printf("js8: process exited: %v", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.loopDone = make(chan struct{})
	c.started = true

	go c.run(ctx)
	return nil
}

// SetFreq asks JS8Call to tune the rig dial to hz.
func (c *Client) SetFreq(hz int64) error {
	if hz <= 0 {
		return fmt.Errorf("js8: invalid frequency %d", hz)
	}

	line, err := encodeSetFreq(hz)
	if err != nil {
		return err
	}

	c.wmu.Lock()
	defer c.wmu.Unlock()

	if c.conn == nil {
		return errors.New("js8: api offline")
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.DialTimeout))
	if _, err := c.conn.Write(line); err != nil {
		return fmt.Errorf("js8: set freq: %w", err)
	}

	c.dialHz.Store(hz)
	return nil
}

// Stop tears down the API connection and terminates the process.
// Safe to call more than once and before Start.
func (c *Client) Stop() error {
	c.stopOnce.Do(func() {
		c.smu.Lock()
		defer c.smu.Unlock()

		if !c.started {
			return
		}

		c.cancel()
		c.closeConn()
		<-c.loopDone

		if c.proc != nil {
			c.stopErr = c.terminate()
		}
	})
	return c.stopErr
}

func (c *Client) terminate() error {
	if err := c.proc.Process.Signal(os.Interrupt); err != nil {
		// already gone
		if errors.Is(err, os.ErrProcessDone) {
			return nil
		}
		return fmt.Errorf("js8: signal: %w", err)
	}

	select {
	case <-c.procDone:
		return nil
	case <-time.After(c.cfg.StopTimeout):
	}

	if err := c.proc.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("js8: kill: %w", err)
	}
	<-c.procDone
	return nil
}

// ---- connection loop ----

// run keeps one API connection open until ctx ends.
// Linear reconnect interval, no backoff.
func (c *Client) run(ctx context.Context) {
	defer close(c.loopDone)

	d := net.Dialer{Timeout: c.cfg.DialTimeout}

	for {
		conn, err := d.DialContext(ctx, "tcp", c.cfg.APIEndpoint)
		if err == nil {
			if !c.setConn(ctx, conn) {
				return
			}
			log.Printf("js8: api connected (%s)", c.cfg.APIEndpoint)

			err = c.read(conn)

			c.closeConn()
			if ctx.Err() != nil {
				return
			}
			log.Printf("js8: api disconnected: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.cfg.ReconnectInterval):
		}
	}
}

func (c *Client) read(conn net.Conn) error {
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		m, err := decodeIncoming(sc.Bytes())
		if err != nil {
			if !errors.Is(err, errNotIncoming) {
				log.Printf("js8: bad api line: %v", err)
			}
			continue
		}
		c.dispatch(m)
	}

	if err := sc.Err(); err != nil {
		return err
	}
	return errors.New("connection closed")
}

func (c *Client) dispatch(m message.Message) {
	c.hmu.RLock()
	hs := c.handlers
	c.hmu.RUnlock()

	for _, h := range hs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("js8: incoming handler panic: %v", r)
				}
			}()
			h(m)
		}()
	}
}

// setConn publishes conn unless ctx already ended.
// Checked under wmu so Stop cannot miss a connection made during shutdown.
func (c *Client) setConn(ctx context.Context, conn net.Conn) bool {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	if ctx.Err() != nil {
		_ = conn.Close()
		return false
	}
	c.conn = conn
	c.online.Store(true)
	return true
}

func (c *Client) closeConn() {
	c.online.Store(false)

	c.wmu.Lock()
	defer c.wmu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}
