// internal/js8/client_test.go
package js8

import (
	"bufio"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/tamzrod/js8-monitor/internal/config"
	"github.com/tamzrod/js8-monitor/internal/message"
)

// fakeAPI is a single-connection stand-in for the JS8Call TCP API.
type fakeAPI struct {
	ln    net.Listener
	conns chan net.Conn
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	f := &fakeAPI{ln: ln, conns: make(chan net.Conn, 4)}
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			f.conns <- c
		}
	}()
	t.Cleanup(func() { ln.Close() })
	return f
}

func (f *fakeAPI) addr() string { return f.ln.Addr().String() }

func (f *fakeAPI) accept(t *testing.T) net.Conn {
	t.Helper()
	select {
	case c := <-f.conns:
		t.Cleanup(func() { c.Close() })
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("client did not connect")
		return nil
	}
}

func attachClient(addr string) *Client {
	return New(Config{
		APIEndpoint:       addr,
		DialTimeout:       time.Second,
		ReconnectInterval: 10 * time.Millisecond,
	})
}

func TestClient_OnlineAndIncoming(t *testing.T) {
	api := newFakeAPI(t)
	c := attachClient(api.addr())

	var mu sync.Mutex
	var got []message.Message
	c.RegisterIncoming(func(m message.Message) {
		mu.Lock()
		got = append(got, m)
		mu.Unlock()
	})

	require.False(t, c.Online())
	require.NoError(t, c.Start(true))
	defer c.Stop()

	conn := api.accept(t)
	require.Eventually(t, c.Online, 2*time.Second, 5*time.Millisecond)

	_, err := conn.Write([]byte(
		`{"type":"STATION.STATUS","value":""}` + "\n" +
			`{"type":"RX.DIRECTED","value":"","params":{"FROM":"W1AW","SNR":-5,"TEXT":"HI"}}` + "\n"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, got[0].Origin)
	assert.Equal(t, "W1AW", *got[0].Origin)
	assert.Nil(t, got[0].Timestamp)
}

func TestClient_SetFreq(t *testing.T) {
	api := newFakeAPI(t)
	c := attachClient(api.addr())

	require.Error(t, c.SetFreq(7078000), "offline client must refuse")

	require.NoError(t, c.Start(true))
	defer c.Stop()

	conn := api.accept(t)
	require.Eventually(t, c.Online, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, c.SetFreq(7107000))
	assert.Equal(t, int64(7107000), c.DialFrequency())

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := bufio.NewReader(conn).ReadString('\n')
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"RIG.SET_FREQ","value":"","params":{"DIAL":7107000}}`, line)

	assert.Error(t, c.SetFreq(0))
}

func TestClient_Reconnects(t *testing.T) {
	api := newFakeAPI(t)
	c := attachClient(api.addr())

	require.NoError(t, c.Start(true))
	defer c.Stop()

	first := api.accept(t)
	require.Eventually(t, c.Online, 2*time.Second, 5*time.Millisecond)

	first.Close()
	api.accept(t)
	require.Eventually(t, c.Online, 2*time.Second, 5*time.Millisecond)
}

func TestClient_NeverOnlineWithoutServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	c := attachClient(addr)
	require.NoError(t, c.Start(true))

	time.Sleep(50 * time.Millisecond)
	assert.False(t, c.Online())
	assert.NoError(t, c.Stop())
}

func TestClient_StartFailures(t *testing.T) {
	c := New(Config{
		Executable:  filepath.Join(t.TempDir(), "no-such-js8call"),
		APIEndpoint: "127.0.0.1:2442",
	})
	err := c.Start(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "js8: launch")

	// Stop after a failed start is a no-op.
	assert.NoError(t, c.Stop())

	assert.Error(t, New(Config{}).Start(true))
}

func TestClient_StartTwice(t *testing.T) {
	api := newFakeAPI(t)
	c := attachClient(api.addr())

	require.NoError(t, c.Start(true))
	defer c.Stop()

	assert.Error(t, c.Start(true))
}

func TestClient_StopIdempotent(t *testing.T) {
	api := newFakeAPI(t)
	c := attachClient(api.addr())

	assert.NoError(t, c.Stop(), "stop before start")

	c = attachClient(api.addr())
	require.NoError(t, c.Start(true))
	api.accept(t)
	require.Eventually(t, c.Online, 2*time.Second, 5*time.Millisecond)

	assert.NoError(t, c.Stop())
	assert.NoError(t, c.Stop())
	assert.False(t, c.Online())
}

func TestClient_HandlerPanicDoesNotKillReader(t *testing.T) {
	api := newFakeAPI(t)
	c := attachClient(api.addr())

	calls := make(chan struct{}, 2)
	c.RegisterIncoming(func(message.Message) {
		calls <- struct{}{}
		panic("boom")
	})
	c.RegisterIncoming(nil)

	require.NoError(t, c.Start(true))
	defer c.Stop()

	conn := api.accept(t)
	line := `{"type":"RX.DIRECTED","value":"x"}` + "\n"
	_, err := conn.Write([]byte(line + line))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("handler call %d not delivered", i+1)
		}
	}
}

func TestConfigFrom(t *testing.T) {
	c := ConfigFrom(cfg.Default().JS8Call)

	assert.Equal(t, "js8call", c.Executable)
	assert.Equal(t, []string{"xvfb-run", "-a"}, c.HeadlessWrapper)
	assert.Equal(t, "127.0.0.1:2442", c.APIEndpoint)
	assert.Equal(t, 2*time.Second, c.DialTimeout)
	assert.Equal(t, time.Second, c.ReconnectInterval)
}
