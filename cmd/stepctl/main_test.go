package main

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepseries/stepseries-go/cmd/stepctl/commands"
	"github.com/stepseries/stepseries-go/internal/fakeboard"
	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

func boardConfig(t *testing.T, model board.Model) (*fakeboard.Board, Config) {
	t.Helper()
	port, err := fakeboard.FreeUDPPort()
	require.NoError(t, err)
	fb, err := fakeboard.Start(fakeboard.Config{
		Model:    model,
		DeviceID: 1,
		Dest:     net.JoinHostPort("127.0.0.1", strconv.Itoa(port)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { fb.Close() })

	host, p, err := net.SplitHostPort(fb.Addr())
	require.NoError(t, err)
	bp, err := strconv.Atoi(p)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.LogLevel = "error"
	cfg.Device.Model = model
	cfg.Device.Address = host
	cfg.Device.Port = bp
	cfg.Device.ListenAddress = "127.0.0.1"
	cfg.Device.ListenPort = port
	cfg.Device.AddIDToArgs = false
	cfg.Device.Timeout = 300 * time.Millisecond
	return fb, cfg
}

func TestRunGet(t *testing.T) {
	fb, cfg := boardConfig(t, board.STEP400)
	fb.SetValue("/microstepMode", 2, int32(5))

	var out bytes.Buffer
	err := run(context.Background(), cfg, []string{"get", "GetMicrostepMode", "2"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "MicrostepMode MotorID=2 StepSel=5\n", out.String())
}

func TestRunSet(t *testing.T) {
	fb, cfg := boardConfig(t, board.STEP800)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, []string{"set", "SetMicrostepMode", "3", "6"}, &out))

	msg, ok := fb.WaitReceived("/setMicrostepMode", time.Second)
	require.True(t, ok)
	assert.Equal(t, []any{int32(3), int32(6)}, msg.Args)
}

func TestRunWatch(t *testing.T) {
	fb, cfg := boardConfig(t, board.STEP400)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, []string{"watch", "Busy"}, out) }()

	require.Eventually(t, func() bool {
		_ = fb.Emit(fakeboardBusy())
		return strings.Contains(out.String(), "Busy MotorID=1 State=true")
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}

func TestRunUnknownSubcommand(t *testing.T) {
	_, cfg := boardConfig(t, board.STEP400)
	err := run(context.Background(), cfg, []string{"move"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, commands.ErrUsage)
}

func TestRunHandshakeFails(t *testing.T) {
	fb, cfg := boardConfig(t, board.STEP400)
	fb.Silence("/setDestIp")
	cfg.Device.Timeout = 50 * time.Millisecond

	err := run(context.Background(), cfg, []string{"get", "GetVersion"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "handshake")
}

func fakeboardBusy() wire.Message {
	return wire.NewMessage("/busy", int32(1), int32(1))
}

// syncBuffer is a bytes.Buffer safe for the dispatch goroutine and the test.
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
