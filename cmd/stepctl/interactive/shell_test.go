package interactive

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

	"github.com/stepseries/stepseries-go/internal/fakeboard"
	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/connection"
	"github.com/stepseries/stepseries-go/pkg/device"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *lockedBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

func newTestShell(t *testing.T, model board.Model) (*Shell, *fakeboard.Board, *lockedBuffer) {
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

	cfg := device.DefaultConfig(model, 1)
	cfg.Address = host
	cfg.Port = bp
	cfg.ListenAddress = "127.0.0.1"
	cfg.ListenPort = port
	cfg.AddIDToArgs = false
	cfg.Timeout = 300 * time.Millisecond

	mgr := connection.NewManager(connection.DefaultConfig())
	t.Cleanup(func() { mgr.Close() })
	dev, err := device.New(cfg, mgr)
	require.NoError(t, err)
	t.Cleanup(func() { dev.Close() })

	out := &lockedBuffer{}
	return newShell(dev, out), fb, out
}

func TestShellGetSet(t *testing.T) {
	sh, fb, out := newTestShell(t, board.STEP400)
	ctx := context.Background()

	assert.False(t, sh.Exec(ctx, "set SetMicrostepMode 2 4"))
	assert.Contains(t, out.String(), "ok")
	_, ok := fb.WaitReceived("/setMicrostepMode", time.Second)
	require.True(t, ok)

	out.Reset()
	assert.False(t, sh.Exec(ctx, "get GetMicrostepMode 2"))
	assert.Equal(t, "MicrostepMode MotorID=2 StepSel=4\n", out.String())
}

func TestShellErrors(t *testing.T) {
	sh, _, out := newTestShell(t, board.STEP800)
	ctx := context.Background()

	sh.Exec(ctx, "get GetMicrostepMode 9")
	assert.Contains(t, out.String(), "Error: board command error")

	out.Reset()
	sh.Exec(ctx, "set SetVoltageMode 1")
	assert.Contains(t, out.String(), "Error:")

	out.Reset()
	sh.Exec(ctx, "fly")
	assert.Contains(t, out.String(), "Unknown command: fly")
}

func TestShellHandshakeAndWatch(t *testing.T) {
	sh, fb, out := newTestShell(t, board.STEP400)
	ctx := context.Background()

	sh.Exec(ctx, "handshake")
	assert.Contains(t, out.String(), "DestIP DestIP0=127")

	sh.Exec(ctx, "watch Busy")
	assert.Contains(t, out.String(), "watching [Busy]")

	require.NoError(t, fb.Emit(wire.NewMessage("/busy", int32(2), int32(1))))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Busy MotorID=2 State=true")
	}, 2*time.Second, 10*time.Millisecond)

	sh.Exec(ctx, "unwatch")
	assert.Empty(t, sh.watcher.Watching())
}

func TestShellStatusAndCatalog(t *testing.T) {
	sh, fb, out := newTestShell(t, board.STEP800)
	ctx := context.Background()

	sh.Exec(ctx, "status")
	assert.Contains(t, out.String(), fb.Addr())
	assert.Contains(t, out.String(), "STEP800")
	assert.Contains(t, out.String(), "Bound:    true")

	out.Reset()
	sh.Exec(ctx, "commands busy")
	assert.Contains(t, out.String(), "EnableBusyReport")
	assert.NotContains(t, out.String(), "GetVersion")

	out.Reset()
	sh.Exec(ctx, "help")
	assert.Contains(t, out.String(), "stepctl Commands:")
}

func TestShellQuit(t *testing.T) {
	sh, _, _ := newTestShell(t, board.STEP400)
	for _, cmd := range []string{"quit", "exit", "q"} {
		assert.True(t, sh.Exec(context.Background(), cmd), cmd)
	}
	assert.False(t, sh.Exec(context.Background(), "   "))
}

func TestCompleter(t *testing.T) {
	c := completer()
	line := []rune("get GetMicro")
	candidates, _ := c.Do(line, len(line))
	require.NotEmpty(t, candidates)
	var all []string
	for _, cand := range candidates {
		all = append(all, string(cand))
	}
	assert.Contains(t, strings.Join(all, ","), "stepMode")
}

func TestShellVersion(t *testing.T) {
	sh, _, out := newTestShell(t, board.STEP400)
	sh.Exec(context.Background(), "version")
	assert.Equal(t, "STEP400_R1_unit 1.0.0 (built Jan 1 2022 12:00:00)\n", out.String())
}
