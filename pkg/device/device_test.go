package device

import (
	"context"
	"errors"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepseries/stepseries-go/internal/fakeboard"
	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/catalog"
	"github.com/stepseries/stepseries-go/pkg/connection"
	"github.com/stepseries/stepseries-go/pkg/log"
	"github.com/stepseries/stepseries-go/pkg/session"
	"github.com/stepseries/stepseries-go/pkg/version"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

func TestConfigIdentity(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantRemote string
		wantListen string
		wantErr    bool
	}{
		{
			name:       "factory id 1",
			mutate:     func(c *Config) {},
			wantRemote: "10.0.0.101:50000",
			wantListen: "0.0.0.0:50101",
		},
		{
			name:       "no id offset",
			mutate:     func(c *Config) { c.AddIDToArgs = false },
			wantRemote: "10.0.0.100:50000",
			wantListen: "0.0.0.0:50100",
		},
		{
			name: "custom addresses",
			mutate: func(c *Config) {
				c.ID = 5
				c.Address = "192.168.1.10"
				c.Port = 6000
				c.ListenAddress = "192.168.1.2"
				c.ListenPort = 7000
			},
			wantRemote: "192.168.1.15:6000",
			wantListen: "192.168.1.2:7005",
		},
		{
			name:    "octet overflow",
			mutate:  func(c *Config) { c.Address = "10.0.0.250"; c.ID = 10 },
			wantErr: true,
		},
		{
			name:    "not an address",
			mutate:  func(c *Config) { c.Address = "board.local" },
			wantErr: true,
		},
		{
			name:    "ipv6",
			mutate:  func(c *Config) { c.Address = "::1" },
			wantErr: true,
		},
		{
			name:    "negative id",
			mutate:  func(c *Config) { c.ID = -1 },
			wantErr: true,
		},
		{
			name:    "listen port overflow",
			mutate:  func(c *Config) { c.ListenPort = 65535 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig(board.STEP400, 1)
			tt.mutate(&c)
			id, err := c.Identity()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemote, id.Remote)
			assert.Equal(t, tt.wantListen, id.Listen)
		})
	}
}

type rig struct {
	board  *fakeboard.Board
	mgr    *connection.Manager
	config Config
}

func newRig(t *testing.T, model board.Model, mutate ...func(*Config)) *rig {
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

	host, boardPort, err := net.SplitHostPort(fb.Addr())
	require.NoError(t, err)
	bp, err := strconv.Atoi(boardPort)
	require.NoError(t, err)

	c := DefaultConfig(model, 1)
	c.Address = host
	c.Port = bp
	c.ListenAddress = "127.0.0.1"
	c.ListenPort = port
	c.AddIDToArgs = false
	c.Timeout = 200 * time.Millisecond
	for _, m := range mutate {
		m(&c)
	}

	mgr := connection.NewManager(connection.DefaultConfig())
	t.Cleanup(func() { mgr.Close() })
	return &rig{board: fb, mgr: mgr, config: c}
}

func (r *rig) device(t *testing.T) *Device {
	t.Helper()
	d, err := New(r.config, r.mgr)
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func countReceived(b *fakeboard.Board, address string) int {
	n := 0
	for _, m := range b.Received() {
		if m.Address == address {
			n++
		}
	}
	return n
}

func TestNewRegisters(t *testing.T) {
	r := newRig(t, board.STEP400)
	d := r.device(t)

	assert.True(t, r.mgr.Bound(d.Identity()))
	assert.True(t, d.Session().Bound())
	assert.Equal(t, board.STEP400, d.Session().Config().Model)
}

func TestNewInvalidConfig(t *testing.T) {
	r := newRig(t, board.STEP400, func(c *Config) { c.Address = "nope" })
	_, err := New(r.config, r.mgr)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewManagerClosed(t *testing.T) {
	r := newRig(t, board.STEP400)
	require.NoError(t, r.mgr.Close())

	_, err := New(r.config, r.mgr)
	assert.ErrorIs(t, err, connection.ErrManagerClosed)
}

func TestHandshake(t *testing.T) {
	r := newRig(t, board.STEP400)
	d := r.device(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	dest, err := d.Handshake(ctx)
	require.NoError(t, err)

	assert.Equal(t, &catalog.DestIP{DestIP0: 127, DestIP1: 0, DestIP2: 0, DestIP3: 1, IsNewDestIP: true}, dest)
}

func TestHandshakeRetries(t *testing.T) {
	r := newRig(t, board.STEP400)
	var calls atomic.Int32
	r.board.Handle("/setDestIp", func(*fakeboard.Board, wire.Message) []wire.Message {
		if calls.Add(1) == 1 {
			return nil
		}
		return []wire.Message{wire.NewMessage("/destIp",
			int32(127), int32(0), int32(0), int32(1), int32(0))}
	})
	d := r.device(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	dest, err := d.Handshake(ctx)
	require.NoError(t, err)
	assert.False(t, dest.IsNewDestIP)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHandshakeCanceled(t *testing.T) {
	r := newRig(t, board.STEP400)
	r.board.Silence("/setDestIp")
	d := r.device(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := d.Handshake(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHandshakeUnbound(t *testing.T) {
	r := newRig(t, board.STEP400)
	d := r.device(t)
	require.NoError(t, r.mgr.Unregister(d.Identity()))

	_, err := d.Handshake(context.Background())
	assert.True(t, session.IsDeviceNotBound(err))
}

func TestRehandshakeOnBoot(t *testing.T) {
	r := newRig(t, board.STEP400, func(c *Config) { c.RehandshakeOnBoot = true })
	d := r.device(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := d.Handshake(ctx)
	require.NoError(t, err)

	require.NoError(t, d.Reset(ctx))

	require.Eventually(t, func() bool {
		return countReceived(r.board, "/setDestIp") == 2
	}, 2*time.Second, 10*time.Millisecond)
	_, ok := r.board.WaitReceived("/resetDevice", time.Second)
	assert.True(t, ok)
}

func TestNoRehandshakeByDefault(t *testing.T) {
	r := newRig(t, board.STEP400)
	d := r.device(t)

	booted := make(chan *catalog.Booted, 1)
	d.On(catalog.KindBooted, session.Typed(func(b *catalog.Booted) { booted <- b }))

	require.NoError(t, r.board.Emit(wire.NewMessage("/booted", int32(1))))
	select {
	case b := <-booted:
		assert.Equal(t, 1, b.DeviceID)
	case <-time.After(2 * time.Second):
		t.Fatal("Booted not delivered")
	}

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, countReceived(r.board, "/setDestIp"))
}

func TestGetSetPassthrough(t *testing.T) {
	r := newRig(t, board.STEP800)
	d := r.device(t)
	ctx := context.Background()

	require.NoError(t, d.Set(ctx, catalog.SetMicrostepMode{MotorID: board.BroadcastMotorID, StepSel: 7}))
	_, ok := r.board.WaitReceived("/setMicrostepMode", time.Second)
	require.True(t, ok)

	resps, err := d.Get(ctx, catalog.GetMicrostepMode{MotorID: board.BroadcastMotorID})
	require.NoError(t, err)
	require.Len(t, resps, 8)
	for i, resp := range resps {
		m, ok := resp.(*catalog.MicrostepMode)
		require.True(t, ok)
		assert.Equal(t, i+1, m.MotorID)
		assert.Equal(t, 7, m.StepSel)
	}
}

func TestClose(t *testing.T) {
	r := newRig(t, board.STEP400, func(c *Config) { c.RehandshakeOnBoot = true })
	d, err := New(r.config, r.mgr)
	require.NoError(t, err)

	require.NoError(t, d.Close())
	assert.False(t, r.mgr.Bound(d.Identity()))
	require.NoError(t, d.Close())

	_, err = d.Get(context.Background(), catalog.GetVersion{})
	var nb *session.DeviceNotBoundError
	assert.True(t, errors.As(err, &nb))
}

type recordingTrace struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recordingTrace) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingTrace) handshakeStates() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.StateChange != nil && e.StateChange.Entity == log.StateEntityHandshake {
			out = append(out, e.StateChange.NewState)
		}
	}
	return out
}

func TestHandshakeTrace(t *testing.T) {
	trace := &recordingTrace{}
	r := newRig(t, board.STEP400, func(c *Config) { c.Trace = trace })
	d := r.device(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := d.Handshake(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pending", "confirmed"}, trace.handshakeStates())

	r.board.Silence("/setDestIp")
	short, cancel2 := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel2()
	_, err = d.Handshake(short)
	require.Error(t, err)
	assert.Equal(t, []string{"pending", "confirmed", "pending", "failed"}, trace.handshakeStates())
}

func TestFirmware(t *testing.T) {
	r := newRig(t, board.STEP400)
	d := r.device(t)

	fw, v, err := d.Firmware(context.Background())
	require.NoError(t, err)
	assert.Equal(t, version.Firmware{Major: 1, Minor: 0, Patch: 0}, fw)
	assert.Equal(t, "STEP400_R1_unit", v.FirmwareName)
	assert.True(t, fw.Supported())

	r.board.Handle("/getVersion", func(*fakeboard.Board, wire.Message) []wire.Message {
		return []wire.Message{wire.NewMessage("/version", "STEP400_R1_unit", "beta", "Jan 1 2022 12:00:00")}
	})
	_, v, err = d.Firmware(context.Background())
	assert.Error(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "beta", v.FirmwareVersion)
}
