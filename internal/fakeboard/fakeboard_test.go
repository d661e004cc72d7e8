package fakeboard

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

type host struct {
	listen *net.UDPConn
	b      *Board
}

func newHost(t *testing.T, model board.Model) *host {
	t.Helper()
	listen, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { listen.Close() })

	b, err := Start(Config{Model: model, DeviceID: 3, Dest: listen.LocalAddr().String()})
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return &host{listen: listen, b: b}
}

func (h *host) send(t *testing.T, m wire.Message) {
	t.Helper()
	data, err := wire.Encode(m)
	require.NoError(t, err)
	to, err := net.ResolveUDPAddr("udp4", h.b.Addr())
	require.NoError(t, err)
	_, err = h.listen.WriteToUDP(data, to)
	require.NoError(t, err)
}

func (h *host) recv(t *testing.T) wire.Message {
	t.Helper()
	buf := make([]byte, wire.MaxDatagramSize)
	h.listen.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := h.listen.ReadFromUDP(buf)
	require.NoError(t, err)
	msgs, err := wire.Decode(buf[:n])
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	return msgs[0]
}

func TestSetDestIP(t *testing.T) {
	h := newHost(t, board.STEP400)

	h.send(t, wire.NewMessage("/setDestIp"))
	m := h.recv(t)
	assert.Equal(t, "/destIp", m.Address)
	assert.Equal(t, []any{int32(127), int32(0), int32(0), int32(1), int32(1)}, m.Args)

	h.send(t, wire.NewMessage("/setDestIp"))
	m = h.recv(t)
	assert.Equal(t, int32(0), m.Args[4], "second handshake is not new")
}

func TestSetThenGet(t *testing.T) {
	h := newHost(t, board.STEP400)

	h.send(t, wire.NewMessage("/setMicrostepMode", int32(2), int32(5)))
	h.send(t, wire.NewMessage("/getMicrostepMode", int32(2)))

	m := h.recv(t)
	assert.Equal(t, "/microstepMode", m.Address)
	assert.Equal(t, []any{int32(2), int32(5)}, m.Args)
}

func TestBroadcastGet(t *testing.T) {
	h := newHost(t, board.STEP800)

	h.send(t, wire.NewMessage("/setMicrostepMode", int32(board.BroadcastMotorID), int32(7)))
	h.send(t, wire.NewMessage("/getMicrostepMode", int32(board.BroadcastMotorID)))

	for id := 1; id <= 8; id++ {
		m := h.recv(t)
		assert.Equal(t, int32(id), m.Args[0])
	}
}

func TestMotorOutOfRange(t *testing.T) {
	h := newHost(t, board.STEP400)

	h.send(t, wire.NewMessage("/getMicrostepMode", int32(7)))
	m := h.recv(t)
	assert.Equal(t, "/error/command", m.Address)
	assert.Equal(t, int32(7), m.Args[1])
}

func TestResetSendsBooted(t *testing.T) {
	h := newHost(t, board.STEP400)

	h.send(t, wire.NewMessage("/resetDevice"))
	m := h.recv(t)
	assert.Equal(t, "/booted", m.Address)
	assert.Equal(t, []any{int32(3)}, m.Args)
}

func TestHandleAndWaitReceived(t *testing.T) {
	h := newHost(t, board.STEP400)
	h.b.Handle("/getVersion", func(*Board, wire.Message) []wire.Message {
		return []wire.Message{wire.NewMessage("/version", "X", "2.0", "Feb 2 2023 10:00:00")}
	})

	h.send(t, wire.NewMessage("/getVersion"))
	m := h.recv(t)
	assert.Equal(t, "X", m.Args[0])

	got, ok := h.b.WaitReceived("/getversion", time.Second)
	require.True(t, ok)
	assert.Equal(t, "/getVersion", got.Address)

	_, ok = h.b.WaitReceived("/never", 20*time.Millisecond)
	assert.False(t, ok)
}

func TestReplyFor(t *testing.T) {
	assert.Equal(t, "/microstepMode", replyFor("MicrostepMode"))
	assert.Equal(t, "/kval", replyFor("Kval"))
}
