// Package fakeboard provides an in-process STEP-series board speaking OSC
// over loopback UDP, for tests.
//
// The board answers the destination handshake, version queries and resets
// itself. Setter commands ("/setX motor args...") are stored and replayed by
// the matching getter ("/getX motor"), per motor, so round trips work
// without scripting. Anything else can be scripted with Handle.
package fakeboard

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

// DefaultVersion is the /version reply arguments.
var DefaultVersion = []any{"STEP400_R1_unit", "1.0.0", "Jan 1 2022 12:00:00"}

// Handler answers one message. It returns the messages to send back to the
// destination, in order. Returning nil sends nothing.
type Handler func(b *Board, msg wire.Message) []wire.Message

// Config configures a Board.
type Config struct {
	// Model sets the unit count used for broadcast replies.
	Model board.Model

	// DeviceID is reported in /booted.
	DeviceID int

	// Dest is the host address replies and reports go to.
	Dest string
}

// Board is a fake board bound to a loopback UDP port. It is safe for
// concurrent use.
type Board struct {
	config Config
	conn   *net.UDPConn

	mu       sync.RWMutex
	dest     *net.UDPAddr
	handlers map[string]Handler
	// values holds stored setter arguments: reply address -> motor -> args.
	values   map[string]map[int][]any
	received []wire.Message
	destSet  bool

	notify chan struct{}
	done   chan struct{}
	wg     sync.WaitGroup
}

// Start opens the board socket on 127.0.0.1 and starts answering.
func Start(config Config) (*Board, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		return nil, fmt.Errorf("fakeboard listen: %w", err)
	}

	b := &Board{
		config:   config,
		conn:     conn,
		handlers: make(map[string]Handler),
		values:   make(map[string]map[int][]any),
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	if config.Dest != "" {
		if err := b.SetDest(config.Dest); err != nil {
			conn.Close()
			return nil, err
		}
	}

	b.Handle("/setDestIp", handleSetDestIP)
	b.Handle("/getVersion", func(*Board, wire.Message) []wire.Message {
		return []wire.Message{wire.NewMessage("/version", DefaultVersion...)}
	})
	b.Handle("/resetDevice", func(b *Board, _ wire.Message) []wire.Message {
		b.mu.Lock()
		b.destSet = false
		b.values = make(map[string]map[int][]any)
		b.mu.Unlock()
		return []wire.Message{wire.NewMessage("/booted", int32(b.config.DeviceID))}
	})

	b.wg.Add(1)
	go b.serve()
	return b, nil
}

// Addr returns the board's address, for session.Identity.Remote.
func (b *Board) Addr() string {
	return b.conn.LocalAddr().String()
}

// SetDest changes where replies and reports are sent.
func (b *Board) SetDest(addr string) error {
	dest, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return fmt.Errorf("fakeboard dest %q: %w", addr, err)
	}
	b.mu.Lock()
	b.dest = dest
	b.mu.Unlock()
	return nil
}

// Handle installs h for address, replacing any previous handler.
func (b *Board) Handle(address string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[strings.ToLower(address)] = h
}

// Silence makes the board ignore address.
func (b *Board) Silence(address string) {
	b.Handle(address, func(*Board, wire.Message) []wire.Message { return nil })
}

// SetValue stores the reply arguments the getter for reply returns for
// motor, for example SetValue("/microstepMode", 1, int32(7)).
func (b *Board) SetValue(reply string, motor int, args ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store(reply, motor, args)
}

// Emit sends msgs to the destination as unsolicited reports.
func (b *Board) Emit(msgs ...wire.Message) error {
	for _, m := range msgs {
		if err := b.write(m); err != nil {
			return err
		}
	}
	return nil
}

// EmitRaw sends data to the destination unchanged.
func (b *Board) EmitRaw(data []byte) error {
	b.mu.RLock()
	dest := b.dest
	b.mu.RUnlock()
	if dest == nil {
		return errors.New("fakeboard: no destination")
	}
	_, err := b.conn.WriteToUDP(data, dest)
	return err
}

// Received returns every message received so far.
func (b *Board) Received() []wire.Message {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]wire.Message(nil), b.received...)
}

// WaitReceived blocks until a message for address has been received or
// timeout passes.
func (b *Board) WaitReceived(address string, timeout time.Duration) (wire.Message, bool) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		b.mu.RLock()
		for _, m := range b.received {
			if strings.EqualFold(m.Address, address) {
				b.mu.RUnlock()
				return m, true
			}
		}
		b.mu.RUnlock()

		select {
		case <-b.notify:
		case <-deadline.C:
			return wire.Message{}, false
		}
	}
}

// Close stops the board.
func (b *Board) Close() error {
	select {
	case <-b.done:
		return nil
	default:
	}
	close(b.done)
	err := b.conn.Close()
	b.wg.Wait()
	return err
}

func (b *Board) serve() {
	defer b.wg.Done()
	buf := make([]byte, wire.MaxDatagramSize)
	for {
		n, _, err := b.conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-b.done:
				return
			default:
				continue
			}
		}
		msgs, err := wire.Decode(buf[:n])
		if err != nil {
			b.write(wire.NewMessage("/error/osc", "oscSyntaxError"))
			continue
		}
		for _, m := range msgs {
			b.record(m)
			for _, reply := range b.answer(m) {
				b.write(reply)
			}
		}
	}
}

func (b *Board) record(m wire.Message) {
	b.mu.Lock()
	b.received = append(b.received, m)
	b.mu.Unlock()
	select {
	case b.notify <- struct{}{}:
	default:
	}
}

func (b *Board) answer(m wire.Message) []wire.Message {
	b.mu.RLock()
	h, ok := b.handlers[strings.ToLower(m.Address)]
	b.mu.RUnlock()
	if ok {
		return h(b, m)
	}

	switch {
	case strings.HasPrefix(m.Address, "/set"):
		return b.handleSet(m)
	case strings.HasPrefix(m.Address, "/get"):
		return b.handleGet(m)
	}
	return nil
}

// handleSet stores the arguments after the motor ID under the getter's
// reply address.
func (b *Board) handleSet(m wire.Message) []wire.Message {
	motor, ok := motorArg(m)
	if !ok {
		return nil
	}
	if errMsg, bad := b.checkMotor(motor); bad {
		return []wire.Message{errMsg}
	}

	reply := replyFor(strings.TrimPrefix(m.Address, "/set"))
	b.mu.Lock()
	defer b.mu.Unlock()
	if motor == board.BroadcastMotorID {
		for id := 1; id <= b.config.Model.UnitCount(); id++ {
			b.store(reply, id, m.Args[1:])
		}
		return nil
	}
	b.store(reply, motor, m.Args[1:])
	return nil
}

// handleGet replays stored values, once per motor for a broadcast.
func (b *Board) handleGet(m wire.Message) []wire.Message {
	motor, ok := motorArg(m)
	if !ok {
		return nil
	}
	if errMsg, bad := b.checkMotor(motor); bad {
		return []wire.Message{errMsg}
	}

	reply := replyFor(strings.TrimPrefix(m.Address, "/get"))
	motors := []int{motor}
	if motor == board.BroadcastMotorID {
		motors = motors[:0]
		for id := 1; id <= b.config.Model.UnitCount(); id++ {
			motors = append(motors, id)
		}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []wire.Message
	for _, id := range motors {
		args, ok := b.values[reply][id]
		if !ok {
			continue
		}
		out = append(out, wire.NewMessage(reply, append([]any{int32(id)}, args...)...))
	}
	return out
}

func (b *Board) checkMotor(motor int) (wire.Message, bool) {
	if motor == board.BroadcastMotorID || (motor >= 1 && motor <= b.config.Model.UnitCount()) {
		return wire.Message{}, false
	}
	return wire.NewMessage("/error/command", "MotorIdNotMatch", int32(motor)), true
}

// store must be called with b.mu held.
func (b *Board) store(reply string, motor int, args []any) {
	byMotor, ok := b.values[reply]
	if !ok {
		byMotor = make(map[int][]any)
		b.values[reply] = byMotor
	}
	byMotor[motor] = append([]any(nil), args...)
}

func (b *Board) write(m wire.Message) error {
	data, err := wire.Encode(m)
	if err != nil {
		return err
	}
	return b.EmitRaw(data)
}

func handleSetDestIP(b *Board, _ wire.Message) []wire.Message {
	b.mu.Lock()
	isNew := !b.destSet
	b.destSet = true
	ip := net.IPv4(127, 0, 0, 1).To4()
	if b.dest != nil {
		ip = b.dest.IP.To4()
	}
	b.mu.Unlock()

	flag := int32(0)
	if isNew {
		flag = 1
	}
	return []wire.Message{wire.NewMessage("/destIp",
		int32(ip[0]), int32(ip[1]), int32(ip[2]), int32(ip[3]), flag)}
}

func motorArg(m wire.Message) (int, bool) {
	if len(m.Args) == 0 {
		return 0, false
	}
	switch v := m.Args[0].(type) {
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	}
	return 0, false
}

// replyFor turns "MicrostepMode" into "/microstepMode".
func replyFor(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return "/" + string(unicode.ToLower(r)) + name[size:]
}

// FreeUDPPort returns a loopback UDP port that was free a moment ago.
func FreeUDPPort() (int, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).Port, nil
}
