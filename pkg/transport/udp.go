package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/stepseries/stepseries-go/pkg/catalog"
	"github.com/stepseries/stepseries-go/pkg/log"
	"github.com/stepseries/stepseries-go/pkg/metrics"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

// Transport errors.
var (
	ErrClosed         = errors.New("transport closed")
	ErrAlreadyServing = errors.New("transport already serving")
)

// DefaultPollInterval bounds how long a blocked read waits before the
// receive loop rechecks its context.
const DefaultPollInterval = 100 * time.Millisecond

// UDPConfig configures a UDPTransport.
type UDPConfig struct {
	// RemoteAddr is the board address, for example "10.0.0.101:50000".
	RemoteAddr string

	// ListenAddr is the local address the board reports to, for example
	// "0.0.0.0:50101". Port 0 picks an ephemeral port.
	ListenAddr string

	// SendRate limits outbound datagrams per second. Zero disables pacing.
	SendRate float64

	// SendBurst is the token bucket size when SendRate is set (default: 1).
	SendBurst int

	// PollInterval is the read deadline used by the receive loop
	// (default: DefaultPollInterval).
	PollInterval time.Duration

	// Logger receives operational logs. Nil disables them.
	Logger *slog.Logger

	// Metrics records datagram counts. Nil disables them.
	Metrics *metrics.Collector
}

// DefaultUDPConfig returns a configuration for the board at remote that
// reports to listen.
func DefaultUDPConfig(remote, listen string) UDPConfig {
	return UDPConfig{
		RemoteAddr:   remote,
		ListenAddr:   listen,
		PollInterval: DefaultPollInterval,
	}
}

// UDPTransport is a Transport over two UDP sockets.
type UDPTransport struct {
	config  UDPConfig
	logger  *slog.Logger
	limiter *rate.Limiter

	send   *net.UDPConn
	listen *net.UDPConn

	serving   atomic.Bool
	closed    atomic.Bool
	closeOnce sync.Once
	closeCh   chan struct{}

	// Protocol trace (optional)
	trace     log.Logger
	sessionID string
	deviceID  string
}

// NewUDPTransport resolves both addresses and opens the sockets.
func NewUDPTransport(config UDPConfig) (*UDPTransport, error) {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}

	remote, err := net.ResolveUDPAddr("udp4", config.RemoteAddr)
	if err != nil {
		return nil, fmt.Errorf("resolve board address %q: %w", config.RemoteAddr, err)
	}
	local, err := net.ResolveUDPAddr("udp4", config.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("resolve listen address %q: %w", config.ListenAddr, err)
	}

	listen, err := net.ListenUDP("udp4", local)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", local, err)
	}
	send, err := net.DialUDP("udp4", nil, remote)
	if err != nil {
		listen.Close()
		return nil, fmt.Errorf("dial %s: %w", remote, err)
	}

	t := &UDPTransport{
		config:  config,
		logger:  config.Logger,
		send:    send,
		listen:  listen,
		closeCh: make(chan struct{}),
		trace:   log.NoopLogger{},
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	if config.SendRate > 0 {
		burst := config.SendBurst
		if burst <= 0 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(config.SendRate), burst)
	}
	return t, nil
}

// SetLogger configures protocol tracing for this transport.
// Pass nil to disable tracing.
func (t *UDPTransport) SetLogger(logger log.Logger, sessionID, deviceID string) {
	t.trace = log.OrNoop(logger)
	t.sessionID = sessionID
	t.deviceID = deviceID
}

// LocalAddr returns the listen address.
func (t *UDPTransport) LocalAddr() net.Addr {
	return t.listen.LocalAddr()
}

// RemoteAddr returns the board address.
func (t *UDPTransport) RemoteAddr() net.Addr {
	return t.send.RemoteAddr()
}

// Send encodes msg and writes it to the board. When pacing is enabled it
// first waits for a token, honoring ctx.
func (t *UDPTransport) Send(ctx context.Context, msg wire.Message) error {
	if t.closed.Load() {
		return ErrClosed
	}

	data, err := wire.Encode(msg)
	if err != nil {
		return err
	}

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("send %s: %w", msg.Address, err)
		}
	}

	if _, err := t.send.Write(data); err != nil {
		if t.closed.Load() {
			return ErrClosed
		}
		return fmt.Errorf("send %s: %w", msg.Address, err)
	}

	t.config.Metrics.RecordSend(len(data))
	t.traceFrame(log.DirectionOut, data)
	t.logger.Debug("datagram sent", "address", msg.Address, "size", len(data))
	return nil
}

// Serve runs the receive loop until Close is called or ctx ends. Only one
// Serve call may run at a time.
func (t *UDPTransport) Serve(ctx context.Context, h Handler) error {
	if t.closed.Load() {
		return ErrClosed
	}
	if !t.serving.CompareAndSwap(false, true) {
		return ErrAlreadyServing
	}
	defer t.serving.Store(false)

	buf := make([]byte, wire.MaxDatagramSize)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.closeCh:
			return nil
		default:
		}

		if err := t.listen.SetReadDeadline(time.Now().Add(t.config.PollInterval)); err != nil {
			if t.closed.Load() {
				return nil
			}
			t.logger.Warn("set read deadline", "error", err)
			if !t.pause(ctx) {
				return ctx.Err()
			}
			continue
		}
		n, from, err := t.listen.ReadFromUDP(buf)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if t.closed.Load() {
				return nil
			}
			t.logger.Warn("receive error", "error", err)
			if !t.pause(ctx) {
				return ctx.Err()
			}
			continue
		}

		data := append([]byte(nil), buf[:n]...)
		t.config.Metrics.RecordReceive(n)
		t.traceFrame(log.DirectionIn, data)
		t.deliver(data, from, h)
	}
}

// pause waits one poll interval after a failed read. It returns false when
// ctx ended; Close ends the wait early and Serve returns on the next pass.
func (t *UDPTransport) pause(ctx context.Context) bool {
	timer := time.NewTimer(t.config.PollInterval)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-t.closeCh:
		return true
	case <-ctx.Done():
		return false
	}
}

// deliver decodes one datagram and hands each message to h.
func (t *UDPTransport) deliver(data []byte, from *net.UDPAddr, h Handler) {
	msgs, err := wire.Decode(data)
	if err != nil {
		t.logger.Debug("undecodable datagram", "from", from, "size", len(data), "error", err)
		h.HandleInbound(&catalog.ParseError{Data: data, Err: err})
		return
	}
	for _, m := range msgs {
		resp, err := catalog.Decode(m)
		if err != nil {
			var pe *catalog.ParseError
			if !errors.As(err, &pe) {
				pe = &catalog.ParseError{Raw: m, Err: err}
			}
			pe.Data = data
			h.HandleInbound(pe)
			continue
		}
		h.HandleInbound(resp)
	}
}

// Close releases both sockets. It is idempotent.
func (t *UDPTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		t.closed.Store(true)
		close(t.closeCh)
		err = errors.Join(t.listen.Close(), t.send.Close())
	})
	return err
}

func (t *UDPTransport) traceFrame(dir log.Direction, data []byte) {
	t.trace.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  t.sessionID,
		Direction:  dir,
		Layer:      log.LayerTransport,
		Category:   log.CategoryMessage,
		RemoteAddr: t.config.RemoteAddr,
		DeviceID:   t.deviceID,
		Frame:      log.NewFrameEvent(data),
	})
}
