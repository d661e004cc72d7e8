package connection

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/stepseries/stepseries-go/pkg/log"
	"github.com/stepseries/stepseries-go/pkg/metrics"
	"github.com/stepseries/stepseries-go/pkg/session"
	"github.com/stepseries/stepseries-go/pkg/transport"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

// ErrManagerClosed is returned by Register after Close.
var ErrManagerClosed = errors.New("connection manager closed")

// Peer is the session side of a binding. *session.Session implements it.
type Peer interface {
	transport.Handler

	Identity() session.Identity
	SessionID() string
	Config() session.Config
	Bind()
	Unbind()
}

// TransportFactory opens the transport for peer.
type TransportFactory func(peer Peer) (transport.Transport, error)

// Config configures a Manager.
type Config struct {
	// SendRate limits outbound datagrams per second per board.
	// Zero disables pacing.
	SendRate float64

	// SendBurst is the pacing token bucket size (default: 1).
	SendBurst int

	// Logger receives operational logs. Nil disables them.
	Logger *slog.Logger

	// Trace receives transport-layer trace events. Nil disables tracing.
	Trace log.Logger

	// TransportFactory overrides the UDP transport, mainly for tests.
	TransportFactory TransportFactory

	// HandleSignals shuts every binding down on SIGINT or SIGTERM and then
	// re-raises the signal.
	HandleSignals bool
}

// DefaultConfig returns a configuration without pacing.
func DefaultConfig() Config {
	return Config{}
}

type binding struct {
	peer      Peer
	transport transport.Transport
	cancel    context.CancelFunc
	done      chan struct{}
}

// Manager is the registry of bound devices. It is safe for concurrent use.
type Manager struct {
	config Config
	logger *slog.Logger

	mu       sync.RWMutex
	bindings map[session.Identity]*binding
	closed   bool

	stopSignals chan struct{}
	closeOnce   sync.Once
}

var _ session.Sender = (*Manager)(nil)

// NewManager creates an empty manager.
func NewManager(config Config) *Manager {
	m := &Manager{
		config:      config,
		logger:      config.Logger,
		bindings:    make(map[session.Identity]*binding),
		stopSignals: make(chan struct{}),
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	if m.config.TransportFactory == nil {
		m.config.TransportFactory = m.udpTransport
	}
	if config.HandleSignals {
		m.watchSignals()
	}
	return m
}

// Register opens the transport for peer, starts its receive loop and binds
// the peer. Registering an identity that is already bound does nothing.
func (m *Manager) Register(peer Peer) error {
	id := peer.Identity()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrManagerClosed
	}
	if _, ok := m.bindings[id]; ok {
		return nil
	}

	t, err := m.config.TransportFactory(peer)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &binding{
		peer:      peer,
		transport: t,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	m.bindings[id] = b

	peer.Bind()
	go m.serve(ctx, b)

	metrics.SetBoundDevices(len(m.bindings))
	m.logger.Info("device registered", "device", id.String(), "local", t.LocalAddr())
	return nil
}

// Unregister stops the receive loop for id, closes its transport and
// unbinds the peer. Unregistering an unknown identity returns a
// *session.DeviceNotBoundError.
func (m *Manager) Unregister(id session.Identity) error {
	m.mu.Lock()
	b, ok := m.bindings[id]
	if ok {
		delete(m.bindings, id)
		metrics.SetBoundDevices(len(m.bindings))
	}
	m.mu.Unlock()

	if !ok {
		return &session.DeviceNotBoundError{Identity: id}
	}
	return m.teardown(b)
}

// Send writes msg to the board bound to id.
func (m *Manager) Send(ctx context.Context, id session.Identity, msg wire.Message) error {
	m.mu.RLock()
	b, ok := m.bindings[id]
	m.mu.RUnlock()

	if !ok {
		return &session.DeviceNotBoundError{Identity: id}
	}
	err := b.transport.Send(ctx, msg)
	if errors.Is(err, transport.ErrClosed) {
		return &session.DeviceNotBoundError{Identity: id}
	}
	return err
}

// Bound reports whether id is registered.
func (m *Manager) Bound(id session.Identity) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.bindings[id]
	return ok
}

// Identities returns the registered identities in no particular order.
func (m *Manager) Identities() []session.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]session.Identity, 0, len(m.bindings))
	for id := range m.bindings {
		ids = append(ids, id)
	}
	return ids
}

// ShutdownAll unregisters every device. Calling it again, or with nothing
// registered, does nothing.
func (m *Manager) ShutdownAll() error {
	m.mu.Lock()
	all := make([]*binding, 0, len(m.bindings))
	for id, b := range m.bindings {
		all = append(all, b)
		delete(m.bindings, id)
	}
	if len(all) > 0 {
		metrics.SetBoundDevices(0)
	}
	m.mu.Unlock()

	var errs []error
	for _, b := range all {
		errs = append(errs, m.teardown(b))
	}
	if len(all) > 0 {
		m.logger.Info("all devices unregistered", "count", len(all))
	}
	return errors.Join(errs...)
}

// Close shuts every binding down and rejects further registrations.
func (m *Manager) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.closeOnce.Do(func() { close(m.stopSignals) })
	return m.ShutdownAll()
}

func (m *Manager) serve(ctx context.Context, b *binding) {
	defer close(b.done)
	err := b.transport.Serve(ctx, transport.HandlerFunc(b.peer.HandleInbound))
	if err != nil && !errors.Is(err, context.Canceled) {
		m.logger.Warn("receive loop stopped", "device", b.peer.Identity().String(), "error", err)
	}
}

// teardown stops b. The receive loop has exited before the peer is
// unbound, so no message reaches a closed dispatch queue.
func (m *Manager) teardown(b *binding) error {
	b.cancel()
	err := b.transport.Close()
	<-b.done
	b.peer.Unbind()
	m.logger.Info("device unregistered", "device", b.peer.Identity().String())
	return err
}

func (m *Manager) udpTransport(peer Peer) (transport.Transport, error) {
	id := peer.Identity()
	sc := peer.Config()

	config := transport.DefaultUDPConfig(id.Remote, id.Listen)
	config.SendRate = m.config.SendRate
	config.SendBurst = m.config.SendBurst
	config.Logger = m.logger.With("device", id.String())
	config.Metrics = sc.Metrics

	t, err := transport.NewUDPTransport(config)
	if err != nil {
		return nil, err
	}
	if m.config.Trace != nil {
		t.SetLogger(m.config.Trace, peer.SessionID(), id.String())
	}
	return t, nil
}

// watchSignals releases every socket when the process is interrupted and
// then lets the signal take its default course.
func (m *Manager) watchSignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			m.logger.Info("signal received, unregistering devices", "signal", sig)
			if err := m.ShutdownAll(); err != nil {
				m.logger.Warn("shutdown", "error", err)
			}
			signal.Stop(ch)
			if p, err := os.FindProcess(os.Getpid()); err == nil {
				p.Signal(sig)
			}
		case <-m.stopSignals:
		}
	}()
}
