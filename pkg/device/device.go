package device

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stepseries/stepseries-go/pkg/catalog"
	"github.com/stepseries/stepseries-go/pkg/connection"
	"github.com/stepseries/stepseries-go/pkg/log"
	"github.com/stepseries/stepseries-go/pkg/metrics"
	"github.com/stepseries/stepseries-go/pkg/session"
	"github.com/stepseries/stepseries-go/pkg/version"
)

// Registry binds sessions to transports. *connection.Manager implements it.
type Registry interface {
	session.Sender
	Register(peer connection.Peer) error
	Unregister(id session.Identity) error
}

var _ Registry = (*connection.Manager)(nil)

// Device is one registered board.
type Device struct {
	config   Config
	registry Registry
	session  *session.Session
	logger   *slog.Logger
	trace    log.Logger

	// hsMu serializes handshakes.
	hsMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	closed        bool
	wg            sync.WaitGroup
	rehandshaking atomic.Bool
	bootCallback  *session.Callback
}

// New creates the device's session and registers it with registry.
func New(config Config, registry Registry) (*Device, error) {
	id, err := config.Identity()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sc := session.DefaultConfig(config.Model)
	sc.Timeout = config.Timeout
	sc.FailFast = config.FailFast
	sc.Logger = logger
	sc.Trace = config.Trace
	if config.Metrics {
		sc.Metrics = metrics.NewCollector(id.Remote)
	}
	s := session.New(id, registry, sc)

	ctx, cancel := context.WithCancel(context.Background())
	d := &Device{
		config:   config,
		registry: registry,
		session:  s,
		logger:   logger.With("device", id.String()),
		trace:    log.OrNoop(config.Trace),
		ctx:      ctx,
		cancel:   cancel,
	}

	if config.RehandshakeOnBoot {
		d.bootCallback = session.Typed(func(b *catalog.Booted) {
			d.logger.Info("board rebooted", "device_id", b.DeviceID)
			d.rehandshake()
		})
		s.On(catalog.KindBooted, d.bootCallback)
	}

	if err := registry.Register(s); err != nil {
		cancel()
		return nil, fmt.Errorf("register %s: %w", id, err)
	}
	return d, nil
}

// Session returns the device's session.
func (d *Device) Session() *session.Session { return d.session }

// Identity returns the resolved board and listen addresses.
func (d *Device) Identity() session.Identity { return d.session.Identity() }

// Config returns the device configuration.
func (d *Device) Config() Config { return d.config }

// Handshake makes this host the destination of the board's replies and
// reports. It sends SetDestIP and waits one timeout for the DestIP
// confirmation, retrying with exponential backoff until ctx ends.
func (d *Device) Handshake(ctx context.Context) (*catalog.DestIP, error) {
	d.hsMu.Lock()
	defer d.hsMu.Unlock()

	got := make(chan *catalog.DestIP, 1)
	cb := session.Typed(func(r *catalog.DestIP) {
		select {
		case got <- r:
		default:
		}
	})
	defer d.session.Off(cb)

	backoff := connection.NewBackoff()
	wait := d.session.Config().Timeout
	d.traceHandshake(handshakeIdle, handshakePending, "")
	for {
		if err := d.session.Set(ctx, catalog.SetDestIP{}, session.WithCallback(cb)); err != nil {
			d.traceHandshake(handshakePending, handshakeFailed, err.Error())
			return nil, fmt.Errorf("handshake: %w", err)
		}

		timer := time.NewTimer(wait)
		select {
		case r := <-got:
			timer.Stop()
			d.logger.Info("handshake complete", "attempts", backoff.Attempts()+1, "new", r.IsNewDestIP)
			d.traceHandshake(handshakePending, handshakeConfirmed, "")
			return r, nil
		case <-ctx.Done():
			timer.Stop()
			d.traceHandshake(handshakePending, handshakeFailed, ctx.Err().Error())
			return nil, ctx.Err()
		case <-timer.C:
		}

		d.logger.Debug("handshake unanswered", "attempt", backoff.Attempts()+1)
		if err := backoff.Wait(ctx); err != nil {
			d.traceHandshake(handshakePending, handshakeFailed, err.Error())
			return nil, err
		}
	}
}

// Reset reboots the board. The board announces itself with Booted.
func (d *Device) Reset(ctx context.Context) error {
	return d.session.Set(ctx, catalog.ResetDevice{})
}

// Firmware queries and parses the board's firmware version. A major
// version this library does not speak is logged, not rejected.
func (d *Device) Firmware(ctx context.Context) (version.Firmware, *catalog.Version, error) {
	v, err := session.GetOne[*catalog.Version](ctx, d.session, catalog.GetVersion{})
	if err != nil {
		return version.Firmware{}, nil, err
	}
	fw, err := version.FromResponse(v)
	if err != nil {
		return version.Firmware{}, v, err
	}
	if !fw.Supported() {
		d.logger.Warn("unsupported firmware", "name", v.FirmwareName, "version", fw.String())
	}
	return fw, v, nil
}

// Get runs q on the device's session.
func (d *Device) Get(ctx context.Context, q catalog.Query, opts ...session.GetOption) ([]catalog.Response, error) {
	return d.session.Get(ctx, q, opts...)
}

// Set sends cmd on the device's session.
func (d *Device) Set(ctx context.Context, cmd catalog.Command, opts ...session.SetOption) error {
	return d.session.Set(ctx, cmd, opts...)
}

// On registers cb for messages of kind.
func (d *Device) On(kind catalog.Kind, cb *session.Callback) { d.session.On(kind, cb) }

// Off removes cb.
func (d *Device) Off(cb *session.Callback) { d.session.Off(cb) }

// Close stops background handshakes and unregisters the device. Calling it
// again does nothing.
func (d *Device) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.cancel()
	d.mu.Unlock()

	d.wg.Wait()
	if d.bootCallback != nil {
		d.session.Off(d.bootCallback)
	}

	err := d.registry.Unregister(d.Identity())
	if session.IsDeviceNotBound(err) {
		return nil
	}
	return err
}

// rehandshake runs Handshake in the background. It runs on the dispatch
// goroutine, which must stay free to deliver the DestIP confirmation.
func (d *Device) rehandshake() {
	if !d.rehandshaking.CompareAndSwap(false, true) {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.rehandshaking.Store(false)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer d.rehandshaking.Store(false)
		if _, err := d.Handshake(d.ctx); err != nil && d.ctx.Err() == nil {
			d.logger.Warn("rehandshake failed", "error", err)
		}
	}()
}
