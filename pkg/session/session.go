package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stepseries/stepseries-go/pkg/catalog"
	"github.com/stepseries/stepseries-go/pkg/log"
	"github.com/stepseries/stepseries-go/pkg/metrics"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

// Sender transmits a message to the board bound to id.
// Implemented by connection.Manager.
type Sender interface {
	Send(ctx context.Context, id Identity, msg wire.Message) error
}

// Session is the per-board handle. It is safe for concurrent use.
type Session struct {
	id        Identity
	config    Config
	sender    Sender
	sessionID string
	logger    *slog.Logger

	callbacks *registry

	// sem serializes Get: one slot, held for the whole request.
	sem chan struct{}

	mu      sync.Mutex
	pending *pending
	// abandoned is the reply address of the last Get that gave up, so a
	// late reply can be recognized.
	abandoned string
	// unbound is closed when the current binding ends. A new session starts
	// with it closed.
	unbound chan struct{}
	// queue feeds the dispatch goroutine while bound.
	queue        *dispatchQueue
	dispatchDone chan struct{}
}

// New creates an unbound session for the board at id. Register it with a
// connection.Manager before calling Get or Set.
func New(id Identity, sender Sender, config Config) *Session {
	config.applyDefaults()
	s := &Session{
		id:        id,
		config:    config,
		sender:    sender,
		sessionID: uuid.NewString(),
		callbacks: newRegistry(),
		sem:       make(chan struct{}, 1),
		unbound:   make(chan struct{}),
	}
	close(s.unbound)
	s.logger = config.Logger.With("device", id.String(), "model", config.Model.String())
	return s
}

// Identity returns the session's device identity.
func (s *Session) Identity() Identity { return s.id }

// SessionID returns the UUID tagging this session's trace events.
func (s *Session) SessionID() string { return s.sessionID }

// Config returns the session configuration with defaults applied.
func (s *Session) Config() Config { return s.config }

// Bound reports whether the session has an active transport.
func (s *Session) Bound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.unbound:
		return false
	default:
		return true
	}
}

// Bind marks the session bound and starts callback dispatch. It is called
// by the connection manager once the transport is serving; calling it on a
// bound session does nothing.
func (s *Session) Bind() {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.unbound:
	default:
		return
	}
	s.unbound = make(chan struct{})
	prev := s.dispatchDone
	s.queue = newDispatchQueue()
	s.dispatchDone = make(chan struct{})
	go s.dispatch(s.queue, prev, s.dispatchDone)

	s.traceState("unbound", "bound", "")
	s.logger.Info("session bound")
}

// Unbind marks the session unbound. A Get waiting for a reply fails with a
// DeviceNotBoundError. Messages already queued still reach callbacks. It is
// called by the connection manager after the transport stopped serving.
func (s *Session) Unbind() {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.unbound:
		return
	default:
	}
	close(s.unbound)
	s.queue.close()
	s.queue = nil

	s.traceState("bound", "unbound", "")
	s.logger.Info("session unbound")
}

// WaitDispatched blocks until the dispatch goroutine of the last binding
// has delivered every queued message, or ctx ends. It only returns nil
// after Unbind.
func (s *Session) WaitDispatched(ctx context.Context) error {
	s.mu.Lock()
	done := s.dispatchDone
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// On registers cb for messages of kind, or for every message when kind is
// catalog.Any. Registering the same cb for the same kind again is a no-op.
func (s *Session) On(kind catalog.Kind, cb *Callback) {
	if cb == nil {
		return
	}
	if s.callbacks.add(kind, cb) {
		s.logger.Debug("callback registered", "kind", kind)
	}
}

// Off removes cb from every kind it was registered for. Removing an
// unregistered callback is a no-op.
func (s *Session) Off(cb *Callback) {
	if n := s.callbacks.remove(cb); n > 0 {
		s.logger.Debug("callback removed", "registrations", n)
	}
}

// Set sends cmd without waiting for an answer.
//
// Commands the board model does not support fail with
// *board.InvalidCommandError before anything is sent.
func (s *Session) Set(ctx context.Context, cmd catalog.Command, opts ...SetOption) error {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := s.config.Model.Check(cmd); err != nil {
		return err
	}
	if v, ok := cmd.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
	}
	if err := s.checkBound(); err != nil {
		return err
	}

	// Registration precedes the send so the first report is not missed.
	var added []catalog.Kind
	if o.callback != nil {
		rep, ok := cmd.(catalog.Reporter)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotReporter, cmd.Name())
		}
		for _, kind := range rep.ReportKinds() {
			if s.callbacks.add(kind, o.callback) {
				added = append(added, kind)
			}
		}
	}

	msg := catalog.Message(cmd)
	s.traceMessage(log.DirectionOut, log.MessageTypeCommand, msg, cmd.Name(), "")
	if err := s.sender.Send(ctx, s.id, msg); err != nil {
		for _, kind := range added {
			s.callbacks.removeKind(kind, o.callback)
		}
		return err
	}
	if len(added) > 0 {
		s.logger.Debug("callback registered", "kinds", added)
	}
	return nil
}

// Get sends q and waits for its reply. For a query addressed to
// board.BroadcastMotorID it collects one reply per unit and returns them in
// arrival order; otherwise the slice holds the single reply.
//
// Get fails with the board's *catalog.CommandError or *catalog.OSCError
// when the board reports an error for the request, with *catalog.ParseError
// when an undecodable datagram arrives while waiting, with *TimeoutError
// when the deadline passes, and with *DeviceNotBoundError when the session
// is unbound while waiting. A Get issued while another is in flight waits
// for it, unless Config.FailFast is set.
func (s *Session) Get(ctx context.Context, q catalog.Query, opts ...GetOption) ([]catalog.Response, error) {
	o := getOptions{timeout: s.config.Timeout}
	for _, opt := range opts {
		opt(&o)
	}

	if err := s.config.Model.Check(q); err != nil {
		return nil, err
	}
	reply, ok := catalog.ReplyAddress(q.Address())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotQuery, q.Name())
	}

	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()

	p := newPending(q, reply, s.config.Model)
	unbound, err := s.install(p)
	if err != nil {
		return nil, err
	}
	defer s.clear(p)

	msg := catalog.Message(q)
	s.traceMessage(log.DirectionOut, log.MessageTypeQuery, msg, q.Name(), "")
	s.traceCorrelation(p, log.OutcomeStarted, false)
	if err := s.sender.Send(ctx, s.id, msg); err != nil {
		s.finish(p, log.OutcomeError, metrics.OutcomeError)
		return nil, err
	}

	timer := time.NewTimer(o.timeout)
	defer timer.Stop()

	select {
	case r := <-p.done:
		return s.resolve(p, r)
	case <-timer.C:
		r, resolved, received := s.abandon(p)
		if resolved {
			// The result raced the timer; it still wins.
			return s.resolve(p, r)
		}
		s.finish(p, log.OutcomeTimeout, metrics.OutcomeTimeout)
		return nil, &TimeoutError{
			Query:    q.Address(),
			Expected: p.expected,
			Received: received,
			After:    o.timeout,
		}
	case <-ctx.Done():
		s.abandon(p)
		s.finish(p, log.OutcomeCanceled, metrics.OutcomeCanceled)
		return nil, ctx.Err()
	case <-unbound:
		s.finish(p, log.OutcomeUnbound, metrics.OutcomeUnbound)
		return nil, &DeviceNotBoundError{Identity: s.id}
	}
}

// HandleInbound is the session's receive path: it resolves the pending Get
// when resp belongs to it, then queues resp for callbacks. It is called by
// the transport, from one goroutine.
func (s *Session) HandleInbound(resp catalog.Response) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pending
	msgType := log.MessageTypeReport
	if p != nil && catalog.MatchesReply(p.reply, resp) {
		msgType = log.MessageTypeReply
	}
	s.traceInbound(resp, msgType)

	if p != nil {
		if r, done := p.offer(resp); done {
			s.pending = nil
			p.done <- r
		}
	} else if s.abandoned != "" && catalog.MatchesReply(s.abandoned, resp) {
		s.logger.Debug("late reply", "address", resp.Address())
		s.traceLate(resp)
	}
	s.enqueue(resp)
}

func (s *Session) acquire(ctx context.Context) error {
	if s.config.FailFast {
		select {
		case s.sem <- struct{}{}:
			return nil
		default:
			return ErrRequestInProgress
		}
	}
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) release() { <-s.sem }

// install makes p the pending request and returns the channel closed when
// the current binding ends.
func (s *Session) install(p *pending) (<-chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.unbound:
		return nil, &DeviceNotBoundError{Identity: s.id}
	default:
	}
	s.pending = p
	s.abandoned = ""
	return s.unbound, nil
}

// clear removes p if it is still pending.
func (s *Session) clear(p *pending) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == p {
		s.pending = nil
	}
}

// abandon clears p and remembers its reply address so a late reply can be
// recognized. When the receive path resolved p first, abandon returns that
// result instead.
func (s *Session) abandon(p *pending) (r result, resolved bool, received int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != p {
		return <-p.done, true, len(p.received)
	}
	s.pending = nil
	s.abandoned = p.reply
	return result{}, false, len(p.received)
}

func (s *Session) resolve(p *pending, r result) ([]catalog.Response, error) {
	if r.err != nil {
		s.finish(p, log.OutcomeError, metrics.OutcomeError)
		return nil, r.err
	}
	s.finish(p, log.OutcomeCompleted, metrics.OutcomeOK)
	return r.resps, nil
}

func (s *Session) finish(p *pending, outcome log.Outcome, label string) {
	s.config.Metrics.RecordGet(label, time.Since(p.started))
	s.traceCorrelation(p, outcome, true)
	if outcome != log.OutcomeCompleted {
		s.logger.Debug("get failed", "query", p.query.Address(), "outcome", outcome)
	}
}

func (s *Session) checkBound() error {
	if !s.Bound() {
		return &DeviceNotBoundError{Identity: s.id}
	}
	return nil
}

// GetOne runs q and returns its single reply as T.
func GetOne[T catalog.Response](ctx context.Context, s *Session, q catalog.Query, opts ...GetOption) (T, error) {
	var zero T
	resps, err := s.Get(ctx, q, opts...)
	if err != nil {
		return zero, err
	}
	v, ok := resps[0].(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrUnexpectedReply, resps[0])
	}
	return v, nil
}

// GetAll runs q and returns every reply as T.
func GetAll[T catalog.Response](ctx context.Context, s *Session, q catalog.Query, opts ...GetOption) ([]T, error) {
	resps, err := s.Get(ctx, q, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(resps))
	for _, r := range resps {
		v, ok := r.(T)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnexpectedReply, r)
		}
		out = append(out, v)
	}
	return out, nil
}

// IsDeviceNotBound reports whether err means the device has no binding.
func IsDeviceNotBound(err error) bool {
	return errors.Is(err, ErrDeviceNotBound)
}
