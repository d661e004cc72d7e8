package session

import (
	"fmt"
	"sync"

	"github.com/stepseries/stepseries-go/pkg/catalog"
)

// dispatchItem is a message and the callbacks registered when it arrived.
type dispatchItem struct {
	resp    catalog.Response
	targets []*Callback
}

// dispatchQueue is an unbounded FIFO between the receive path and the
// dispatch goroutine. push never blocks, so a slow callback holds up later
// callbacks but never decoding or correlation.
type dispatchQueue struct {
	mu     sync.Mutex
	items  []dispatchItem
	closed bool
	wake   chan struct{}
}

func newDispatchQueue() *dispatchQueue {
	return &dispatchQueue{wake: make(chan struct{}, 1)}
}

// push appends it and returns the backlog length.
func (q *dispatchQueue) push(it dispatchItem) int {
	q.mu.Lock()
	q.items = append(q.items, it)
	n := len(q.items)
	q.mu.Unlock()
	q.signal()
	return n
}

// close lets the consumer finish the backlog and stop.
func (q *dispatchQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

func (q *dispatchQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// next blocks until items are queued and takes all of them. It returns
// false once the queue is closed and empty.
func (q *dispatchQueue) next() ([]dispatchItem, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			batch := q.items
			q.items = nil
			q.mu.Unlock()
			return batch, true
		}
		closed := q.closed
		q.mu.Unlock()
		if closed {
			return nil, false
		}
		<-q.wake
	}
}

// enqueue hands resp, with the callbacks registered right now, to the
// dispatch goroutine. Caller holds s.mu.
func (s *Session) enqueue(resp catalog.Response) {
	if s.queue == nil {
		return
	}
	targets := s.callbacks.targets(resp.Kind())
	if len(targets) == 0 {
		return
	}
	if n := s.queue.push(dispatchItem{resp: resp, targets: targets}); n == s.config.DispatchQueue {
		s.config.Metrics.RecordCallbackBacklog()
		s.logger.Warn("callbacks falling behind",
			"backlog", n, "kind", resp.Kind(), "address", resp.Address())
	}
}

// dispatch runs callbacks until queue is closed and drained. It starts
// delivering only after the previous binding's dispatcher, prev, finished.
func (s *Session) dispatch(queue *dispatchQueue, prev <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	if prev != nil {
		<-prev
	}
	for {
		batch, ok := queue.next()
		if !ok {
			return
		}
		for _, it := range batch {
			for _, cb := range it.targets {
				s.invoke(cb, it.resp)
			}
		}
	}
}

func (s *Session) invoke(cb *Callback, resp catalog.Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("callback panicked",
				"kind", resp.Kind(), "panic", fmt.Sprint(r))
		}
	}()
	cb.fn(resp)
}
