package session

import (
	"sort"
	"sync"

	"github.com/stepseries/stepseries-go/pkg/catalog"
)

// Callback is a registered handler. Identity is the pointer: registering
// the same *Callback twice for a kind is a no-op, and Off removes it
// everywhere.
type Callback struct {
	fn func(catalog.Response)
}

// NewCallback wraps fn in a Callback handle.
func NewCallback(fn func(catalog.Response)) *Callback {
	return &Callback{fn: fn}
}

// Call runs the handler with r on the calling goroutine.
func (c *Callback) Call(r catalog.Response) {
	c.fn(r)
}

// Typed returns a Callback that receives only responses of type T.
//
//	s.On(catalog.KindBusy, session.Typed(func(b *catalog.Busy) { ... }))
func Typed[T catalog.Response](fn func(T)) *Callback {
	return NewCallback(func(r catalog.Response) {
		if v, ok := r.(T); ok {
			fn(v)
		}
	})
}

type registration struct {
	cb  *Callback
	seq uint64
}

// registry maps kinds to callbacks. seq orders registrations across kinds so
// a message's typed and wildcard callbacks run in registration order.
type registry struct {
	mu     sync.RWMutex
	seq    uint64
	byKind map[catalog.Kind][]registration
}

func newRegistry() *registry {
	return &registry{byKind: make(map[catalog.Kind][]registration)}
}

// add registers cb for kind. It returns false when cb was already there.
func (r *registry) add(kind catalog.Kind, cb *Callback) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, reg := range r.byKind[kind] {
		if reg.cb == cb {
			return false
		}
	}
	r.seq++
	r.byKind[kind] = append(r.byKind[kind], registration{cb: cb, seq: r.seq})
	return true
}

// remove drops cb from every kind and returns how many registrations went.
func (r *registry) remove(cb *Callback) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for kind, regs := range r.byKind {
		kept := regs[:0]
		for _, reg := range regs {
			if reg.cb == cb {
				removed++
				continue
			}
			kept = append(kept, reg)
		}
		if len(kept) == 0 {
			delete(r.byKind, kind)
		} else {
			r.byKind[kind] = kept
		}
	}
	return removed
}

// removeKind drops cb from kind only.
func (r *registry) removeKind(kind catalog.Kind, cb *Callback) {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := r.byKind[kind]
	for i, reg := range regs {
		if reg.cb != cb {
			continue
		}
		regs = append(regs[:i:i], regs[i+1:]...)
		if len(regs) == 0 {
			delete(r.byKind, kind)
		} else {
			r.byKind[kind] = regs
		}
		return
	}
}

// targets returns the callbacks for a message of kind, in registration
// order, each at most once. Parse errors have no type and reach only
// wildcard callbacks.
func (r *registry) targets(kind catalog.Kind) []*Callback {
	r.mu.RLock()
	var regs []registration
	if kind != catalog.KindParseError && kind != catalog.Any {
		regs = append(regs, r.byKind[kind]...)
	}
	regs = append(regs, r.byKind[catalog.Any]...)
	r.mu.RUnlock()

	if len(regs) == 0 {
		return nil
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].seq < regs[j].seq })

	out := make([]*Callback, 0, len(regs))
	seen := make(map[*Callback]bool, len(regs))
	for _, reg := range regs {
		if seen[reg.cb] {
			continue
		}
		seen[reg.cb] = true
		out = append(out, reg.cb)
	}
	return out
}

// count returns the number of registrations for kind.
func (r *registry) count(kind catalog.Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKind[kind])
}
