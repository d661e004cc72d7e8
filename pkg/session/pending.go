package session

import (
	"time"

	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/catalog"
)

// result is what a pending request resolves to.
type result struct {
	resps []catalog.Response
	err   error
}

// pending is the in-flight Get. Fields other than done are guarded by the
// session mutex.
type pending struct {
	query     catalog.Query
	reply     string
	target    int
	hasTarget bool
	broadcast bool
	expected  int
	received  []catalog.Response
	motors    map[int]bool
	started   time.Time

	// done has room for the single result.
	done chan result
}

func newPending(q catalog.Query, reply string, model board.Model) *pending {
	p := &pending{
		query:    q,
		reply:    reply,
		expected: 1,
		started:  time.Now(),
		done:     make(chan result, 1),
	}
	p.target, p.hasTarget = q.Target()
	if p.hasTarget && p.target == board.BroadcastMotorID {
		p.broadcast = true
		p.expected = model.UnitCount()
		p.motors = make(map[int]bool, p.expected)
	}
	return p
}

// offer feeds one inbound message to the request. It reports whether the
// request is now resolved, and with what.
func (p *pending) offer(resp catalog.Response) (result, bool) {
	if pe, ok := resp.(*catalog.ParseError); ok {
		return result{err: pe}, true
	}
	if catalog.IsProtocolError(resp) {
		if !p.pertains(resp) {
			return result{}, false
		}
		return result{err: resp.(error)}, true
	}
	if !catalog.MatchesReply(p.reply, resp) {
		return result{}, false
	}

	motor, scoped := catalog.MotorOf(resp)
	switch {
	case p.broadcast && scoped:
		// A motor answers once per broadcast; repeats are not new replies.
		if p.motors[motor] {
			return result{}, false
		}
		p.motors[motor] = true
	case p.hasTarget && scoped && motor != p.target:
		return result{}, false
	}

	p.received = append(p.received, resp)
	if len(p.received) < p.expected {
		return result{}, false
	}
	return result{resps: p.received}, true
}

// pertains reports whether a board error report belongs to this request:
// it names no motor, the request is a broadcast, or it names the target.
func (p *pending) pertains(resp catalog.Response) bool {
	motor, ok := catalog.MotorOf(resp)
	if !ok || p.broadcast || !p.hasTarget {
		return true
	}
	return motor == p.target
}
