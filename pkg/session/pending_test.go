package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/catalog"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

func mustPending(t *testing.T, q catalog.Query, model board.Model) *pending {
	t.Helper()
	reply, ok := catalog.ReplyAddress(q.Address())
	require.True(t, ok)
	return newPending(q, reply, model)
}

func TestPendingExpectedCount(t *testing.T) {
	tests := []struct {
		name  string
		query catalog.Query
		model board.Model
		want  int
	}{
		{"single motor", catalog.GetMicrostepMode{MotorID: 2}, board.STEP400, 1},
		{"broadcast STEP400", catalog.GetMicrostepMode{MotorID: board.BroadcastMotorID}, board.STEP400, 4},
		{"broadcast STEP800", catalog.GetMicrostepMode{MotorID: board.BroadcastMotorID}, board.STEP800, 8},
		{"board-wide", catalog.GetVersion{}, board.STEP800, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPending(t, tt.query, tt.model)
			assert.Equal(t, tt.want, p.expected)
			assert.Equal(t, tt.want > 1, p.broadcast)
		})
	}
}

func TestPendingSingleReply(t *testing.T) {
	p := mustPending(t, catalog.GetMicrostepMode{MotorID: 2}, board.STEP400)

	_, done := p.offer(&catalog.Busy{MotorID: 2, State: true})
	assert.False(t, done, "other addresses are not replies")

	_, done = p.offer(&catalog.MicrostepMode{MotorID: 1, StepSel: 7})
	assert.False(t, done, "replies for another motor do not match")

	r, done := p.offer(&catalog.MicrostepMode{MotorID: 2, StepSel: 7})
	require.True(t, done)
	require.NoError(t, r.err)
	assert.Equal(t, []catalog.Response{&catalog.MicrostepMode{MotorID: 2, StepSel: 7}}, r.resps)
}

func TestPendingBroadcastAggregation(t *testing.T) {
	p := mustPending(t, catalog.GetMicrostepMode{MotorID: board.BroadcastMotorID}, board.STEP400)

	for _, id := range []int{3, 1, 4} {
		_, done := p.offer(&catalog.MicrostepMode{MotorID: id})
		require.False(t, done)
	}
	_, done := p.offer(&catalog.MicrostepMode{MotorID: 1})
	require.False(t, done, "a repeated motor is not a new reply")

	r, done := p.offer(&catalog.MicrostepMode{MotorID: 2})
	require.True(t, done)
	require.Len(t, r.resps, 4)
	var order []int
	for _, resp := range r.resps {
		order = append(order, resp.(*catalog.MicrostepMode).MotorID)
	}
	assert.Equal(t, []int{3, 1, 4, 2}, order, "arrival order")
}

func TestPendingReplyAddressCaseInsensitive(t *testing.T) {
	p := mustPending(t, catalog.GetHomeSwMode{MotorID: 1}, board.STEP400)
	assert.Equal(t, "/homeswmode", p.reply)

	_, done := p.offer(&catalog.HomeSwMode{MotorID: 1})
	assert.True(t, done)
}

func TestPendingProtocolErrorAttribution(t *testing.T) {
	tests := []struct {
		name  string
		query catalog.Query
		err   catalog.Response
		want  bool
	}{
		{"no motor id", catalog.GetStatus{MotorID: 1},
			&catalog.CommandError{Text: "x"}, true},
		{"same motor", catalog.GetStatus{MotorID: 200},
			&catalog.CommandError{Text: "motorId out of range", MotorID: 200, HasMotorID: true}, true},
		{"other motor", catalog.GetStatus{MotorID: 1},
			&catalog.CommandError{Text: "x", MotorID: 3, HasMotorID: true}, false},
		{"broadcast", catalog.GetStatus{MotorID: board.BroadcastMotorID},
			&catalog.OSCError{Text: "x", MotorID: 3, HasMotorID: true}, true},
		{"board-wide query", catalog.GetVersion{},
			&catalog.OSCError{Text: "x", MotorID: 3, HasMotorID: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPending(t, tt.query, board.STEP400)
			r, done := p.offer(tt.err)
			assert.Equal(t, tt.want, done)
			if tt.want {
				assert.Equal(t, tt.err, r.err)
			}
		})
	}
}

func TestPendingProtocolErrorDiscardsPartial(t *testing.T) {
	p := mustPending(t, catalog.GetStatus{MotorID: board.BroadcastMotorID}, board.STEP400)
	p.offer(&catalog.Status{MotorID: 1})
	p.offer(&catalog.Status{MotorID: 2})

	r, done := p.offer(&catalog.CommandError{Text: "boom"})
	require.True(t, done)
	assert.Nil(t, r.resps)
	var ce *catalog.CommandError
	assert.True(t, errors.As(r.err, &ce))
}

func TestPendingParseErrorAlwaysRaised(t *testing.T) {
	p := mustPending(t, catalog.GetStatus{MotorID: 1}, board.STEP400)
	pe := &catalog.ParseError{Raw: wire.NewMessage("/bogus"), Err: catalog.ErrUnknownAddress}

	r, done := p.offer(pe)
	require.True(t, done)
	assert.Same(t, pe, r.err)
}
