package session

import (
	"time"

	"github.com/stepseries/stepseries-go/pkg/catalog"
	"github.com/stepseries/stepseries-go/pkg/log"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

// event returns a trace event stamped with the session's identity.
func (s *Session) event(dir log.Direction, layer log.Layer, cat log.Category) log.Event {
	return log.Event{
		Timestamp:  time.Now(),
		SessionID:  s.sessionID,
		Direction:  dir,
		Layer:      layer,
		Category:   cat,
		Model:      s.config.Model.String(),
		RemoteAddr: s.id.Remote,
		DeviceID:   s.id.String(),
	}
}

func (s *Session) traceMessage(dir log.Direction, typ log.MessageType, msg wire.Message, command string, kind catalog.Kind) {
	e := s.event(dir, log.LayerWire, log.CategoryMessage)
	e.Message = &log.MessageEvent{
		Type:    typ,
		Address: msg.Address,
		Args:    msg.Args,
		Command: command,
		Kind:    string(kind),
	}
	s.config.Trace.Log(e)
}

// traceInbound records an inbound message and counts error reports.
func (s *Session) traceInbound(resp catalog.Response, typ log.MessageType) {
	if pe, ok := resp.(*catalog.ParseError); ok {
		s.config.Metrics.RecordParseError()
		s.logger.Warn("undecodable message", "error", pe)
		e := s.event(log.DirectionIn, log.LayerWire, log.CategoryError)
		e.Error = &log.ErrorEventData{
			Layer:   log.LayerWire,
			Message: pe.Error(),
			Context: "decode",
		}
		s.config.Trace.Log(e)
		return
	}
	if catalog.IsProtocolError(resp) {
		s.config.Metrics.RecordProtocolError(string(resp.Kind()))
		s.logger.Debug("board error report", "kind", resp.Kind(), "error", resp)
	}
	s.traceMessage(log.DirectionIn, typ, wire.Message{Address: resp.Address()}, "", resp.Kind())
}

func (s *Session) traceCorrelation(p *pending, outcome log.Outcome, finished bool) {
	e := s.event(log.DirectionOut, log.LayerSession, log.CategoryCorrelation)
	c := &log.CorrelationEvent{
		Outcome:  outcome,
		Query:    p.query.Address(),
		Reply:    p.reply,
		Expected: p.expected,
	}
	if finished {
		s.mu.Lock()
		c.Received = len(p.received)
		s.mu.Unlock()
		d := time.Since(p.started)
		c.Duration = &d
	}
	e.Correlation = c
	s.config.Trace.Log(e)
}

func (s *Session) traceLate(resp catalog.Response) {
	e := s.event(log.DirectionIn, log.LayerSession, log.CategoryCorrelation)
	e.Correlation = &log.CorrelationEvent{
		Outcome: log.OutcomeLate,
		Reply:   resp.Address(),
	}
	s.config.Trace.Log(e)
}

func (s *Session) traceState(from, to, reason string) {
	e := s.event(log.DirectionIn, log.LayerSession, log.CategoryState)
	e.StateChange = &log.StateChangeEvent{
		Entity:   log.StateEntityBinding,
		OldState: from,
		NewState: to,
		Reason:   reason,
	}
	s.config.Trace.Log(e)
}
