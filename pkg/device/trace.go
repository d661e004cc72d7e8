package device

import (
	"time"

	"github.com/stepseries/stepseries-go/pkg/log"
)

// Handshake states recorded in the protocol trace.
const (
	handshakeIdle      = "idle"
	handshakePending   = "pending"
	handshakeConfirmed = "confirmed"
	handshakeFailed    = "failed"
)

func (d *Device) traceHandshake(from, to, reason string) {
	id := d.session.Identity()
	d.trace.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  d.session.SessionID(),
		Direction:  log.DirectionOut,
		Layer:      log.LayerSession,
		Category:   log.CategoryState,
		Model:      d.config.Model.String(),
		RemoteAddr: id.Remote,
		DeviceID:   id.String(),
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityHandshake,
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}
