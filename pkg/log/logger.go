package log

// Logger receives protocol trace events. Pass nil or NoopLogger to disable
// tracing.
type Logger interface {
	// Log records an event. Implementations must be safe for concurrent use
	// and should not block: Log runs on the receive path.
	Log(event Event)
}

// NoopLogger discards all events. It is usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// OrNoop returns l, or NoopLogger when l is nil, so callers can log
// unconditionally.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}

var _ Logger = NoopLogger{}
