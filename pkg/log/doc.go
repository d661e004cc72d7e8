// Package log provides protocol trace capture for STEP-series sessions.
//
// Protocol tracing is separate from operational logging (slog). Where slog
// reports what the library is doing, a trace records every datagram that
// crossed the wire and every query correlation outcome, in a
// machine-readable form that step-log can view, filter and summarize.
//
// # Basic Usage
//
//	// Console during development
//	cfg.Trace = log.NewSlogAdapter(slog.Default())
//
//	// Binary file for later analysis
//	cfg.Trace, _ = log.NewFileLogger("/var/log/stepseries/rig.slog")
//
//	// Both
//	cfg.Trace = log.NewMultiLogger(console, file)
//
// # Event Types
//
// Events are captured at three layers:
//   - Transport: raw datagrams (FrameEvent)
//   - Wire: decoded OSC messages (MessageEvent)
//   - Session: query correlation (CorrelationEvent) and binding lifecycle
//     (StateChangeEvent)
//
// Decode failures and board-reported errors carry an ErrorEventData.
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys,
// conventionally named *.slog.
package log
