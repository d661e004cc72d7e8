// Package wire defines the datagram format spoken by STEP-series boards.
//
// Boards exchange Open Sound Control (OSC 1.0) messages over UDP. Each
// datagram carries one address pattern (for example "/getStatus") and an
// ordered list of typed arguments. There is no framing beyond the datagram
// itself and no acknowledgment layer.
//
// # Argument Types
//
// The firmware understands only three argument tags:
//   - int32 ('i'): motor IDs, register values, booleans (0 or 1)
//   - float32 ('f'): speeds, thresholds, servo gains
//   - string ('s'): error text, firmware names
//
// Encode normalizes Go integer, float and bool values onto these tags so
// callers may build messages from natural Go types. Decode flattens OSC
// bundles into their contained messages; the boards never send bundles, but
// accepting them keeps the codec total.
package wire
