// Package session implements the per-device session: the Get/Set API, the
// correlator that matches inbound messages to the one in-flight Get, and the
// callback registry that fans every inbound message out to subscribers.
//
// # Correlation
//
// At most one Get is in flight per session. A Get installs a pending request
// naming the expected reply address (the query address without "/get",
// lowercased) and the number of replies to collect: one, or the board's unit
// count when the query targets board.BroadcastMotorID. The receive path
// completes the request when enough replies arrived, or fails it when a
// board error report or an undecodable datagram arrives first.
//
// Concurrent Get calls queue behind the one in flight. Config.FailFast makes
// them fail with ErrRequestInProgress instead.
//
// # Callbacks
//
// Every inbound message, including replies consumed by a Get, is delivered
// to the callbacks registered for its kind and to wildcard (catalog.Any)
// callbacks, in registration order. Callbacks run on a per-session dispatch
// goroutine, never on the receive path and never under a session lock, so a
// callback may call Get, Set, On or Off.
package session
