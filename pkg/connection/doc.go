// Package connection binds device sessions to their UDP transports.
//
// A Manager is the registry of bindings, keyed by session.Identity. Register
// opens the transport for a session and starts its receive loop; Unregister
// and ShutdownAll stop them. Sessions send through the Manager, so a session
// whose binding is gone gets a *session.DeviceNotBoundError rather than a
// socket error.
//
// There is no implicit process-wide Manager. Create one, pass it to each
// device, and call Close (or ShutdownAll) when done. Config.HandleSignals
// adds a safety net that shuts every binding down on SIGINT or SIGTERM.
//
// # Retry Strategy
//
// Backoff paces handshake retries:
//
//  1. Initial delay: 250 milliseconds
//  2. Exponential increase: 500ms, 1s, 2s, 4s
//  3. Maximum delay: 5 seconds
//  4. Reset on success
//
// Jitter spreads retries of boards that rebooted together:
//
//	actual_delay = base_delay + random(0, base_delay * 0.25)
package connection
