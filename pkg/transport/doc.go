// Package transport provides the UDP binding between a device session and a
// STEP-series board.
//
// A binding owns two sockets:
//   - a send socket connected to the board's address (board port 50000 + ID)
//   - a listen socket on the host port the board reports to (50100 + ID)
//
// Every datagram carries one OSC message or bundle. There is no framing, no
// acknowledgement and no retransmission: delivery and ordering are best
// effort, and loss surfaces as a Get timeout in the session layer.
//
// # Receive path
//
// Serve runs the receive loop on the calling goroutine. Each datagram is
// decoded with pkg/wire, then each message with pkg/catalog, and handed to
// the Handler in arrival order. Messages that fail either step are delivered
// as *catalog.ParseError so the session can observe them.
//
// # Send pacing
//
// Boards drop datagrams that arrive in tight bursts. UDPConfig.SendRate and
// SendBurst enable a token bucket that Send waits on.
package transport
