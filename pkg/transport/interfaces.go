package transport

import (
	"context"
	"net"

	"github.com/stepseries/stepseries-go/pkg/catalog"
	"github.com/stepseries/stepseries-go/pkg/wire"
)

// Handler receives decoded inbound messages. HandleInbound is called from a
// single goroutine per transport, in arrival order.
type Handler interface {
	HandleInbound(resp catalog.Response)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(resp catalog.Response)

// HandleInbound calls f(resp).
func (f HandlerFunc) HandleInbound(resp catalog.Response) { f(resp) }

// Transport is the binding between one session and one board.
// Implemented by UDPTransport.
type Transport interface {
	// Send encodes msg and transmits it as one datagram.
	Send(ctx context.Context, msg wire.Message) error

	// Serve runs the receive loop, delivering messages to h until Close is
	// called or ctx ends. It returns nil after Close.
	Serve(ctx context.Context, h Handler) error

	// LocalAddr returns the listen address.
	LocalAddr() net.Addr

	// RemoteAddr returns the board address.
	RemoteAddr() net.Addr

	// Close releases both sockets and stops Serve.
	Close() error
}

// Compile-time interface satisfaction checks.
var (
	_ Transport = (*UDPTransport)(nil)
	_ Handler   = HandlerFunc(nil)
)
