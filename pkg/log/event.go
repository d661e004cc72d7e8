package log

import "time"

// Event is one protocol trace record. CBOR encoding uses integer keys.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the device session (UUID).
	SessionID string `cbor:"2,keyasint"`

	Direction Direction `cbor:"3,keyasint"`
	Layer     Layer     `cbor:"4,keyasint"`
	Category  Category  `cbor:"5,keyasint"`

	// Model is the board model name, for example "STEP400".
	Model string `cbor:"6,keyasint,omitempty"`

	// RemoteAddr is the board address (IP:port).
	RemoteAddr string `cbor:"7,keyasint,omitempty"`

	// DeviceID is the session's device identity.
	DeviceID string `cbor:"8,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"`
	Message     *MessageEvent     `cbor:"11,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"`
	Correlation *CorrelationEvent `cbor:"13,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn is board to host.
	DirectionIn Direction = 0
	// DirectionOut is host to board.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerTransport is the UDP layer (raw datagrams).
	LayerTransport Layer = 0
	// LayerWire is the OSC layer (decoded messages).
	LayerWire Layer = 1
	// LayerSession is the correlation and callback layer.
	LayerSession Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	case LayerSession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event.
type Category uint8

const (
	CategoryMessage     Category = 0
	CategoryCorrelation Category = 1
	CategoryState       Category = 2
	CategoryError       Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryCorrelation:
		return "CORRELATION"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures a raw datagram.
type FrameEvent struct {
	Size int `cbor:"1,keyasint"`

	// Data is the datagram (may be truncated).
	Data []byte `cbor:"2,keyasint,omitempty"`

	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// MaxFrameCapture bounds FrameEvent.Data.
const MaxFrameCapture = 256

// NewFrameEvent captures data, truncating to MaxFrameCapture.
func NewFrameEvent(data []byte) *FrameEvent {
	fe := &FrameEvent{Size: len(data)}
	if len(data) > MaxFrameCapture {
		fe.Data = append([]byte(nil), data[:MaxFrameCapture]...)
		fe.Truncated = true
	} else {
		fe.Data = append([]byte(nil), data...)
	}
	return fe
}

// MessageEvent captures a decoded OSC message.
type MessageEvent struct {
	Type MessageType `cbor:"1,keyasint"`

	// Address is the OSC address.
	Address string `cbor:"2,keyasint"`

	// Args are the OSC arguments.
	Args []any `cbor:"3,keyasint,omitempty"`

	// Command is the catalog name of an outbound command.
	Command string `cbor:"4,keyasint,omitempty"`

	// Kind is the catalog kind of an inbound response.
	Kind string `cbor:"5,keyasint,omitempty"`
}

// MessageType distinguishes outbound and inbound message roles.
type MessageType uint8

const (
	// MessageTypeCommand is a fire-and-forget command.
	MessageTypeCommand MessageType = 0
	// MessageTypeQuery is a command awaiting a reply.
	MessageTypeQuery MessageType = 1
	// MessageTypeReply answers a pending query.
	MessageTypeReply MessageType = 2
	// MessageTypeReport is any inbound message not consumed by a query.
	MessageTypeReport MessageType = 3
)

// String returns the message type name.
func (m MessageType) String() string {
	switch m {
	case MessageTypeCommand:
		return "COMMAND"
	case MessageTypeQuery:
		return "QUERY"
	case MessageTypeReply:
		return "REPLY"
	case MessageTypeReport:
		return "REPORT"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures binding and handshake lifecycle.
type StateChangeEvent struct {
	Entity   StateEntity `cbor:"1,keyasint"`
	OldState string      `cbor:"2,keyasint,omitempty"`
	NewState string      `cbor:"3,keyasint"`
	Reason   string      `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what changed state.
type StateEntity uint8

const (
	StateEntityBinding   StateEntity = 0
	StateEntitySession   StateEntity = 1
	StateEntityHandshake StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityBinding:
		return "BINDING"
	case StateEntitySession:
		return "SESSION"
	case StateEntityHandshake:
		return "HANDSHAKE"
	default:
		return "UNKNOWN"
	}
}

// CorrelationEvent captures the lifecycle of one query.
type CorrelationEvent struct {
	Outcome Outcome `cbor:"1,keyasint"`

	// Query is the address sent, for example "/getMicrostepMode".
	Query string `cbor:"2,keyasint"`

	// Reply is the expected reply address.
	Reply string `cbor:"3,keyasint,omitempty"`

	Expected int `cbor:"4,keyasint,omitempty"`
	Received int `cbor:"5,keyasint,omitempty"`

	// Duration from send to outcome (nanoseconds). Unset on OutcomeStarted.
	Duration *time.Duration `cbor:"6,keyasint,omitempty"`
}

// Outcome is the state a query reached.
type Outcome uint8

const (
	OutcomeStarted   Outcome = 0
	OutcomeCompleted Outcome = 1
	OutcomeTimeout   Outcome = 2
	OutcomeError     Outcome = 3
	OutcomeUnbound   Outcome = 4
	OutcomeCanceled  Outcome = 5
	// OutcomeLate marks a reply that arrived after its query gave up.
	OutcomeLate Outcome = 6
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeStarted:
		return "STARTED"
	case OutcomeCompleted:
		return "COMPLETED"
	case OutcomeTimeout:
		return "TIMEOUT"
	case OutcomeError:
		return "ERROR"
	case OutcomeUnbound:
		return "UNBOUND"
	case OutcomeCanceled:
		return "CANCELED"
	case OutcomeLate:
		return "LATE"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	Layer   Layer  `cbor:"1,keyasint"`
	Message string `cbor:"2,keyasint"`

	// Context describes what was being done, for example "decode".
	Context string `cbor:"3,keyasint,omitempty"`
}
