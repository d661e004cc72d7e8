package wire

import (
	"errors"
	"fmt"
	"math"

	"github.com/hypebeast/go-osc/osc"
)

// MaxDatagramSize bounds the receive buffer. STEP-series replies stay well
// below one Ethernet MTU.
const MaxDatagramSize = 1536

// Codec errors.
var (
	ErrEmptyAddress    = errors.New("empty OSC address")
	ErrUnsupportedType = errors.New("unsupported argument type")
	ErrOutOfRange      = errors.New("argument out of range")
	ErrEmptyDatagram   = errors.New("empty datagram")
	ErrNoMessages      = errors.New("datagram carries no messages")
)

// Encode serializes m into a single OSC datagram.
func Encode(m Message) ([]byte, error) {
	if m.Address == "" {
		return nil, ErrEmptyAddress
	}
	msg := osc.NewMessage(m.Address)
	for i, arg := range m.Args {
		v, err := normalize(arg)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", m.Address, i, err)
		}
		msg.Append(v)
	}
	data, err := msg.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", m.Address, err)
	}
	return data, nil
}

// Decode parses a datagram into the messages it carries. Bundles are
// flattened depth-first in their declared order.
func Decode(data []byte) ([]Message, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDatagram
	}
	packet, err := osc.ParsePacket(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse packet: %w", err)
	}
	var out []Message
	flatten(packet, &out)
	if len(out) == 0 {
		return nil, ErrNoMessages
	}
	return out, nil
}

func flatten(p osc.Packet, out *[]Message) {
	switch v := p.(type) {
	case *osc.Message:
		args := make([]any, len(v.Arguments))
		copy(args, v.Arguments)
		*out = append(*out, Message{Address: v.Address, Args: args})
	case *osc.Bundle:
		for _, m := range v.Messages {
			flatten(m, out)
		}
		for _, b := range v.Bundles {
			flatten(b, out)
		}
	}
}

// normalize maps a Go value onto the tags the firmware accepts.
func normalize(arg any) (any, error) {
	switch v := arg.(type) {
	case int32, float32, string:
		return v, nil
	case bool:
		if v {
			return int32(1), nil
		}
		return int32(0), nil
	case int:
		return toInt32(int64(v))
	case int8:
		return int32(v), nil
	case int16:
		return int32(v), nil
	case int64:
		return toInt32(v)
	case uint8:
		return int32(v), nil
	case uint16:
		return int32(v), nil
	case uint32:
		return toInt32(int64(v))
	case float64:
		if math.Abs(v) > math.MaxFloat32 && !math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %g", ErrOutOfRange, v)
		}
		return float32(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, arg)
	}
}

func toInt32(v int64) (any, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return int32(v), nil
}
