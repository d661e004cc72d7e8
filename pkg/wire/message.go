package wire

import (
	"fmt"
	"strings"
)

// Message is one OSC message: an address plus an ordered argument list.
// A Message is treated as immutable once built.
type Message struct {
	Address string
	Args    []any
}

// NewMessage builds a message for address with the given arguments.
func NewMessage(address string, args ...any) Message {
	return Message{Address: address, Args: args}
}

// String renders the message the way the board documentation writes it,
// for example "/setKval 1 16 32 32 32".
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Address)
	for _, arg := range m.Args {
		b.WriteByte(' ')
		switch v := arg.(type) {
		case bool:
			if v {
				b.WriteString("1")
			} else {
				b.WriteString("0")
			}
		case string:
			b.WriteString(v)
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}
