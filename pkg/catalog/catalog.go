package catalog

import (
	"sort"
	"strings"

	"github.com/stepseries/stepseries-go/pkg/wire"
)

// Kind tags a decoded response type.
type Kind string

// Any is the wildcard kind. Callbacks registered for Any see every inbound
// message, including ParseErrors.
const Any Kind = "*"

// KindParseError tags a *ParseError delivered to wildcard callbacks.
const KindParseError Kind = "ParseError"

// queryPrefix starts the address of every command the board answers.
const queryPrefix = "/get"

// Command is an outbound message builder.
type Command interface {
	// Name is the catalog name, for example "GetMicrostepMode".
	Name() string
	// Address is the OSC address, for example "/getMicrostepMode".
	Address() string
	// Args are the OSC arguments in wire order.
	Args() []any
}

// Query is a Command the board answers with a reply message.
type Query interface {
	Command

	// Target returns the motor the query addresses. ok is false for
	// board-wide queries such as GetVersion.
	Target() (motorID int, ok bool)

	// ReplyKind is the kind of the expected reply.
	ReplyKind() Kind
}

// Reporter is implemented by commands that enable automatic reports.
type Reporter interface {
	Command
	ReportKinds() []Kind
}

// Response is a decoded inbound message.
type Response interface {
	Kind() Kind
	Address() string
}

// MotorScoped is implemented by responses that name the motor they
// describe. ok is false when the board omitted the motor ID.
type MotorScoped interface {
	Motor() (motorID int, ok bool)
}

// Message converts a command to its wire form.
func Message(c Command) wire.Message {
	return wire.NewMessage(c.Address(), c.Args()...)
}

// ReplyAddress derives the reply address for a query address: the "/get"
// prefix is stripped and the remainder lowercased, so "/getHiZ" yields
// "/hiz". ok is false when address is not a query.
func ReplyAddress(address string) (reply string, ok bool) {
	if !strings.HasPrefix(address, queryPrefix) || len(address) == len(queryPrefix) {
		return "", false
	}
	return "/" + strings.ToLower(address[len(queryPrefix):]), true
}

// MatchesReply reports whether r arrived at the reply address expected.
func MatchesReply(expected string, r Response) bool {
	return strings.ToLower(r.Address()) == expected
}

// MotorOf returns the motor a response names, if any.
func MotorOf(r Response) (int, bool) {
	if m, ok := r.(MotorScoped); ok {
		return m.Motor()
	}
	return 0, false
}

// ParseKind resolves a kind name case-insensitively. "*" and "any" yield Any.
func ParseKind(name string) (Kind, bool) {
	if name == string(Any) || strings.EqualFold(name, "any") {
		return Any, true
	}
	for _, k := range knownKinds {
		if strings.EqualFold(string(k), name) {
			return k, true
		}
	}
	return "", false
}

// Kinds returns every response kind in the catalog.
func Kinds() []Kind {
	out := make([]Kind, len(knownKinds))
	copy(out, knownKinds)
	return out
}

// Build constructs a command by catalog name from textual arguments, as
// typed at a shell: Build("SetKval", "1", "16", "32", "32", "32").
func Build(name string, args ...string) (Command, error) {
	build, ok := commandBuilders[name]
	if !ok {
		for n, b := range commandBuilders {
			if strings.EqualFold(n, name) {
				build, ok = b, true
				break
			}
		}
	}
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}
	p := newArgParser(args)
	cmd := build(p)
	if err := p.finish(); err != nil {
		return nil, &BuildError{Command: name, Err: err}
	}
	return cmd, nil
}

// CommandNames returns every buildable command name, sorted.
func CommandNames() []string {
	names := make([]string, 0, len(commandBuilders))
	for n := range commandBuilders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// decodeFunc reads one response out of the argument list.
type decodeFunc func(r *argReader) Response

// Decode converts an inbound message to its typed response. Failures are
// returned as *ParseError.
func Decode(m wire.Message) (Response, error) {
	dec, ok := decoders[m.Address]
	if !ok {
		return nil, &ParseError{Raw: m, Err: ErrUnknownAddress}
	}
	r := newArgReader(m.Args)
	resp := dec(r)
	if err := r.finish(); err != nil {
		return nil, &ParseError{Raw: m, Err: err}
	}
	return resp, nil
}
