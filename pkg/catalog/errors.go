package catalog

import (
	"errors"
	"fmt"

	"github.com/stepseries/stepseries-go/pkg/wire"
)

// Decode errors.
var (
	ErrUnknownAddress    = errors.New("no response matches this address")
	ErrMissingArgument   = errors.New("missing argument")
	ErrArgumentType      = errors.New("argument has wrong type")
	ErrTrailingArguments = errors.New("unexpected trailing arguments")
)

// ParseError reports an inbound datagram that could not be decoded. It is
// also a Response so wildcard callbacks observe decode failures.
type ParseError struct {
	// Data is the raw datagram when the failure happened below the OSC
	// layer. Nil when the datagram parsed but did not fit the catalog.
	Data []byte

	// Raw is the undecoded message, when OSC parsing succeeded.
	Raw wire.Message

	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	if e.Raw.Address != "" {
		return fmt.Sprintf("parse %q: %v", e.Raw.String(), e.Err)
	}
	return fmt.Sprintf("parse %d-byte datagram: %v", len(e.Data), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Kind returns KindParseError.
func (e *ParseError) Kind() Kind { return KindParseError }

// Address returns the address of the undecoded message, if known.
func (e *ParseError) Address() string { return e.Raw.Address }

// CommandError is the board's /error/command report: a well-formed command
// the board could not execute, such as an out-of-range motor ID.
type CommandError struct {
	Text       string
	MotorID    int
	HasMotorID bool
}

func (e *CommandError) Error() string {
	if e.HasMotorID {
		return fmt.Sprintf("board command error: %s (motor %d)", e.Text, e.MotorID)
	}
	return "board command error: " + e.Text
}

// Kind returns KindErrorCommand.
func (*CommandError) Kind() Kind { return KindErrorCommand }

// Address returns "/error/command".
func (*CommandError) Address() string { return "/error/command" }

// Motor returns the motor named in the report, if any.
func (e *CommandError) Motor() (int, bool) { return e.MotorID, e.HasMotorID }

// OSCError is the board's /error/osc report: a message the board could not
// parse at all.
type OSCError struct {
	Text       string
	MotorID    int
	HasMotorID bool
}

func (e *OSCError) Error() string {
	if e.HasMotorID {
		return fmt.Sprintf("board OSC error: %s (motor %d)", e.Text, e.MotorID)
	}
	return "board OSC error: " + e.Text
}

// Kind returns KindErrorOSC.
func (*OSCError) Kind() Kind { return KindErrorOSC }

// Address returns "/error/osc".
func (*OSCError) Address() string { return "/error/osc" }

// Motor returns the motor named in the report, if any.
func (e *OSCError) Motor() (int, bool) { return e.MotorID, e.HasMotorID }

func decodeErrorCommand(r *argReader) Response {
	var v CommandError
	v.Text = r.readString("errorText")
	v.MotorID, v.HasMotorID = r.optionalInt("motorID")
	return &v
}

func decodeErrorOSC(r *argReader) Response {
	var v OSCError
	v.Text = r.readString("errorText")
	v.MotorID, v.HasMotorID = r.optionalInt("motorID")
	return &v
}

// IsProtocolError reports whether r is a board-reported error.
func IsProtocolError(r Response) bool {
	switch r.(type) {
	case *CommandError, *OSCError:
		return true
	}
	return false
}

// UnknownCommandError is returned by Build for a name not in the catalog.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// BuildError wraps an argument failure in Build.
type BuildError struct {
	Command string
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build %s: %v", e.Command, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Compile-time interface satisfaction checks.
var (
	_ Response    = (*ParseError)(nil)
	_ error       = (*ParseError)(nil)
	_ Response    = (*CommandError)(nil)
	_ error       = (*CommandError)(nil)
	_ MotorScoped = (*CommandError)(nil)
	_ Response    = (*OSCError)(nil)
	_ error       = (*OSCError)(nil)
	_ MotorScoped = (*OSCError)(nil)
)
