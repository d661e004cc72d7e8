// Package catalog is the schema of the STEP400/STEP800 OSC protocol.
//
// Outbound commands are plain data structs. Each knows its wire address and
// argument order and nothing else; building a command never touches the
// network:
//
//	msg := catalog.Message(catalog.GetMicrostepMode{MotorID: 1})
//	// msg.Address == "/getMicrostepMode", msg.Args == []any{1}
//
// Commands the board answers implement Query. Commands that switch on an
// automatic report implement Reporter so a session can subscribe callbacks
// for the report kinds as a side effect of sending.
//
// Inbound messages decode through a static address table into typed
// Response values. Every field has an explicit decoder; a message whose
// address is unknown or whose arguments do not fit the declared layout
// yields a *ParseError carrying the raw message.
//
// Board-reported failures decode to *CommandError and *OSCError, which are
// both Responses and errors.
//
// Most of the catalog is generated from catalog.yaml by step-catgen.
package catalog

//go:generate go run ../../cmd/step-catgen -catalog catalog.yaml -output .
