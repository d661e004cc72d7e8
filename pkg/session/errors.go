package session

import (
	"errors"
	"fmt"
	"time"
)

// Session errors.
var (
	ErrDeviceNotBound    = errors.New("device not bound")
	ErrRequestInProgress = errors.New("another get is in progress")
	ErrTimeout           = errors.New("timed out waiting for reply")
	ErrNotQuery          = errors.New("command is not a query")
	ErrNotReporter       = errors.New("command enables no reports")
	ErrUnexpectedReply   = errors.New("unexpected reply type")
)

// DeviceNotBoundError is returned when the session has no active transport,
// either because it was never registered or because it was unregistered.
type DeviceNotBoundError struct {
	Identity Identity
}

func (e *DeviceNotBoundError) Error() string {
	return fmt.Sprintf("device %s not bound", e.Identity)
}

// Unwrap returns ErrDeviceNotBound.
func (e *DeviceNotBoundError) Unwrap() error { return ErrDeviceNotBound }

// TimeoutError is returned by Get when the deadline passed before every
// expected reply arrived.
type TimeoutError struct {
	// Query is the address sent.
	Query string

	Expected int
	Received int
	After    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: no reply after %v (received %d of %d)", e.Query, e.After, e.Received, e.Expected)
}

// Unwrap returns ErrTimeout.
func (e *TimeoutError) Unwrap() error { return ErrTimeout }

// Timeout reports true, following the net.Error convention.
func (e *TimeoutError) Timeout() bool { return true }
