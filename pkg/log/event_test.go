package log

import (
	"bytes"
	"testing"
)

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{DirectionIn.String(), "IN"},
		{DirectionOut.String(), "OUT"},
		{Direction(9).String(), "UNKNOWN"},
		{LayerTransport.String(), "TRANSPORT"},
		{LayerWire.String(), "WIRE"},
		{LayerSession.String(), "SESSION"},
		{CategoryCorrelation.String(), "CORRELATION"},
		{CategoryError.String(), "ERROR"},
		{MessageTypeQuery.String(), "QUERY"},
		{MessageTypeReport.String(), "REPORT"},
		{StateEntityHandshake.String(), "HANDSHAKE"},
		{OutcomeLate.String(), "LATE"},
		{OutcomeTimeout.String(), "TIMEOUT"},
		{Outcome(42).String(), "UNKNOWN"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestNewFrameEventTruncates(t *testing.T) {
	small := NewFrameEvent([]byte{1, 2, 3})
	if small.Size != 3 || small.Truncated || !bytes.Equal(small.Data, []byte{1, 2, 3}) {
		t.Errorf("small frame: got %+v", small)
	}

	big := NewFrameEvent(make([]byte, MaxFrameCapture+10))
	if big.Size != MaxFrameCapture+10 {
		t.Errorf("Size: got %d", big.Size)
	}
	if !big.Truncated || len(big.Data) != MaxFrameCapture {
		t.Errorf("big frame: truncated=%v len=%d", big.Truncated, len(big.Data))
	}
}

func TestNewFrameEventCopies(t *testing.T) {
	buf := []byte{1, 2, 3}
	fe := NewFrameEvent(buf)
	buf[0] = 9
	if fe.Data[0] != 1 {
		t.Error("FrameEvent aliases the receive buffer")
	}
}
