package wire

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/hypebeast/go-osc/osc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeNormalizesArguments(t *testing.T) {
	data, err := Encode(NewMessage("/setKval", 1, int64(16), uint8(32), true, 2.5))
	require.NoError(t, err)

	msgs, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	assert.Equal(t, "/setKval", msgs[0].Address)
	assert.Equal(t, []any{int32(1), int32(16), int32(32), int32(1), float32(2.5)}, msgs[0].Args)
}

func TestEncodeFalseIsZero(t *testing.T) {
	data, err := Encode(NewMessage("/enableBusyReport", 1, false))
	require.NoError(t, err)

	msgs, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []any{int32(1), int32(0)}, msgs[0].Args)
}

func TestEncodeStrings(t *testing.T) {
	data, err := Encode(NewMessage("/error/command", "MotorIdNotMatch", int32(200)))
	require.NoError(t, err)

	msgs, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []any{"MotorIdNotMatch", int32(200)}, msgs[0].Args)
}

func TestEncodeRejectsEmptyAddress(t *testing.T) {
	_, err := Encode(Message{})
	if !errors.Is(err, ErrEmptyAddress) {
		t.Errorf("got %v, want ErrEmptyAddress", err)
	}
}

func TestEncodeRejectsUnsupportedType(t *testing.T) {
	_, err := Encode(NewMessage("/setPosition", 1, struct{}{}))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("got %v, want ErrUnsupportedType", err)
	}
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		arg  any
	}{
		{"int above", math.MaxInt32 + 1},
		{"int below", math.MinInt32 - 1},
		{"int64", int64(1) << 40},
		{"uint32", uint32(math.MaxUint32)},
		{"float64", 1e300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(NewMessage("/setPosition", 1, tt.arg))
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("got %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestEncodeInt32Limits(t *testing.T) {
	data, err := Encode(NewMessage("/setPosition", math.MaxInt32, int64(math.MinInt32)))
	require.NoError(t, err)

	msgs, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []any{int32(math.MaxInt32), int32(math.MinInt32)}, msgs[0].Args)
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode(nil)
	if !errors.Is(err, ErrEmptyDatagram) {
		t.Errorf("got %v, want ErrEmptyDatagram", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte{0xff, 0x00, 0x01})
	assert.Error(t, err)
}

func TestDecodeFlattensBundles(t *testing.T) {
	bundle := osc.NewBundle(time.Now())
	require.NoError(t, bundle.Append(osc.NewMessage("/busy", int32(1), int32(1))))
	require.NoError(t, bundle.Append(osc.NewMessage("/busy", int32(2), int32(0))))
	data, err := bundle.MarshalBinary()
	require.NoError(t, err)

	msgs, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, []any{int32(1), int32(1)}, msgs[0].Args)
	assert.Equal(t, []any{int32(2), int32(0)}, msgs[1].Args)
}

func TestMessageString(t *testing.T) {
	tests := []struct {
		msg  Message
		want string
	}{
		{NewMessage("/getVersion"), "/getVersion"},
		{NewMessage("/setKval", 1, 16, 32, 32, 32), "/setKval 1 16 32 32 32"},
		{NewMessage("/enableBusyReport", 255, true), "/enableBusyReport 255 1"},
		{NewMessage("/setMaxSpeed", 3, float32(620.5)), "/setMaxSpeed 3 620.5"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.msg.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
