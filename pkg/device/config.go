package device

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/log"
	"github.com/stepseries/stepseries-go/pkg/session"
)

// Factory addressing. A board with DIP-switch ID n listens on
// 10.0.0.(100+n):50000 and reports to port 50100+n.
const (
	DefaultAddress       = "10.0.0.100"
	DefaultPort          = 50000
	DefaultListenAddress = "0.0.0.0"
	DefaultListenPort    = 50100
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid device config")

// Config configures a Device.
type Config struct {
	// ID is the DIP-switch ID of the board.
	ID int

	// Address is the board IPv4 address before the ID offset.
	Address string

	// Port is the port the board listens on.
	Port int

	// ListenAddress is the local address reports arrive on.
	ListenAddress string

	// ListenPort is the local port before the ID offset.
	ListenPort int

	// AddIDToArgs offsets the last octet of Address and ListenPort by ID,
	// matching the board's default network settings.
	AddIDToArgs bool

	// Model selects STEP400 or STEP800.
	Model board.Model

	// RehandshakeOnBoot repeats the destination handshake whenever the
	// board announces a reboot.
	RehandshakeOnBoot bool

	// Timeout is the Get deadline and the wait per handshake attempt
	// (default: session.DefaultTimeout).
	Timeout time.Duration

	// FailFast rejects concurrent Gets instead of queueing them.
	FailFast bool

	// Logger receives operational logs. Nil disables them.
	Logger *slog.Logger

	// Trace receives protocol trace events. Nil disables tracing.
	Trace log.Logger

	// Metrics enables Prometheus collection for this device.
	Metrics bool
}

// DefaultConfig returns the factory configuration for the board with the
// given model and DIP-switch ID.
func DefaultConfig(model board.Model, id int) Config {
	return Config{
		ID:            id,
		Address:       DefaultAddress,
		Port:          DefaultPort,
		ListenAddress: DefaultListenAddress,
		ListenPort:    DefaultListenPort,
		AddIDToArgs:   true,
		Model:         model,
		Timeout:       session.DefaultTimeout,
	}
}

// Identity resolves the board and listen addresses, applying the ID offset
// when AddIDToArgs is set.
func (c Config) Identity() (session.Identity, error) {
	ip := net.ParseIP(c.Address).To4()
	if ip == nil {
		return session.Identity{}, fmt.Errorf("%w: address %q is not IPv4", ErrInvalidConfig, c.Address)
	}
	if c.ID < 0 {
		return session.Identity{}, fmt.Errorf("%w: negative id %d", ErrInvalidConfig, c.ID)
	}

	listenPort := c.ListenPort
	if c.AddIDToArgs {
		last := int(ip[3]) + c.ID
		if last > 255 {
			return session.Identity{}, fmt.Errorf("%w: id %d overflows last octet of %s", ErrInvalidConfig, c.ID, c.Address)
		}
		ip = net.IPv4(ip[0], ip[1], ip[2], byte(last)).To4()
		listenPort += c.ID
	}
	if err := checkPort("port", c.Port); err != nil {
		return session.Identity{}, err
	}
	if err := checkPort("listen port", listenPort); err != nil {
		return session.Identity{}, err
	}

	return session.Identity{
		Remote: net.JoinHostPort(ip.String(), strconv.Itoa(c.Port)),
		Listen: net.JoinHostPort(c.ListenAddress, strconv.Itoa(listenPort)),
	}, nil
}

func checkPort(name string, p int) error {
	if p < 0 || p > 65535 {
		return fmt.Errorf("%w: %s %d out of range", ErrInvalidConfig, name, p)
	}
	return nil
}
