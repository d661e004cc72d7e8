package session

import (
	"log/slog"
	"time"

	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/log"
	"github.com/stepseries/stepseries-go/pkg/metrics"
)

// DefaultTimeout is the Get deadline when none is given.
const DefaultTimeout = 2 * time.Second

// DefaultDispatchQueue is the callback backlog that triggers a warning.
const DefaultDispatchQueue = 256

// Config configures a Session.
type Config struct {
	// Model selects the unit count and the unsupported-command filter.
	Model board.Model

	// Timeout is the default Get deadline (default: DefaultTimeout).
	Timeout time.Duration

	// FailFast rejects a Get while another is in flight instead of
	// queueing it.
	FailFast bool

	// DispatchQueue is the number of messages waiting for callbacks at
	// which the session warns that callbacks fall behind. Messages are
	// never dropped (default: DefaultDispatchQueue).
	DispatchQueue int

	// Logger receives operational logs. Nil disables them.
	Logger *slog.Logger

	// Trace receives protocol trace events. Nil disables tracing.
	Trace log.Logger

	// Metrics records Get outcomes and error reports. Nil disables them.
	Metrics *metrics.Collector
}

// DefaultConfig returns the default configuration for model.
func DefaultConfig(model board.Model) Config {
	return Config{
		Model:         model,
		Timeout:       DefaultTimeout,
		DispatchQueue: DefaultDispatchQueue,
	}
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.DispatchQueue <= 0 {
		c.DispatchQueue = DefaultDispatchQueue
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	c.Trace = log.OrNoop(c.Trace)
}
