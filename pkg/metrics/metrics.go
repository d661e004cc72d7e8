// Package metrics exposes Prometheus collectors for device sessions.
//
// Collectors live in the default registry and are registered once on first
// use. A Collector binds the device label; a nil *Collector records nothing,
// so callers never need to guard their calls.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Get outcomes used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeTimeout  = "timeout"
	OutcomeError    = "error"
	OutcomeUnbound  = "unbound"
	OutcomeCanceled = "canceled"
)

var (
	registerOnce sync.Once

	datagramsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stepseries",
			Subsystem: "transport",
			Name:      "datagrams_sent_total",
			Help:      "Datagrams sent to boards.",
		},
		[]string{"device"},
	)
	datagramsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stepseries",
			Subsystem: "transport",
			Name:      "datagrams_received_total",
			Help:      "Datagrams received from boards.",
		},
		[]string{"device"},
	)
	bytesTransferred = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stepseries",
			Subsystem: "transport",
			Name:      "bytes_total",
			Help:      "Datagram payload bytes by direction.",
		},
		[]string{"device", "direction"},
	)
	parseErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stepseries",
			Subsystem: "session",
			Name:      "parse_errors_total",
			Help:      "Inbound datagrams that did not decode against the catalog.",
		},
		[]string{"device"},
	)
	protocolErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stepseries",
			Subsystem: "session",
			Name:      "protocol_errors_total",
			Help:      "Error reports received from boards.",
		},
		[]string{"device", "kind"},
	)
	getRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stepseries",
			Subsystem: "session",
			Name:      "get_requests_total",
			Help:      "Completed Get calls by outcome.",
		},
		[]string{"device", "outcome"},
	)
	getDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stepseries",
			Subsystem: "session",
			Name:      "get_duration_seconds",
			Help:      "Get latency from send to outcome in seconds.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2, 5},
		},
		[]string{"device", "outcome"},
	)
	callbackBacklog = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stepseries",
			Subsystem: "session",
			Name:      "callback_backlog_warnings_total",
			Help:      "Times the callback backlog reached the warning threshold.",
		},
		[]string{"device"},
	)
	boundDevices = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stepseries",
			Subsystem: "connection",
			Name:      "bound_devices",
			Help:      "Devices currently bound to a transport.",
		},
	)
)

// RegisterMetrics registers every collector with the default registry.
// It is safe to call repeatedly.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			datagramsSent, datagramsReceived, bytesTransferred,
			parseErrors, protocolErrors,
			getRequests, getDuration,
			callbackBacklog, boundDevices,
		)
	})
}

// Collector records metrics for one device.
type Collector struct {
	device string
}

// NewCollector returns a collector labelled with device.
func NewCollector(device string) *Collector {
	RegisterMetrics()
	return &Collector{device: device}
}

// Device returns the device label.
func (c *Collector) Device() string {
	if c == nil {
		return ""
	}
	return c.device
}

// RecordSend counts one outbound datagram of n bytes.
func (c *Collector) RecordSend(n int) {
	if c == nil {
		return
	}
	datagramsSent.WithLabelValues(c.device).Inc()
	bytesTransferred.WithLabelValues(c.device, "out").Add(float64(n))
}

// RecordReceive counts one inbound datagram of n bytes.
func (c *Collector) RecordReceive(n int) {
	if c == nil {
		return
	}
	datagramsReceived.WithLabelValues(c.device).Inc()
	bytesTransferred.WithLabelValues(c.device, "in").Add(float64(n))
}

// RecordParseError counts one undecodable message.
func (c *Collector) RecordParseError() {
	if c == nil {
		return
	}
	parseErrors.WithLabelValues(c.device).Inc()
}

// RecordProtocolError counts one board error report of the given kind.
func (c *Collector) RecordProtocolError(kind string) {
	if c == nil {
		return
	}
	protocolErrors.WithLabelValues(c.device, kind).Inc()
}

// RecordGet counts a finished Get and observes its latency.
func (c *Collector) RecordGet(outcome string, d time.Duration) {
	if c == nil {
		return
	}
	getRequests.WithLabelValues(c.device, outcome).Inc()
	getDuration.WithLabelValues(c.device, outcome).Observe(d.Seconds())
}

// RecordCallbackBacklog counts one callback backlog warning.
func (c *Collector) RecordCallbackBacklog() {
	if c == nil {
		return
	}
	callbackBacklog.WithLabelValues(c.device).Inc()
}

// SetBoundDevices reports the number of bound devices.
func SetBoundDevices(n int) {
	RegisterMetrics()
	boundDevices.Set(float64(n))
}
