// Package metrics counts signal traffic and records step verdicts for a
// scenario run using Prometheus collectors on a private registry.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "cruisecheck"

// Collector holds the run's metrics. A nil Collector is safe to use;
// all methods are no-ops on nil receiver.
type Collector struct {
	registry     *prometheus.Registry
	signalWrites *prometheus.CounterVec
	signalReads  *prometheus.CounterVec
	pauseSeconds prometheus.Counter
	stepPassed   *prometheus.GaugeVec
	targetSpeed  prometheus.Gauge
}

// NewCollector creates a Collector registered on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		signalWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "signal_writes_total",
			Help:      "Total number of signal writes",
		}, []string{"signal"}),

		signalReads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "signal_reads_total",
			Help:      "Total number of signal reads",
		}, []string{"signal", "present"}),

		pauseSeconds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "pause_seconds_total",
			Help:      "Total time spent in settling pauses",
		}),

		stepPassed: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "step_passed",
			Help:      "1 if the scenario step passed, 0 if it failed",
		}, []string{"step"}),

		targetSpeed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "target_speed_kmh",
			Help:      "Vehicle speed drawn for the activation step",
		}),
	}
}

// Registry returns the registry the collectors live on.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// SignalWritten counts a write.
func (c *Collector) SignalWritten(name string, value int) {
	if c == nil {
		return
	}
	c.signalWrites.WithLabelValues(name).Inc()
}

// SignalRead counts a read, split by whether the signal was present.
func (c *Collector) SignalRead(name string, value int, present bool) {
	if c == nil {
		return
	}
	c.signalReads.WithLabelValues(name, strconv.FormatBool(present)).Inc()
}

// Pause adds a settling delay to the pause total.
func (c *Collector) Pause(d time.Duration) {
	if c == nil {
		return
	}
	c.pauseSeconds.Add(d.Seconds())
}

// StepVerdict records whether a step passed.
func (c *Collector) StepVerdict(step int, passed bool) {
	if c == nil {
		return
	}
	v := 0.0
	if passed {
		v = 1
	}
	c.stepPassed.WithLabelValues(strconv.Itoa(step)).Set(v)
}

// TargetSpeed records the drawn activation speed.
func (c *Collector) TargetSpeed(kmh int) {
	if c == nil {
		return
	}
	c.targetSpeed.Set(float64(kmh))
}

// WriteTextfile writes the registry in the Prometheus text format to path,
// suitable for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
