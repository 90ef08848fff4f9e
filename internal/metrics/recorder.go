// Package metrics records generation counters with the Prometheus client and
// exports them in the text exposition format, suitable for the node_exporter
// textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/fibmenu/internal/fibonacci"
)

const namespace = "fibmenu"

// Recorder owns a private Prometheus registry, so several recorders (one per
// test, for instance) never collide on registration.
type Recorder struct {
	registry *prometheus.Registry

	runs     *prometheus.CounterVec
	rejected *prometheus.CounterVec
	terms    prometheus.Counter
	clamped  prometheus.Counter
	lastTerm prometheus.Gauge
	duration prometheus.Histogram
}

// NewRecorder creates a Recorder with the generation metrics and the Go
// runtime collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed generation runs by mode.",
		}, []string{"mode"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_inputs_total",
			Help:      "Inputs rejected before generation, by field.",
		}, []string{"field"}),
		terms: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "terms_emitted_total",
			Help:      "Sequence terms emitted across all runs.",
		}),
		clamped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clamped_requests_total",
			Help:      "Term counts lowered to the int64 limit.",
		}),
		lastTerm: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_term",
			Help:      "Final term of the most recent run.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of generation runs, output included.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}

	r.registry.MustRegister(
		r.runs, r.rejected, r.terms, r.clamped, r.lastTerm, r.duration,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveRun records a completed run.
func (r *Recorder) ObserveRun(res fibonacci.Result, elapsed time.Duration) {
	r.runs.WithLabelValues(res.Request.Mode.String()).Inc()
	r.terms.Add(float64(res.Stats.Count))
	r.lastTerm.Set(float64(res.Stats.Last))
	r.duration.Observe(elapsed.Seconds())
	if res.Clamped {
		r.clamped.Inc()
	}
}

// ObserveRejected records an input rejected before generation.
func (r *Recorder) ObserveRejected(field string) {
	r.rejected.WithLabelValues(field).Inc()
}

// Gatherer exposes the registry for export or inspection.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the registry to path in the text exposition format.
// The file is written atomically (temp file + rename).
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
