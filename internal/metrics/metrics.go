package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector records engine generations as Prometheus metrics on a private
// registry. It implements core.Observer.
type Collector struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	changes     *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// New creates a Collector with its metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settle_generations_total",
				Help: "Generations evolved, by automaton.",
			},
			[]string{"automaton"},
		),
		changes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settle_changes_total",
				Help: "Cells or tiles changed, by automaton.",
			},
			[]string{"automaton"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settle_generation_seconds",
				Help:    "Wall time of one read and write phase.",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"automaton"},
		),
	}
	c.registry.MustRegister(c.generations, c.changes, c.duration)
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveGeneration implements core.Observer.
func (c *Collector) ObserveGeneration(automaton string, _ int, changes int, elapsed time.Duration) {
	c.generations.WithLabelValues(automaton).Inc()
	c.changes.WithLabelValues(automaton).Add(float64(changes))
	c.duration.WithLabelValues(automaton).Observe(elapsed.Seconds())
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
