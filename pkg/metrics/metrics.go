// Package metrics records how long each puzzle takes to solve and how often
// it fails. Metrics live on a private registry so a single CLI run can dump
// them to a node_exporter textfile without a listening server.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Solve holds the collectors updated by the runner.
type Solve struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewSolve creates the solve collectors and registers them on a fresh registry.
func NewSolve() *Solve {
	s := &Solve{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aoc",
			Name:      "solve_duration_seconds",
			Help:      "Time spent parsing and solving one day's puzzle.",
			Buckets:   DefaultBuckets,
		}, []string{"day"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aoc",
			Name:      "solve_failures_total",
			Help:      "Number of solves that ended with an error.",
		}, []string{"day"}),
	}
	s.registry.MustRegister(s.duration, s.failures)

	return s
}

// Observe records one solve of day that took d and ended with err.
func (s *Solve) Observe(day int, d time.Duration, err error) {
	label := strconv.Itoa(day)
	s.duration.WithLabelValues(label).Observe(d.Seconds())
	if err != nil {
		s.failures.WithLabelValues(label).Inc()
	}
}

// Registry exposes the underlying registry, e.g. for tests.
func (s *Solve) Registry() *prometheus.Registry {
	return s.registry
}

// WriteTextfile writes all collected metrics to path in the Prometheus text
// exposition format.
func (s *Solve) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, s.registry); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}
