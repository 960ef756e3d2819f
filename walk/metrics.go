// SPDX-License-Identifier: MIT

package walk

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics groups the walker's collectors. A nil *metrics is a valid no-op.
type metrics struct {
	walks       prometheus.Counter
	truncated   prometheus.Counter
	walkLength  prometheus.Histogram
	runDuration prometheus.Histogram
}

// newMetrics registers the walker collectors with reg. Collectors already
// registered by another walker on the same registry are reused.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}

	walks, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "metawalk_walks_total",
		Help: "Total number of walks generated",
	}))
	if err != nil {
		return nil, err
	}
	truncated, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "metawalk_walks_truncated_total",
		Help: "Walks that ended before the requested length for lack of a label-matching neighbor",
	}))
	if err != nil {
		return nil, err
	}
	walkLength, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "metawalk_walk_length",
		Help:    "Number of nodes per generated walk",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}))
	if err != nil {
		return nil, err
	}
	runDuration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "metawalk_run_duration_seconds",
		Help:    "Duration of Run calls in seconds",
		Buckets: prometheus.DefBuckets,
	}))
	if err != nil {
		return nil, err
	}

	return &metrics{walks: walks, truncated: truncated, walkLength: walkLength, runDuration: runDuration}, nil
}

// register adds c to reg, returning the existing collector on a duplicate.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}

	return c, nil
}

// observeRun records one completed run.
func (m *metrics) observeRun(walks []Walk, length int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runDuration.Observe(elapsed.Seconds())
	m.walks.Add(float64(len(walks)))
	for _, w := range walks {
		m.walkLength.Observe(float64(len(w)))
		if len(w) < length {
			m.truncated.Inc()
		}
	}
}
