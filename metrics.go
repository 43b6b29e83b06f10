package diskcache

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the collectors shared by every namespace of a registry.
type metrics struct {
	submitted *prometheus.CounterVec
	completed *prometheus.CounterVec
	failed    *prometheus.CounterVec
	dropped   *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	depth     *prometheus.GaugeVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	labels := []string{"category"}
	m := &metrics{
		submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diskcache_store_submitted_total",
			Help: "Store requests accepted onto a namespace queue.",
		}, labels),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diskcache_store_completed_total",
			Help: "Store requests written to disk.",
		}, labels),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diskcache_store_failed_total",
			Help: "Store requests that failed to encode or write.",
		}, labels),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diskcache_store_dropped_total",
			Help: "Store requests rejected or producing no bytes.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "diskcache_write_duration_seconds",
			Help:    "Duration of encode and write on the namespace worker.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
		}, labels),
		depth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "diskcache_queue_depth",
			Help: "Jobs waiting on a namespace worker.",
		}, labels),
	}
	if reg == nil {
		return m
	}
	m.submitted = register(reg, m.submitted)
	m.completed = register(reg, m.completed)
	m.failed = register(reg, m.failed)
	m.dropped = register(reg, m.dropped)
	m.duration = register(reg, m.duration)
	m.depth = register(reg, m.depth)
	return m
}

// register adds c to reg, reusing an identical collector that is already there.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

// namespaceMetrics are the collectors curried with one category label.
type namespaceMetrics struct {
	submitted prometheus.Counter
	completed prometheus.Counter
	failed    prometheus.Counter
	dropped   prometheus.Counter
	duration  prometheus.Observer
	depth     prometheus.Gauge
}

func (m *metrics) forCategory(c Category) namespaceMetrics {
	tag := c.String()
	return namespaceMetrics{
		submitted: m.submitted.WithLabelValues(tag),
		completed: m.completed.WithLabelValues(tag),
		failed:    m.failed.WithLabelValues(tag),
		dropped:   m.dropped.WithLabelValues(tag),
		duration:  m.duration.WithLabelValues(tag),
		depth:     m.depth.WithLabelValues(tag),
	}
}
