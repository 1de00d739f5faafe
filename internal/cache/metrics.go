package cache

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions *prometheus.CounterVec
	entries   prometheus.Gauge
}

// newMetrics создаёт коллекторы кэша и регистрирует их в reg (если он задан).
// Коллекторы создаются всегда, чтобы кэш не проверял их на nil.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "blog",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Number of cache lookups that returned a fresh value.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "blog",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Number of cache lookups that found nothing or a stale value.",
		}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blog",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Number of removed cache entries by reason.",
		}, []string{"reason"}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blog",
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Current number of cache entries.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.hits, m.misses, m.evictions, m.entries)
	}

	return m
}
