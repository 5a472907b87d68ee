package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors for the engine's memo tables. It implements
// cache.Observer.
type Metrics struct {
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
	CacheSize   *prometheus.GaugeVec
}

// New registers the collectors with reg. A nil reg uses the default
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chronos_memo_hits_total",
			Help: "Total number of memo table lookups answered from the table",
		}, []string{"table"}),
		CacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chronos_memo_misses_total",
			Help: "Total number of memo table lookups that required a computation",
		}, []string{"table"}),
		CacheSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chronos_memo_entries",
			Help: "Current number of entries per memo table",
		}, []string{"table"}),
	}
}

func (m *Metrics) Hit(table string) {
	m.CacheHits.WithLabelValues(table).Inc()
}

func (m *Metrics) Miss(table string) {
	m.CacheMisses.WithLabelValues(table).Inc()
}

func (m *Metrics) Filled(table string, size int) {
	m.CacheSize.WithLabelValues(table).Set(float64(size))
}
