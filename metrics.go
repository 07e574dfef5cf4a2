package culture

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsPrefix = "culture"

// Metrics holds the engine's Prometheus collectors. A nil registerer yields
// working but unregistered collectors.
type Metrics struct {
	lookups             *prometheus.CounterVec
	builds              *prometheus.CounterVec
	calendarFallbacks   *prometheus.CounterVec
	partialEnumerations *prometheus.CounterVec
	cachedRecords       *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricsPrefix + "_cache_lookups_total",
				Help: "Total number of cache lookups",
			},
			[]string{"cache", "result"},
		),
		builds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricsPrefix + "_record_builds_total",
				Help: "Total number of records built from the locale provider",
			},
			[]string{"cache"},
		),
		calendarFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricsPrefix + "_calendar_fallbacks_total",
				Help: "Total number of calendar substitutions applied",
			},
			[]string{"from", "to"},
		),
		partialEnumerations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricsPrefix + "_partial_enumerations_total",
				Help: "Total number of enumerations that stopped early on a provider failure",
			},
			[]string{"op"},
		),
		cachedRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricsPrefix + "_cached_records",
				Help: "Number of records currently held by each cache",
			},
			[]string{"cache"},
		),
	}
}

func (m *Metrics) lookup(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.lookups.WithLabelValues(cache, result).Inc()
}

func (m *Metrics) built(cache string) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(cache).Inc()
}

func (m *Metrics) fallback(from, to CalendarID) {
	if m == nil {
		return
	}
	m.calendarFallbacks.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) partial(op string) {
	if m == nil {
		return
	}
	m.partialEnumerations.WithLabelValues(op).Inc()
}

func (m *Metrics) size(cache string, n int) {
	if m == nil {
		return
	}
	m.cachedRecords.WithLabelValues(cache).Set(float64(n))
}
