package hxajax

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus counters for emitted markup. It is safe for
// concurrent use; a nil *Metrics records nothing.
type Metrics struct {
	elementsTotal *prometheus.CounterVec
	scriptsTotal  *prometheus.CounterVec
}

// NewMetrics creates collectors on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates collectors on the supplied registerer.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	return &Metrics{
		elementsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "hxajax_elements_total",
				Help: "Total number of asynchronous links and forms compiled",
			},
			[]string{"element", "compiler"},
		),
		scriptsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "hxajax_script_tags_total",
				Help: "Bootstrap script tag decisions by outcome (local, cdn, suppressed)",
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) observeElement(element, compiler string) {
	if m == nil {
		return
	}
	m.elementsTotal.WithLabelValues(element, compiler).Inc()
}

func (m *Metrics) observeScript(outcome string) {
	if m == nil {
		return
	}
	m.scriptsTotal.WithLabelValues(outcome).Inc()
}
