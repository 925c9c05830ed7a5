// Package metrics exposes Prometheus counters for registry traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts registry operations. A nil *Metrics is valid and records nothing.
type Metrics struct {
	lookupsTotal  *prometheus.CounterVec
	mutationTotal *prometheus.CounterVec
	roundingTotal *prometheus.CounterVec
	catalogSize   prometheus.Gauge
}

// New creates the collectors and registers them with registry when it is not nil.
func New(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		lookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_registry_lookups_total",
				Help: "Total number of currency lookups by namespace and result",
			},
			[]string{"namespace", "result"},
		),
		mutationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_registry_mutations_total",
				Help: "Total number of custom currency registrations and removals",
			},
			[]string{"operation", "result"},
		),
		roundingTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_registry_valuations_total",
				Help: "Total number of amounts rounded by rounding mode",
			},
			[]string{"mode"},
		),
		catalogSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "currency_registry_custom_currencies",
				Help: "Number of custom currencies in the catalog",
			},
		),
	}

	if registry != nil {
		registry.MustRegister(
			m.lookupsTotal,
			m.mutationTotal,
			m.roundingTotal,
			m.catalogSize,
		)
	}
	return m
}

// RecordLookup counts a lookup. Result is one of "hit", "miss", "ambiguous" or "invalid".
func (m *Metrics) RecordLookup(namespace, result string) {
	if m == nil {
		return
	}
	if namespace == "" {
		namespace = "any"
	}
	m.lookupsTotal.WithLabelValues(namespace, result).Inc()
}

func (m *Metrics) RecordMutation(operation, result string) {
	if m == nil {
		return
	}
	m.mutationTotal.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) RecordRounding(mode string) {
	if m == nil {
		return
	}
	m.roundingTotal.WithLabelValues(mode).Inc()
}

func (m *Metrics) SetCatalogSize(n int) {
	if m == nil {
		return
	}
	m.catalogSize.Set(float64(n))
}

// Lookups exposes the lookup counter for tests and dashboards.
func (m *Metrics) Lookups() *prometheus.CounterVec { return m.lookupsTotal }

func (m *Metrics) Mutations() *prometheus.CounterVec { return m.mutationTotal }

func (m *Metrics) Roundings() *prometheus.CounterVec { return m.roundingTotal }

func (m *Metrics) CatalogSize() prometheus.Gauge { return m.catalogSize }
