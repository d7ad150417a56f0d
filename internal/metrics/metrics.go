// Package metrics exposes ledger counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ledger"

// Metrics holds the ledger counters. A nil *Metrics records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	submitted   *prometheus.CounterVec
	resolved    *prometheus.CounterVec
	deleted     *prometheus.CounterVec
	storeErrors *prometheus.CounterVec
}

// New registers the ledger counters and the Go runtime collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		submitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_submitted_total",
			Help:      "Transactions submitted, by type and creator role.",
		}, []string{"type", "role"}),
		resolved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_resolved_total",
			Help:      "Pending transactions approved or rejected.",
		}, []string{"status"}),
		deleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_deleted_total",
			Help:      "Transactions deleted, by status at deletion.",
		}, []string{"status"}),
		storeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Store failures surfaced to callers, by operation.",
		}, []string{"op"}),
	}
}

func (m *Metrics) Submitted(typ, role string) {
	if m == nil {
		return
	}
	m.submitted.WithLabelValues(typ, role).Inc()
}

func (m *Metrics) Resolved(status string) {
	if m == nil {
		return
	}
	m.resolved.WithLabelValues(status).Inc()
}

func (m *Metrics) Deleted(status string) {
	if m == nil {
		return
	}
	m.deleted.WithLabelValues(status).Inc()
}

func (m *Metrics) StoreError(op string) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(op).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
