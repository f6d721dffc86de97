package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for backend enumeration and search.
type Metrics struct {
	// Backends seen per enumeration, by derived status
	BackendsByStatus *prometheus.GaugeVec

	// Recovered collaborator failures by category
	Failures *prometheus.CounterVec

	// Search calls by backend, service and outcome
	Searches *prometheus.CounterVec

	// Rows returned by searches
	SearchRows *prometheus.HistogramVec

	// Collaborator call latency by operation
	CallLatency *prometheus.HistogramVec
}

// New creates a Metrics instance registered on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on reg. Tests pass a fresh prometheus.NewRegistry().
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BackendsByStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "companyatlas_backends",
			Help: "Backends in the last enumeration by status",
		}, []string{"status"}),

		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "companyatlas_backend_failures_total",
			Help: "Recovered backend collaborator failures by category",
		}, []string{"category"}),

		Searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "companyatlas_backend_searches_total",
			Help: "Backend searches by backend, service and outcome",
		}, []string{"backend", "service", "outcome"}), // outcome: "ok", "disabled", "failed"

		SearchRows: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "companyatlas_backend_search_rows",
			Help:    "Rows returned per backend search",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		}, []string{"service"}),

		CallLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "companyatlas_backend_call_duration_seconds",
			Help:    "Duration of backend collaborator calls",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}), // operation: "discover", "search"
	}
}

// SetBackendsByStatus replaces the per-status gauge with counts.
func (m *Metrics) SetBackendsByStatus(counts map[string]int, statuses []string) {
	if m == nil {
		return
	}
	for _, s := range statuses {
		m.BackendsByStatus.WithLabelValues(s).Set(float64(counts[s]))
	}
}

// IncrementFailure records a recovered failure.
func (m *Metrics) IncrementFailure(category string) {
	if m != nil {
		m.Failures.WithLabelValues(category).Inc()
	}
}

// IncrementSearch records a search outcome.
func (m *Metrics) IncrementSearch(backend, service, outcome string) {
	if m != nil {
		m.Searches.WithLabelValues(backend, service, outcome).Inc()
	}
}

// ObserveSearchRows records how many rows a search produced.
func (m *Metrics) ObserveSearchRows(service string, n int) {
	if m != nil {
		m.SearchRows.WithLabelValues(service).Observe(float64(n))
	}
}

// ObserveCallLatency records the duration of a collaborator call.
func (m *Metrics) ObserveCallLatency(operation string, d time.Duration) {
	if m != nil {
		m.CallLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
