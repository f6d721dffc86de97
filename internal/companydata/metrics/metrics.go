package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the company data store.
type Metrics struct {
	CompaniesCreated prometheus.Counter
	DataWrites       *prometheus.CounterVec
	RecordsCreated   *prometheus.CounterVec
	WriteDuration    prometheus.Histogram
}

// New creates a Metrics instance registered on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CompaniesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "companyatlas_companies_created_total",
			Help: "Total number of companies created by data writes",
		}),
		DataWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "companyatlas_company_data_writes_total",
			Help: "Company data writes by value type",
		}, []string{"value_type"}),
		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "companyatlas_company_records_created_total",
			Help: "Documents and events attached to companies",
		}, []string{"record"}),
		WriteDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "companyatlas_company_data_write_duration_seconds",
			Help:    "Duration of company data, document and event writes",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementCompanyCreated() {
	if m == nil {
		return
	}
	m.CompaniesCreated.Inc()
}

func (m *Metrics) IncrementDataWrite(kind string) {
	if m == nil {
		return
	}
	m.DataWrites.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementRecordCreated(record string) {
	if m == nil {
		return
	}
	m.RecordsCreated.WithLabelValues(record).Inc()
}

// ObserveWrite records the duration of a write. Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveWrite(start time.Time) {
	if m == nil {
		return
	}
	m.WriteDuration.Observe(time.Since(start).Seconds())
}
