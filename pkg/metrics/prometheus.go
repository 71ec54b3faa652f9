package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	AggregationPasses  prometheus.Counter
	CompaniesEvaluated prometheus.Counter
	RecordsSkipped     prometheus.Counter
	AggregationTime    prometheus.Histogram
	OverdueCompanies   prometheus.Gauge
	ErrorsCount        *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		AggregationPasses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregation_passes_total",
			Help:      "The total number of follow-up aggregation passes",
		}),
		CompaniesEvaluated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "companies_evaluated_total",
			Help:      "The total number of companies classified",
		}),
		RecordsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "email_records_skipped_total",
			Help:      "The total number of email records dropped for invalid timestamps",
		}),
		AggregationTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_time_seconds",
			Help:      "Time taken to aggregate one auditor snapshot",
			Buckets:   prometheus.DefBuckets,
		}),
		OverdueCompanies: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "overdue_companies",
			Help:      "Overdue company count from the most recent summary",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
