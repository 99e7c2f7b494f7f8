package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"bitbucket.org/Amartha/go-savings-engine/internal/models"
)

type PostingPrometheusMetrics struct {
	postingAccounts      *prometheus.CounterVec
	postingAmounts       prometheus.Counter
	postingBatchDuration prometheus.Histogram
}

func newPostingPrometheusMetrics(reg prometheus.Registerer) *PostingPrometheusMetrics {
	mtc := &PostingPrometheusMetrics{
		postingAccounts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savings_posting_accounts_total",
				Help: "Number of accounts processed by the posting scheduler, by outcome",
			},
			[]string{"outcome"},
		),
		postingAmounts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "savings_posting_amount_total",
				Help: "Sum of interest amounts posted",
			},
		),
		postingBatchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "savings_posting_batch_duration_seconds",
				Help:    "Duration of one posting batch run in seconds.",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300, 600, 1800},
			},
		),
	}

	reg.MustRegister(mtc.postingAccounts)
	reg.MustRegister(mtc.postingAmounts)
	reg.MustRegister(mtc.postingBatchDuration)

	return mtc
}

func (m *PostingPrometheusMetrics) RecordBatch(startTime time.Time, report models.PostingReport) {
	if m == nil {
		return
	}

	m.postingBatchDuration.Observe(time.Since(startTime).Seconds())

	for _, res := range report.Results {
		m.postingAccounts.WithLabelValues(string(res.Outcome)).Inc()
		if res.Outcome == models.PostingOutcomePosted {
			amount, _ := res.Amount.Float64()
			m.postingAmounts.Add(amount)
		}
	}
}
