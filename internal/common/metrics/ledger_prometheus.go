package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"bitbucket.org/Amartha/go-savings-engine/internal/models"
)

type LedgerPrometheusMetrics struct {
	ledgerOperations *prometheus.CounterVec
	ledgerMovements  *prometheus.CounterVec
}

func newLedgerPrometheusMetrics(reg prometheus.Registerer) *LedgerPrometheusMetrics {
	mtc := &LedgerPrometheusMetrics{
		ledgerOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savings_ledger_operations_total",
				Help: "Number of ledger transactions by type",
			},
			[]string{"transaction_type"},
		),
		ledgerMovements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savings_ledger_movements_total",
				Help: "Absolute amount moved through the ledger by type and direction",
			},
			[]string{"transaction_type", "direction"},
		),
	}

	reg.MustRegister(mtc.ledgerOperations)
	reg.MustRegister(mtc.ledgerMovements)

	return mtc
}

func (m *LedgerPrometheusMetrics) Record(transactions ...models.Transaction) {
	if m == nil {
		return
	}

	for _, transaction := range transactions {
		direction := "credit"
		if transaction.Amount.IsNegative() {
			direction = "debit"
		}
		amount, _ := transaction.Amount.Abs().Float64()

		m.ledgerOperations.WithLabelValues(string(transaction.Type)).Inc()
		m.ledgerMovements.WithLabelValues(string(transaction.Type), direction).Add(amount)
	}
}
