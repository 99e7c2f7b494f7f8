package metrics

import (
	"testing"

	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerPrometheusMetrics_Record(t *testing.T) {
	m := newLedgerPrometheusMetrics(prometheus.NewRegistry())

	m.Record(
		models.Transaction{Type: models.TransactionTypeDeposit, Amount: decimal.RequireFromString("100.00")},
		models.Transaction{Type: models.TransactionTypeWithdrawal, Amount: decimal.RequireFromString("-25.00")},
		models.Transaction{Type: models.TransactionTypeFee, Amount: decimal.RequireFromString("-1.50")},
	)

	assert.InDelta(t, 1, testutil.ToFloat64(m.ledgerOperations.WithLabelValues("withdrawal")), 0)
	assert.InDelta(t, 100, testutil.ToFloat64(m.ledgerMovements.WithLabelValues("deposit", "credit")), 0)
	assert.InDelta(t, 25, testutil.ToFloat64(m.ledgerMovements.WithLabelValues("withdrawal", "debit")), 0)
	assert.InDelta(t, 1.5, testutil.ToFloat64(m.ledgerMovements.WithLabelValues("fee", "debit")), 0)
}

func TestLedgerPrometheusMetrics_Record_NilReceiver(t *testing.T) {
	var m *LedgerPrometheusMetrics

	assert.NotPanics(t, func() {
		m.Record(models.Transaction{Type: models.TransactionTypeDeposit, Amount: decimal.RequireFromString("10.00")})
	})
}
