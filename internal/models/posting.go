package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestPosting is the idempotency record of one posted period. The
// unique pair (AccountNumber, PeriodEnd) guarantees a rerun can never
// double-post.
type InterestPosting struct {
	ID            uint64          `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	PeriodStart   time.Time       `json:"periodStart"`
	PeriodEnd     time.Time       `json:"periodEnd"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transactionId"`
	AsOfDate      time.Time       `json:"asOfDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PostingOutcome is the scheduler's per-account verdict for one run.
type PostingOutcome string

const (
	PostingOutcomePosted  PostingOutcome = "posted"
	PostingOutcomeSkipped PostingOutcome = "skipped"
	PostingOutcomeFailed  PostingOutcome = "failed"
)

// AccountPostingResult records one account's outcome; no silent skips.
type AccountPostingResult struct {
	AccountNumber string          `json:"accountNumber"`
	Outcome       PostingOutcome  `json:"outcome"`
	PostedPeriods int             `json:"postedPeriods,omitempty"`
	Amount        decimal.Decimal `json:"amount,omitempty"`
	Reason        string          `json:"reason,omitempty"`
}

// PostingReport is the result of one runPostingBatch invocation.
type PostingReport struct {
	AsOfDate time.Time              `json:"asOfDate"`
	Posted   int                    `json:"posted"`
	Skipped  int                    `json:"skipped"`
	Failed   int                    `json:"failed"`
	Results  []AccountPostingResult `json:"results"`
}

func (r *PostingReport) Add(res AccountPostingResult) {
	switch res.Outcome {
	case PostingOutcomePosted:
		r.Posted++
	case PostingOutcomeSkipped:
		r.Skipped++
	case PostingOutcomeFailed:
		r.Failed++
	}
	r.Results = append(r.Results, res)
}

// InterestPostedEvent is published to the message broker after a posting
// commits, for downstream consumers (notifications, accounting feeds).
type InterestPostedEvent struct {
	AccountNumber string          `json:"accountNumber"`
	PeriodStart   time.Time       `json:"periodStart"`
	PeriodEnd     time.Time       `json:"periodEnd"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	TransactionID string          `json:"transactionId"`
	AsOfDate      time.Time       `json:"asOfDate"`
}
