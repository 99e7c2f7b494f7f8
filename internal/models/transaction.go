package models

import (
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"

	"github.com/shopspring/decimal"
)

const (
	TransactionIDPrefix        = "TRX"
	InterestPostingIDPrefix    = "TRX-INT"
	ClosurePostingDescription  = "final pro-rated interest on closure"
	InterestPostingDescription = "interest posting"
)

type TransactionType string

const (
	TransactionTypeDeposit         TransactionType = "deposit"
	TransactionTypeWithdrawal      TransactionType = "withdrawal"
	TransactionTypeInterestPosting TransactionType = "interest_posting"
	TransactionTypeFee             TransactionType = "fee"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeInterestPosting, TransactionTypeFee:
		return true
	}
	return false
}

// Signed returns amount with the sign the ledger stores for this type:
// withdrawals and fees debit, deposits and postings credit.
func (t TransactionType) Signed(amount decimal.Decimal) decimal.Decimal {
	switch t {
	case TransactionTypeWithdrawal, TransactionTypeFee:
		return amount.Neg()
	default:
		return amount
	}
}

// Transaction is one row of an account's append-only ledger. Rows form a
// strictly increasing sequence by (effectiveDate, seq) and each carries the
// running balance after applying its amount.
type Transaction struct {
	ID             uint64          `json:"id"`
	TransactionID  string          `json:"transactionId"`
	AccountNumber  string          `json:"accountNumber"`
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	EffectiveDate  time.Time       `json:"effectiveDate"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Seq            int64           `json:"seq"`
	Description    string          `json:"description"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// SubmitTransactionRequest is the external submitTransaction payload.
type SubmitTransactionRequest struct {
	AccountNumber string  `json:"accountNumber" validate:"required,noStartEndSpaces"`
	Type          string  `json:"type" validate:"required,transactionType"`
	Amount        Decimal `json:"amount" validate:"required"`
	EffectiveDate string  `json:"effectiveDate" validate:"required,date"`
	Description   string  `json:"description"`
}

func (r SubmitTransactionRequest) ToTransaction() (Transaction, error) {
	t := TransactionType(r.Type)
	if !t.Valid() {
		return Transaction{}, fmt.Errorf("%w: %q", common.ErrInvalidTransactionType, r.Type)
	}

	if !r.Amount.IsPositive() {
		return Transaction{}, common.ErrInvalidAmount
	}

	effectiveDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.EffectiveDate)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		AccountNumber: r.AccountNumber,
		Type:          t,
		Amount:        t.Signed(r.Amount.Decimal),
		EffectiveDate: common.TruncateToDay(effectiveDate),
		Description:   r.Description,
	}, nil
}

// BalancePoint feeds the interest calculator: the running balance in effect
// from Date onward.
type BalancePoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// LedgerTail is the newest ledger row's running balance and effective date.
// EffectiveDate is nil while the ledger is still empty.
type LedgerTail struct {
	Balance       decimal.Decimal
	EffectiveDate *time.Time
}

// TransactionFilterOptions narrows ledger reads.
type TransactionFilterOptions struct {
	AccountNumber string
	From          *time.Time
	To            *time.Time
	Type          TransactionType
	Limit         int
}
