package models

import (
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"

	"github.com/shopspring/decimal"
)

// AccountStatus enumerates the savings account lifecycle. Transitions are
// driven by the surrounding banking application; the engine validates them
// against an explicit table and treats the current state as a precondition
// for accrual and posting.
type AccountStatus string

const (
	AccountStatusSubmittedAndPendingApproval AccountStatus = "submitted_and_pending_approval"
	AccountStatusApproved                    AccountStatus = "approved"
	AccountStatusActive                      AccountStatus = "active"
	AccountStatusClosed                      AccountStatus = "closed"
	AccountStatusRejected                    AccountStatus = "rejected"
	AccountStatusWithdrawnByClient           AccountStatus = "withdrawn_by_client"
)

var accountStatusTransitions = map[AccountStatus][]AccountStatus{
	AccountStatusSubmittedAndPendingApproval: {
		AccountStatusApproved,
		AccountStatusRejected,
		AccountStatusWithdrawnByClient,
	},
	AccountStatusApproved: {
		AccountStatusActive,
		AccountStatusWithdrawnByClient,
	},
	AccountStatusActive: {
		AccountStatusClosed,
	},
}

func (s AccountStatus) Valid() bool {
	switch s {
	case AccountStatusSubmittedAndPendingApproval, AccountStatusApproved, AccountStatusActive,
		AccountStatusClosed, AccountStatusRejected, AccountStatusWithdrawnByClient:
		return true
	}
	return false
}

// CanTransitionTo consults the transition table; unmodeled transitions are
// rejected.
func (s AccountStatus) CanTransitionTo(next AccountStatus) bool {
	for _, allowed := range accountStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns the next state or fails with ErrInvalidLifecycleChange.
func (s AccountStatus) TransitionTo(next AccountStatus) (AccountStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s -> %s", common.ErrInvalidLifecycleChange, s, next)
	}
	return next, nil
}

// EligibleForPosting reports whether the account may accrue and post
// interest. Only Active accounts qualify.
func (s AccountStatus) EligibleForPosting() bool {
	return s == AccountStatusActive
}

// EligibleForTransactions reports whether deposits and withdrawals are
// accepted.
func (s AccountStatus) EligibleForTransactions() bool {
	return s == AccountStatusActive
}

type Account struct {
	ID             int            `json:"id"`
	AccountNumber  string         `json:"accountNumber"`
	OwnerID        string         `json:"ownerId"`
	Currency       string         `json:"currency"`
	CurrencyScale  int32          `json:"currencyScale"`
	Status         AccountStatus  `json:"status"`
	Policy         InterestPolicy `json:"policy"`
	OpeningDate    time.Time      `json:"openingDate"`
	ActivationDate *time.Time     `json:"activationDate,omitempty"`
	LastPostedDate *time.Time     `json:"lastPostedDate,omitempty"`
	ClosedDate     *time.Time     `json:"closedDate,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// AccrualStart is the date accrual resumes from: the day after the last
// posted period, else the activation date, else the opening date.
func (a Account) AccrualStart() time.Time {
	if a.LastPostedDate != nil {
		return common.TruncateToDay(*a.LastPostedDate)
	}
	if a.ActivationDate != nil {
		return common.TruncateToDay(*a.ActivationDate)
	}
	return common.TruncateToDay(a.OpeningDate)
}

// AdvanceLastPostedDate enforces the never-regress invariant.
func (a *Account) AdvanceLastPostedDate(d time.Time) error {
	d = common.TruncateToDay(d)
	if a.LastPostedDate != nil && d.Before(*a.LastPostedDate) {
		return fmt.Errorf("%w: %s before %s",
			common.ErrLastPostedDateRegressed,
			d.Format(common.DateFormatYYYYMMDD),
			a.LastPostedDate.Format(common.DateFormatYYYYMMDD))
	}
	a.LastPostedDate = &d
	return nil
}

type CreateAccount struct {
	AccountNumber string         `json:"accountNumber"`
	OwnerID       string         `json:"ownerId"`
	Currency      string         `json:"currency"`
	CurrencyScale int32          `json:"currencyScale"`
	OpeningDate   time.Time      `json:"openingDate"`
	Policy        InterestPolicy `json:"policy"`
}

// Owner is the projection of client demographics the engine consumes to
// serve owner-attribute queries. It is never mutated here.
type Owner struct {
	OwnerID     string    `json:"ownerId"`
	DisplayName string    `json:"displayName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

type AccountSummary struct {
	AccountNumber  string          `json:"accountNumber"`
	OwnerID        string          `json:"ownerId"`
	Currency       string          `json:"currency"`
	Status         AccountStatus   `json:"status"`
	Balance        decimal.Decimal `json:"balance"`
	LastPostedDate *time.Time      `json:"lastPostedDate,omitempty"`
}

// AccountFilterOptions narrows FindAccounts. Zero values are ignored.
type AccountFilterOptions struct {
	AccountNumber    string
	OwnerID          string
	Status           AccountStatus
	OwnerDateOfBirth *time.Time

	Limit  int
	SortBy string
	Sort   string
}
