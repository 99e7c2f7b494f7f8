package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")
	ErrDataExist           = errors.New("data exist")

	// ErrInvalidPolicy is fatal at account setup: the interest policy is
	// malformed or contradictory and must never reach the scheduler.
	ErrInvalidPolicy = errors.New("invalid interest policy")

	// ErrInsufficientFunds rejects a withdrawal that would breach the
	// account's minimum balance. Local to the single attempt, retryable
	// by the caller with an adjusted amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrPostingConflict means the idempotency key (account, period end)
	// is already satisfied. Callers treat it as success, never a failure.
	ErrPostingConflict = errors.New("interest already posted for period")

	// ErrAccountNotEligible marks an account whose lifecycle state does
	// not permit accrual or posting. Skip and report, not fatal.
	ErrAccountNotEligible = errors.New("account not eligible for posting")

	// ErrOutOfOrderTransaction guards the ledger's append-only ordering:
	// a submission may not be effective before the current tail.
	ErrOutOfOrderTransaction = errors.New("transaction effective date behind ledger tail")

	// ErrAccountLocked means another run holds the per-account lock.
	ErrAccountLocked = errors.New("account locked by another posting run")

	// ErrLedgerUnreachable aborts a whole batch: the ledger storage could
	// not be reached at all, so no account can make progress.
	ErrLedgerUnreachable = errors.New("ledger storage unreachable")

	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrInvalidTransactionType  = errors.New("invalid transaction type")
	ErrInvalidLifecycleChange  = errors.New("lifecycle transition not allowed")
	ErrAccountNotExists        = errors.New("account not exists")
	ErrAccountAlreadyExists    = errors.New("account already exists")
	ErrLastPostedDateRegressed = errors.New("last posted date may not regress")

	ErrNoRows = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
