package services

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"
	"bitbucket.org/Amartha/go-savings-engine/internal/repositories"

	"github.com/shopspring/decimal"
)

type TransactionService interface {
	Submit(ctx context.Context, req models.SubmitTransactionRequest) (result models.Transaction, err error)
	GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, total int, err error)
	GetBalanceAsOf(ctx context.Context, accountNumber string, date time.Time) (balance decimal.Decimal, err error)
}

type transaction service

var _ TransactionService = (*transaction)(nil)

// Submit appends one deposit, withdrawal or fee to the account ledger. The
// account row lock serializes concurrent submissions, so the sequence and
// running balance computed on insert are race free. A submission effective
// before the ledger tail is rejected, keeping (effectiveDate, seq) strictly
// increasing. Withdrawals that would take the balance below the policy
// minimum are rejected unless the policy allows overdraft.
func (ts *transaction) Submit(ctx context.Context, req models.SubmitTransactionRequest) (result models.Transaction, err error) {
	trx, err := req.ToTransaction()
	if err != nil {
		return
	}

	trx.TransactionID = ts.srv.idgenerator.Generate(models.TransactionIDPrefix)

	err = ts.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, repo repositories.SQLRepository) error {
		acc, err := repo.GetAccountRepository().GetOneForUpdate(ctx, trx.AccountNumber)
		if err != nil {
			return err
		}

		if !acc.Status.EligibleForTransactions() {
			return fmt.Errorf("%w: status %s", common.ErrAccountNotEligible, acc.Status)
		}

		trxRepo := repo.GetTransactionRepository()

		tail, err := trxRepo.GetTail(ctx, trx.AccountNumber)
		if err != nil {
			return err
		}

		if tail.EffectiveDate != nil && trx.EffectiveDate.Before(*tail.EffectiveDate) {
			return fmt.Errorf("%w: effective %s, ledger tail %s",
				common.ErrOutOfOrderTransaction,
				trx.EffectiveDate.Format(common.DateFormatYYYYMMDD),
				tail.EffectiveDate.Format(common.DateFormatYYYYMMDD))
		}

		newBalance := tail.Balance.Add(trx.Amount)
		if trx.Amount.IsNegative() && !acc.Policy.OverdraftAllowed && newBalance.LessThan(acc.Policy.MinimumBalance) {
			return fmt.Errorf("%w: balance %s would fall below minimum %s",
				common.ErrInsufficientFunds, newBalance.String(), acc.Policy.MinimumBalance.String())
		}

		return trxRepo.Append(ctx, &trx)
	})
	if err != nil {
		return
	}

	ts.srv.metrics.GetLedgerPrometheus().Record(trx)

	if cacheErr := ts.srv.cacheRepo.Del(ctx, summaryCacheKey(trx.AccountNumber)); cacheErr != nil {
		log.Warn(ctx, "[TRANSACTION] failed invalidating summary cache",
			log.String("accountNumber", trx.AccountNumber), log.Err(cacheErr))
	}

	result = trx

	return result, nil
}

func (ts *transaction) GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, total int, err error) {
	trxRepo := ts.srv.sqlRepo.GetTransactionRepository()

	result, err = trxRepo.GetList(ctx, opts)
	if err != nil {
		return
	}

	if len(result) == 0 {
		return result, total, nil
	}

	total, err = trxRepo.CountAll(ctx, opts)
	if err != nil {
		return
	}

	return result, total, nil
}

// GetBalanceAsOf returns the running balance at end of the given date,
// including transactions effective on the date itself.
func (ts *transaction) GetBalanceAsOf(ctx context.Context, accountNumber string, date time.Time) (balance decimal.Decimal, err error) {
	if _, err = ts.srv.sqlRepo.GetAccountRepository().GetOneByAccountNumber(ctx, accountNumber); err != nil {
		err = checkDatabaseError(err, common.ErrAccountNotExists)
		return
	}

	return ts.srv.sqlRepo.GetTransactionRepository().GetBalanceAsOf(ctx, accountNumber, common.TruncateToDay(date))
}
