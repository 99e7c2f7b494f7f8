package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"
	"bitbucket.org/Amartha/go-savings-engine/internal/repositories"
)

type AccountService interface {
	Create(ctx context.Context, in models.CreateAccount) (out models.CreateAccount, err error)
	RegisterOwner(ctx context.Context, in models.Owner) (err error)
	Approve(ctx context.Context, accountNumber string) (result models.Account, err error)
	Reject(ctx context.Context, accountNumber string) (result models.Account, err error)
	WithdrawByClient(ctx context.Context, accountNumber string) (result models.Account, err error)
	Activate(ctx context.Context, accountNumber string, activationDate time.Time) (result models.Account, err error)
	Close(ctx context.Context, accountNumber string, closureDate time.Time) (result models.Account, err error)
	GetOneByAccountNumber(ctx context.Context, accountNumber string) (result models.Account, err error)
	GetList(ctx context.Context, opts models.AccountFilterOptions) (accounts []models.Account, total int, err error)
	GetSummary(ctx context.Context, accountNumber string) (result models.AccountSummary, err error)
}

type account service

var _ AccountService = (*account)(nil)

// Create registers a new savings account in submitted state. The interest
// policy is validated up front so a malformed one never reaches the
// scheduler.
func (as *account) Create(ctx context.Context, in models.CreateAccount) (out models.CreateAccount, err error) {
	if err = in.Policy.Validate(); err != nil {
		return
	}

	if in.CurrencyScale < 0 {
		err = fmt.Errorf("%w: negative currency scale", common.ErrValidation)
		return
	}

	in.OpeningDate = common.TruncateToDay(in.OpeningDate)

	if err = as.srv.sqlRepo.GetAccountRepository().Create(ctx, in); err != nil {
		return
	}

	out = in

	return
}

// RegisterOwner stores the owner projection consumed by owner-attribute
// queries. Owner facts come from the surrounding application and are only
// ever upserted here.
func (as *account) RegisterOwner(ctx context.Context, in models.Owner) (err error) {
	in.DateOfBirth = common.TruncateToDay(in.DateOfBirth)

	return as.srv.sqlRepo.GetOwnerRepository().Upsert(ctx, in)
}

func (as *account) Approve(ctx context.Context, accountNumber string) (result models.Account, err error) {
	return as.changeStatus(ctx, accountNumber, models.AccountStatusApproved, nil)
}

func (as *account) Reject(ctx context.Context, accountNumber string) (result models.Account, err error) {
	return as.changeStatus(ctx, accountNumber, models.AccountStatusRejected, nil)
}

func (as *account) WithdrawByClient(ctx context.Context, accountNumber string) (result models.Account, err error) {
	return as.changeStatus(ctx, accountNumber, models.AccountStatusWithdrawnByClient, nil)
}

// Activate moves an approved account to active and pins the activation
// date, which becomes the accrual start until the first posting.
func (as *account) Activate(ctx context.Context, accountNumber string, activationDate time.Time) (result models.Account, err error) {
	activation := common.TruncateToDay(activationDate)

	return as.changeStatus(ctx, accountNumber, models.AccountStatusActive, func(acc *models.Account) {
		acc.ActivationDate = &activation
	})
}

// Close settles the account before leaving the active state: every fully
// closed period plus the partial period through the closure day is posted
// in the same transaction that records the closure. Nothing posts
// afterwards.
func (as *account) Close(ctx context.Context, accountNumber string, closureDate time.Time) (result models.Account, err error) {
	closure := common.TruncateToDay(closureDate)

	var events []models.InterestPostedEvent
	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, repo repositories.SQLRepository) error {
		accountRepo := repo.GetAccountRepository()

		acc, err := accountRepo.GetOneForUpdate(ctx, accountNumber)
		if err != nil {
			return err
		}

		next, err := acc.Status.TransitionTo(models.AccountStatusClosed)
		if err != nil {
			return err
		}

		events, _, _, err = as.srv.Posting.postDuePeriods(ctx, repo, &acc, closure, &closure)
		if err != nil {
			return err
		}

		acc.Status = next
		acc.ClosedDate = &closure
		if err = accountRepo.Update(ctx, acc); err != nil {
			return err
		}

		result = acc

		return nil
	})
	if err != nil {
		return
	}

	as.srv.Posting.publishPostedEvents(ctx, events)

	if cacheErr := as.srv.cacheRepo.Del(ctx, summaryCacheKey(accountNumber)); cacheErr != nil {
		log.Warn(ctx, "[ACCOUNT] failed invalidating summary cache",
			log.String("accountNumber", accountNumber), log.Err(cacheErr))
	}

	return result, nil
}

func (as *account) GetOneByAccountNumber(ctx context.Context, accountNumber string) (result models.Account, err error) {
	result, err = as.srv.sqlRepo.GetAccountRepository().GetOneByAccountNumber(ctx, accountNumber)
	if err != nil {
		err = checkDatabaseError(err, common.ErrAccountNotExists)
		return
	}

	return result, nil
}

func (as *account) GetList(ctx context.Context, opts models.AccountFilterOptions) (accounts []models.Account, total int, err error) {
	accountRepo := as.srv.sqlRepo.GetAccountRepository()

	accounts, err = accountRepo.GetList(ctx, opts)
	if err != nil {
		return
	}

	if len(accounts) == 0 {
		return accounts, total, nil
	}

	total, err = accountRepo.CountAll(ctx, opts)
	if err != nil {
		return
	}

	return accounts, total, nil
}

// GetSummary serves the cached balance snapshot, rebuilding it from the
// ledger tail on a miss. Writers invalidate the entry, so a stale read
// lives at most one cache TTL.
func (as *account) GetSummary(ctx context.Context, accountNumber string) (result models.AccountSummary, err error) {
	key := summaryCacheKey(accountNumber)

	if cached, cacheErr := as.srv.cacheRepo.Get(ctx, key); cacheErr == nil {
		if unmarshalErr := json.Unmarshal([]byte(cached), &result); unmarshalErr == nil {
			return result, nil
		}

		log.Warn(ctx, "[ACCOUNT] corrupt summary cache entry, rebuilding",
			log.String("accountNumber", accountNumber))
	}

	acc, err := as.srv.sqlRepo.GetAccountRepository().GetOneByAccountNumber(ctx, accountNumber)
	if err != nil {
		err = checkDatabaseError(err, common.ErrAccountNotExists)
		return
	}

	tail, err := as.srv.sqlRepo.GetTransactionRepository().GetTail(ctx, accountNumber)
	if err != nil {
		return
	}

	result = models.AccountSummary{
		AccountNumber:  acc.AccountNumber,
		OwnerID:        acc.OwnerID,
		Currency:       acc.Currency,
		Status:         acc.Status,
		Balance:        tail.Balance,
		LastPostedDate: acc.LastPostedDate,
	}

	if payload, marshalErr := json.Marshal(result); marshalErr == nil {
		if cacheErr := as.srv.cacheRepo.Set(ctx, key, payload, as.srv.conf.Posting.SummaryCacheTTL); cacheErr != nil {
			log.Warn(ctx, "[ACCOUNT] failed caching summary",
				log.String("accountNumber", accountNumber), log.Err(cacheErr))
		}
	}

	return result, nil
}

// changeStatus runs one lifecycle transition under the account row lock.
func (as *account) changeStatus(ctx context.Context, accountNumber string, next models.AccountStatus, apply func(acc *models.Account)) (result models.Account, err error) {
	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, repo repositories.SQLRepository) error {
		accountRepo := repo.GetAccountRepository()

		acc, err := accountRepo.GetOneForUpdate(ctx, accountNumber)
		if err != nil {
			return err
		}

		acc.Status, err = acc.Status.TransitionTo(next)
		if err != nil {
			return err
		}

		if apply != nil {
			apply(&acc)
		}

		if err = accountRepo.Update(ctx, acc); err != nil {
			return err
		}

		result = acc

		return nil
	})

	return
}
