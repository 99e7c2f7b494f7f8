package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/publisher"
	"bitbucket.org/Amartha/go-savings-engine/internal/interest"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"
	"bitbucket.org/Amartha/go-savings-engine/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	postingLogIdentifier = "[POSTING]"

	postingLockKeyPrefix = "posting-lock:"

	defaultPostingBatchSize  = 500
	defaultWorkerConcurrency = 8
)

func postingLockKey(accountNumber string) string {
	return postingLockKeyPrefix + accountNumber
}

type PostingService interface {
	RunPostingBatch(ctx context.Context, asOfDate time.Time) (report models.PostingReport, err error)
	PostAccount(ctx context.Context, accountNumber string, asOfDate time.Time) (result models.AccountPostingResult, err error)
	GetList(ctx context.Context, accountNumber string, limit int) (result []models.InterestPosting, err error)
}

type posting service

var _ PostingService = (*posting)(nil)

// RunPostingBatch walks every active account in keyset pages and posts all
// periods due at asOfDate. Accounts are independent units of work: one
// account failing, timing out or being locked never touches another, and
// every account lands in the report with an explicit outcome. Only a dead
// ledger aborts the whole batch, detected when the first page cannot be
// read at all.
func (p *posting) RunPostingBatch(ctx context.Context, asOfDate time.Time) (report models.PostingReport, err error) {
	startTime := time.Now()
	asOf := common.TruncateToDay(asOfDate)
	report.AsOfDate = asOf

	batchSize := p.srv.conf.Posting.BatchSize
	if batchSize <= 0 {
		batchSize = defaultPostingBatchSize
	}

	concurrency := p.srv.conf.Posting.WorkerConcurrency
	if concurrency <= 0 {
		concurrency = defaultWorkerConcurrency
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(concurrency)

	accountRepo := p.srv.sqlRepo.GetAccountRepository()

	after := ""
	firstPage := true
	for {
		accountNumbers, listErr := accountRepo.ListActiveAccountNumbers(ctx, after, batchSize)
		if listErr != nil {
			if firstPage {
				return report, fmt.Errorf("%w: %v", common.ErrLedgerUnreachable, listErr)
			}

			// partial batch: report what was processed, fail the rest
			err = listErr
			break
		}
		firstPage = false

		if len(accountNumbers) == 0 {
			break
		}
		after = accountNumbers[len(accountNumbers)-1]

		for _, accountNumber := range accountNumbers {
			g.Go(func() error {
				res := p.processAccount(ctx, accountNumber, asOf)

				mu.Lock()
				report.Add(res)
				mu.Unlock()

				return nil
			})
		}

		if len(accountNumbers) < batchSize {
			break
		}
	}

	_ = g.Wait()

	p.srv.metrics.GetPostingPrometheus().RecordBatch(startTime, report)

	log.Info(ctx, postingLogIdentifier+" batch finished",
		log.String("asOfDate", asOf.Format(common.DateFormatYYYYMMDD)),
		log.Int("posted", report.Posted),
		log.Int("skipped", report.Skipped),
		log.Int("failed", report.Failed))

	return report, err
}

// PostAccount runs the posting unit for a single account, without the
// batch lock and retry envelope. External callers get domain sentinels
// back directly.
func (p *posting) PostAccount(ctx context.Context, accountNumber string, asOfDate time.Time) (result models.AccountPostingResult, err error) {
	asOf := common.TruncateToDay(asOfDate)
	result = models.AccountPostingResult{AccountNumber: accountNumber, Outcome: models.PostingOutcomeSkipped}

	events, periods, total, err := p.postAccountOnce(ctx, accountNumber, asOf)
	if err != nil {
		return result, err
	}

	if periods == 0 {
		result.Reason = "no posting period due"
		return result, nil
	}

	result.Outcome = models.PostingOutcomePosted
	result.PostedPeriods = periods
	result.Amount = total

	p.finishPosting(ctx, accountNumber, events)

	return result, nil
}

func (p *posting) GetList(ctx context.Context, accountNumber string, limit int) (result []models.InterestPosting, err error) {
	if _, err = p.srv.sqlRepo.GetAccountRepository().GetOneByAccountNumber(ctx, accountNumber); err != nil {
		err = checkDatabaseError(err, common.ErrAccountNotExists)
		return
	}

	return p.srv.sqlRepo.GetPostingRepository().GetList(ctx, accountNumber, limit)
}

// processAccount is one worker unit of a batch: acquire the per-account
// lock, bound the work with the account timeout, retry transient storage
// failures, and reduce whatever happened to a single reported outcome.
func (p *posting) processAccount(ctx context.Context, accountNumber string, asOf time.Time) (res models.AccountPostingResult) {
	res = models.AccountPostingResult{AccountNumber: accountNumber, Outcome: models.PostingOutcomeFailed}

	lockKey := postingLockKey(accountNumber)
	lockTTL := p.srv.conf.Posting.AccountLockTTL

	acquired, err := p.srv.cacheRepo.SetIfNotExists(ctx, lockKey, asOf.Format(common.DateFormatYYYYMMDD), lockTTL)
	if err != nil {
		res.Reason = fmt.Sprintf("acquiring posting lock: %v", err)
		return
	}
	if !acquired {
		res.Outcome = models.PostingOutcomeSkipped
		res.Reason = common.ErrAccountLocked.Error()
		return
	}
	defer func() {
		if delErr := p.srv.cacheRepo.Del(context.WithoutCancel(ctx), lockKey); delErr != nil {
			log.Warn(ctx, postingLogIdentifier+" failed releasing posting lock",
				log.String("accountNumber", accountNumber), log.Err(delErr))
		}
	}()

	accountCtx := ctx
	if timeout := p.srv.conf.Posting.AccountTimeout; timeout > 0 {
		var cancel context.CancelFunc
		accountCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var (
		events  []models.InterestPostedEvent
		periods int
		total   decimal.Decimal
	)
	err = p.srv.retryer.Retry(accountCtx, func() error {
		var opErr error
		events, periods, total, opErr = p.postAccountOnce(accountCtx, accountNumber, asOf)
		if opErr != nil && isPermanentPostingError(opErr) {
			return p.srv.retryer.StopRetryWithErr(opErr)
		}

		return opErr
	})
	if err != nil {
		if errors.Is(err, common.ErrAccountNotEligible) || errors.Is(err, common.ErrPostingConflict) {
			res.Outcome = models.PostingOutcomeSkipped
		}
		res.Reason = err.Error()
		return
	}

	if periods == 0 {
		res.Outcome = models.PostingOutcomeSkipped
		res.Reason = "no posting period due"
		return
	}

	res.Outcome = models.PostingOutcomePosted
	res.PostedPeriods = periods
	res.Amount = total

	p.finishPosting(ctx, accountNumber, events)

	return
}

// postAccountOnce is the atomic evaluate-compute-post unit: everything for
// one account commits or rolls back together.
func (p *posting) postAccountOnce(ctx context.Context, accountNumber string, asOf time.Time) (events []models.InterestPostedEvent, periods int, total decimal.Decimal, err error) {
	err = p.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, repo repositories.SQLRepository) error {
		acc, err := repo.GetAccountRepository().GetOneForUpdate(ctx, accountNumber)
		if err != nil {
			return err
		}

		if !acc.Status.EligibleForPosting() {
			return fmt.Errorf("%w: status %s", common.ErrAccountNotEligible, acc.Status)
		}

		events, periods, total, err = p.postDuePeriods(ctx, repo, &acc, asOf, nil)

		return err
	})

	return
}

// postDuePeriods posts, oldest first, every period of the account that has
// fully closed at asOf. Each posting advances the accrual start, so the
// loop walks the calendar in strict period order until it catches up. When
// closure is set the partial period ending at the closure date is posted
// last. The caller holds the account row lock.
func (p *posting) postDuePeriods(ctx context.Context, repo repositories.SQLRepository, acc *models.Account, asOf time.Time, closure *time.Time) (events []models.InterestPostedEvent, periods int, total decimal.Decimal, err error) {
	for {
		var period *models.InterestPeriod
		period, err = interest.ResolvePeriod(acc.Policy, asOf, acc.AccrualStart())
		if err != nil {
			return
		}
		if period == nil {
			break
		}

		var (
			event  *models.InterestPostedEvent
			amount decimal.Decimal
		)
		event, amount, err = p.postPeriod(ctx, repo, acc, *period, period.End, asOf, models.InterestPostingDescription)
		if err != nil {
			return
		}

		if event != nil {
			events = append(events, *event)
		}
		periods++
		total = total.Add(amount)
	}

	if closure != nil {
		var period *models.InterestPeriod
		period, err = interest.ResolveClosurePeriod(acc.Policy, *closure, acc.AccrualStart())
		if err != nil {
			return
		}
		if period != nil {
			var (
				event  *models.InterestPostedEvent
				amount decimal.Decimal
			)
			event, amount, err = p.postPeriod(ctx, repo, acc, *period, *closure, asOf, models.ClosurePostingDescription)
			if err != nil {
				return
			}

			if event != nil {
				events = append(events, *event)
			}
			periods++
			total = total.Add(amount)
		}
	}

	return
}

// postPeriod writes one period's outcome: the interest transaction when the
// amount is non-zero, the posting row that carries the idempotency key, and
// the lastPostedDate advance. The transaction is dated effectiveDate, the
// period boundary for scheduled postings and the closure day for closure
// postings. A unique violation on the posting row surfaces as
// ErrPostingConflict and rolls the unit back; the rerun then resolves past
// the already posted period.
func (p *posting) postPeriod(ctx context.Context, repo repositories.SQLRepository, acc *models.Account, period models.InterestPeriod, effectiveDate, asOf time.Time, description string) (event *models.InterestPostedEvent, amount decimal.Decimal, err error) {
	points, err := repo.GetTransactionRepository().GetBalancePoints(ctx, acc.AccountNumber, period.Start, period.End)
	if err != nil {
		return
	}

	amount = interest.ComputeInterest(points, period, acc.Policy, acc.CurrencyScale)

	entry := models.InterestPosting{
		AccountNumber: acc.AccountNumber,
		PeriodStart:   period.Start,
		PeriodEnd:     period.End,
		Amount:        amount,
		AsOfDate:      asOf,
	}

	if !amount.IsZero() {
		trx := models.Transaction{
			TransactionID: p.srv.idgenerator.Generate(models.InterestPostingIDPrefix),
			AccountNumber: acc.AccountNumber,
			Type:          models.TransactionTypeInterestPosting,
			Amount:        amount,
			EffectiveDate: effectiveDate,
			Description:   description,
		}
		if err = repo.GetTransactionRepository().Append(ctx, &trx); err != nil {
			return
		}

		entry.TransactionID = trx.TransactionID
		event = &models.InterestPostedEvent{
			AccountNumber: acc.AccountNumber,
			PeriodStart:   period.Start,
			PeriodEnd:     period.End,
			Amount:        amount,
			Currency:      acc.Currency,
			TransactionID: trx.TransactionID,
			AsOfDate:      asOf,
		}
	}

	if err = repo.GetPostingRepository().Create(ctx, entry); err != nil {
		event = nil
		return
	}

	if err = acc.AdvanceLastPostedDate(period.End); err != nil {
		event = nil
		return
	}
	if err = repo.GetAccountRepository().UpdateLastPostedDate(ctx, acc.AccountNumber, period.End); err != nil {
		event = nil
		return
	}

	return event, amount, nil
}

// finishPosting runs the after-commit effects. Neither a lost event nor a
// stale cache entry may undo a committed posting, so both are best effort.
func (p *posting) finishPosting(ctx context.Context, accountNumber string, events []models.InterestPostedEvent) {
	p.publishPostedEvents(ctx, events)

	if cacheErr := p.srv.cacheRepo.Del(ctx, summaryCacheKey(accountNumber)); cacheErr != nil {
		log.Warn(ctx, postingLogIdentifier+" failed invalidating summary cache",
			log.String("accountNumber", accountNumber), log.Err(cacheErr))
	}
}

func (p *posting) publishPostedEvents(ctx context.Context, events []models.InterestPostedEvent) {
	for _, event := range events {
		if pubErr := p.srv.postingPub.Publish(ctx, event, publisher.WithKey(event.AccountNumber)); pubErr != nil {
			log.Warn(ctx, postingLogIdentifier+" failed publishing interest posted event",
				log.String("accountNumber", event.AccountNumber),
				log.String("transactionId", event.TransactionID),
				log.Err(pubErr))
		}
	}
}

// isPermanentPostingError separates domain outcomes from transient storage
// failures: only the latter earn another attempt.
func isPermanentPostingError(err error) bool {
	return errors.Is(err, common.ErrAccountNotEligible) ||
		errors.Is(err, common.ErrPostingConflict) ||
		errors.Is(err, common.ErrInvalidPolicy) ||
		errors.Is(err, common.ErrLastPostedDateRegressed) ||
		errors.Is(err, common.ErrAccountNotExists)
}
