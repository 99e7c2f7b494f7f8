package repositories

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	Append(ctx context.Context, en *models.Transaction) (err error)
	GetTail(ctx context.Context, accountNumber string) (tail models.LedgerTail, err error)
	GetBalanceAsOf(ctx context.Context, accountNumber string, date time.Time) (balance decimal.Decimal, err error)
	GetBalancePoints(ctx context.Context, accountNumber string, from, to time.Time) (points []models.BalancePoint, err error)
	GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, err error)
	CountAll(ctx context.Context, opts models.TransactionFilterOptions) (total int, err error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

// Append writes one ledger row. The caller must hold the account row lock
// inside Atomic so seq assignment and the running balance stay serial.
func (tr *transactionRepository) Append(ctx context.Context, en *models.Transaction) (err error) {
	db := tr.r.extractTxWrite(ctx)

	err = db.
		QueryRowContext(ctx, appendTrxQuery,
			en.TransactionID,
			en.AccountNumber,
			string(en.Type),
			en.Amount,
			en.EffectiveDate,
			en.Description).
		Scan(&en.ID,
			&en.Seq,
			&en.RunningBalance,
			&en.CreatedAt)
	if err != nil {
		return
	}

	return
}

// GetTail returns the last running balance and the effective date of the
// newest ledger row. EffectiveDate is nil on an empty ledger.
func (tr *transactionRepository) GetTail(ctx context.Context, accountNumber string) (tail models.LedgerTail, err error) {
	db := tr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, getTailQuery, accountNumber).Scan(&tail.Balance, &tail.EffectiveDate)
	return
}

// GetBalanceAsOf returns the running balance in effect at end of date, so
// transactions effective on the date itself are included.
func (tr *transactionRepository) GetBalanceAsOf(ctx context.Context, accountNumber string, date time.Time) (balance decimal.Decimal, err error) {
	db := tr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, getBalanceAsOfQuery, accountNumber, date).Scan(&balance)
	return
}

func (tr *transactionRepository) getBalanceBefore(ctx context.Context, accountNumber string, date time.Time) (balance decimal.Decimal, err error) {
	db := tr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, getBalanceBeforeQuery, accountNumber, date).Scan(&balance)
	return
}

// GetBalancePoints returns the opening balance at from followed by the
// end-of-day balance of every date in [from, to) that has ledger activity.
func (tr *transactionRepository) GetBalancePoints(ctx context.Context, accountNumber string, from, to time.Time) (points []models.BalancePoint, err error) {
	db := tr.r.extractTxRead(ctx)

	opening, err := tr.getBalanceBefore(ctx, accountNumber, from)
	if err != nil {
		return
	}
	points = append(points, models.BalancePoint{Date: from, Balance: opening})

	rows, err := db.QueryContext(ctx, getBalancePointsQuery, accountNumber, from, to)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var point models.BalancePoint
		if err = rows.Scan(&point.Date, &point.Balance); err != nil {
			return points, err
		}
		points = append(points, point)
	}
	if err = rows.Err(); err != nil {
		return points, err
	}

	return points, nil
}

func (tr *transactionRepository) GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, err error) {
	db := tr.r.extractTxRead(ctx)

	query, args, err := buildListTransactionQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var trx models.Transaction
		err = rows.Scan(
			&trx.ID,
			&trx.TransactionID,
			&trx.AccountNumber,
			&trx.Type,
			&trx.Amount,
			&trx.EffectiveDate,
			&trx.RunningBalance,
			&trx.Seq,
			&trx.Description,
			&trx.CreatedAt,
		)
		if err != nil {
			return result, err
		}

		result = append(result, trx)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (tr *transactionRepository) CountAll(ctx context.Context, opts models.TransactionFilterOptions) (total int, err error) {
	db := tr.r.extractTxRead(ctx)

	query, args, err := buildCountTransactionQuery(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	err = db.QueryRowContext(ctx, query, args...).Scan(&total)
	return
}
