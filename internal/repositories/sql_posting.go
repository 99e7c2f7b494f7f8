package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/lib/pq"
)

type PostingRepository interface {
	Create(ctx context.Context, in models.InterestPosting) (err error)
	GetOne(ctx context.Context, accountNumber string, periodEnd time.Time) (result models.InterestPosting, err error)
	GetList(ctx context.Context, accountNumber string, limit int) (result []models.InterestPosting, err error)
}

type postingRepository sqlRepo

var _ PostingRepository = (*postingRepository)(nil)

func (pr *postingRepository) Create(ctx context.Context, in models.InterestPosting) (err error) {
	db := pr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryPostingCreate,
		in.AccountNumber,
		in.PeriodStart,
		in.PeriodEnd,
		in.Amount,
		in.TransactionID,
		in.AsOfDate,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			err = common.ErrPostingConflict
		}
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrNoRowsAffected
		return
	}

	return
}

func (pr *postingRepository) GetOne(ctx context.Context, accountNumber string, periodEnd time.Time) (result models.InterestPosting, err error) {
	db := pr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryPostingGetOne, accountNumber, periodEnd).
		Scan(
			&result.ID,
			&result.AccountNumber,
			&result.PeriodStart,
			&result.PeriodEnd,
			&result.Amount,
			&result.TransactionID,
			&result.AsOfDate,
			&result.CreatedAt,
		)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrDataNotFound
	}
	return
}

func (pr *postingRepository) GetList(ctx context.Context, accountNumber string, limit int) (result []models.InterestPosting, err error) {
	db := pr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryPostingGetList, accountNumber, limit)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var posting models.InterestPosting
		err = rows.Scan(
			&posting.ID,
			&posting.AccountNumber,
			&posting.PeriodStart,
			&posting.PeriodEnd,
			&posting.Amount,
			&posting.TransactionID,
			&posting.AsOfDate,
			&posting.CreatedAt,
		)
		if err != nil {
			return result, err
		}

		result = append(result, posting)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}
