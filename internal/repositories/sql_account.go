package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type AccountRepository interface {
	Create(ctx context.Context, in models.CreateAccount) (err error)
	GetOneByAccountNumber(ctx context.Context, accountNumber string) (result models.Account, err error)
	GetOneForUpdate(ctx context.Context, accountNumber string) (result models.Account, err error)
	GetList(ctx context.Context, opts models.AccountFilterOptions) (result []models.Account, err error)
	CountAll(ctx context.Context, opts models.AccountFilterOptions) (total int, err error)
	ListActiveAccountNumbers(ctx context.Context, afterAccountNumber string, limit int) (result []string, err error)
	Update(ctx context.Context, account models.Account) (err error)
	UpdateLastPostedDate(ctx context.Context, accountNumber string, lastPostedDate time.Time) (err error)
}

type accountRepository sqlRepo

var _ AccountRepository = (*accountRepository)(nil)

func (ar *accountRepository) Create(ctx context.Context, in models.CreateAccount) (err error) {
	db := ar.r.extractTxWrite(ctx)

	policy, err := json.Marshal(in.Policy)
	if err != nil {
		return fmt.Errorf("failed to marshal policy: %w", err)
	}

	res, err := db.ExecContext(ctx, queryAccountCreate,
		in.AccountNumber,
		in.OwnerID,
		in.Currency,
		in.CurrencyScale,
		string(models.AccountStatusSubmittedAndPendingApproval),
		policy,
		in.OpeningDate,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			err = common.ErrAccountAlreadyExists
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

type accountScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row accountScanner) (account models.Account, err error) {
	var policy []byte
	err = row.Scan(
		&account.ID,
		&account.AccountNumber,
		&account.OwnerID,
		&account.Currency,
		&account.CurrencyScale,
		&account.Status,
		&policy,
		&account.OpeningDate,
		&account.ActivationDate,
		&account.LastPostedDate,
		&account.ClosedDate,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return
	}

	err = json.Unmarshal(policy, &account.Policy)
	return
}

func (ar *accountRepository) GetOneByAccountNumber(ctx context.Context, accountNumber string) (result models.Account, err error) {
	db := ar.r.extractTxRead(ctx)

	result, err = scanAccount(db.QueryRowContext(ctx, queryAccountGetOneByAccountNumber, accountNumber))
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrAccountNotExists
	}
	return
}

// GetOneForUpdate locks the account row for the duration of the enclosing
// transaction. Call only inside Atomic.
func (ar *accountRepository) GetOneForUpdate(ctx context.Context, accountNumber string) (result models.Account, err error) {
	db := ar.r.extractTxWrite(ctx)

	result, err = scanAccount(db.QueryRowContext(ctx, queryAccountGetOneForUpdate, accountNumber))
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrAccountNotExists
	}
	return
}

func (ar *accountRepository) GetList(ctx context.Context, opts models.AccountFilterOptions) (result []models.Account, err error) {
	db := ar.r.extractTxRead(ctx)

	query, args, err := buildListAccountQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var account models.Account
		account, err = scanAccount(rows)
		if err != nil {
			return result, err
		}

		result = append(result, account)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (ar *accountRepository) CountAll(ctx context.Context, opts models.AccountFilterOptions) (total int, err error) {
	db := ar.r.extractTxRead(ctx)

	query, args, err := buildCountAccountQuery(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	err = db.QueryRowContext(ctx, query, args...).Scan(&total)
	return
}

func (ar *accountRepository) ListActiveAccountNumbers(ctx context.Context, afterAccountNumber string, limit int) (result []string, err error) {
	db := ar.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryAccountListActiveNumbers, afterAccountNumber, limit)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var accountNumber string
		if err = rows.Scan(&accountNumber); err != nil {
			return result, err
		}
		result = append(result, accountNumber)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (ar *accountRepository) Update(ctx context.Context, account models.Account) (err error) {
	db := ar.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryAccountUpdate,
		string(account.Status),
		account.ActivationDate,
		account.LastPostedDate,
		account.ClosedDate,
		account.AccountNumber,
	)
	if err != nil {
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

func (ar *accountRepository) UpdateLastPostedDate(ctx context.Context, accountNumber string, lastPostedDate time.Time) (err error) {
	db := ar.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryAccountUpdateLastPostedDate, lastPostedDate, accountNumber)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrLastPostedDateRegressed
		return
	}

	return
}
