package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	ar *accountRepository
	or *ownerRepository
	tr *transactionRepository
	pr *postingRepository
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.ar = (*accountRepository)(&rtx.common)
	rtx.or = (*ownerRepository)(&rtx.common)
	rtx.tr = (*transactionRepository)(&rtx.common)
	rtx.pr = (*postingRepository)(&rtx.common)

	return rtx
}

//go:generate mockgen -source=sql_main.go -destination=mock/sql_main_mock.go -package=mock

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetAccountRepository() AccountRepository
	GetOwnerRepository() OwnerRepository
	GetTransactionRepository() TransactionRepository
	GetPostingRepository() PostingRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Debug(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
					err = nil
				}
			}

			log.Debug(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetAccountRepository() AccountRepository {
	return r.ar
}

func (r *Repository) GetOwnerRepository() OwnerRepository {
	return r.or
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}

func (r *Repository) GetPostingRepository() PostingRepository {
	return r.pr
}
