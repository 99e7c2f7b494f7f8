package repositories

import (
	"context"
	"database/sql"
)

// ledgerTxKey carries the open transaction through Atomic so every
// repository call inside the unit lands on the same connection.
type ledgerTxKey struct{}

// sqlTx is the query surface shared by *sql.DB and *sql.Tx.
type sqlTx interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func injectTx(ctx context.Context, db sqlTx) context.Context {
	return context.WithValue(ctx, ledgerTxKey{}, db)
}

// extractTxWrite resolves the executor for writes: the transaction when one
// is open on the context, the write pool otherwise.
func (r *Repository) extractTxWrite(ctx context.Context) sqlTx {
	if db, ok := ctx.Value(ledgerTxKey{}).(sqlTx); ok {
		return db
	}
	return r.dbWrite
}

// extractTxRead prefers the open transaction so reads inside Atomic see
// their own writes; outside one it falls back to the read pool.
func (r *Repository) extractTxRead(ctx context.Context) sqlTx {
	if db, ok := ctx.Value(ledgerTxKey{}).(sqlTx); ok {
		return db
	}
	return r.dbRead
}
