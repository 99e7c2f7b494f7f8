package repositories

import (
	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	sq "github.com/Masterminds/squirrel"
)

const (
	// seq and runningBalance derive from the current ledger tail; callers
	// hold the account row lock so the two subselects read a stable tail
	appendTrxQuery = `INSERT INTO "transaction"
		(
		 "transactionId",
		 "accountNumber",
		 "type",
		 "amount",
		 "effectiveDate",
		 "seq",
		 "runningBalance",
		 "description",
		 "createdAt"
		)
		SELECT
			$1, $2, $3, $4, $5,
			COALESCE((SELECT "seq" FROM "transaction" WHERE "accountNumber" = $2 ORDER BY "seq" DESC LIMIT 1), 0) + 1,
			COALESCE((SELECT "runningBalance" FROM "transaction" WHERE "accountNumber" = $2 ORDER BY "seq" DESC LIMIT 1), 0) + $4,
			$6, now()
		RETURNING "id", "seq", "runningBalance", "createdAt"`

	getTailQuery = `
	SELECT
		COALESCE((
			SELECT "runningBalance"
			FROM "transaction"
			WHERE "accountNumber" = $1
			ORDER BY "seq" DESC
			LIMIT 1
		), 0) as "runningBalance",
		(
			SELECT "effectiveDate"
			FROM "transaction"
			WHERE "accountNumber" = $1
			ORDER BY "seq" DESC
			LIMIT 1
		) as "effectiveDate"`

	getBalanceAsOfQuery = `
	SELECT
		COALESCE((
			SELECT "runningBalance"
			FROM "transaction"
			WHERE "accountNumber" = $1 AND "effectiveDate" <= $2
			ORDER BY "seq" DESC
			LIMIT 1
		), 0) as "runningBalance"`

	// opening balance for a window: strictly before the window start
	getBalanceBeforeQuery = `
	SELECT
		COALESCE((
			SELECT "runningBalance"
			FROM "transaction"
			WHERE "accountNumber" = $1 AND "effectiveDate" < $2
			ORDER BY "seq" DESC
			LIMIT 1
		), 0) as "runningBalance"`

	// end-of-day running balance per effective date inside the window
	getBalancePointsQuery = `
	SELECT DISTINCT ON ("effectiveDate")
		"effectiveDate",
		"runningBalance"
	FROM "transaction"
	WHERE "accountNumber" = $1
		AND "effectiveDate" >= $2
		AND "effectiveDate" < $3
	ORDER BY "effectiveDate", "seq" DESC;`
)

var transactionColumns = []string{
	`"id"`,
	`"transactionId"`,
	`"accountNumber"`,
	`"type"`,
	`"amount"`,
	`"effectiveDate"`,
	`"runningBalance"`,
	`"seq"`,
	`COALESCE("description", '') as "description"`,
	`"createdAt"`,
}

func buildFilteredTransactionQuery(columns []string, opts models.TransactionFilterOptions) sq.SelectBuilder {
	query := sq.
		Select(columns...).
		From(`"transaction"`).
		PlaceholderFormat(sq.Dollar)

	if opts.AccountNumber != "" {
		query = query.Where(sq.Eq{`"accountNumber"`: opts.AccountNumber})
	}

	if opts.Type != "" {
		query = query.Where(sq.Eq{`"type"`: string(opts.Type)})
	}

	if opts.From != nil {
		query = query.Where(sq.GtOrEq{`"effectiveDate"`: *opts.From})
	}

	if opts.To != nil {
		query = query.Where(sq.Lt{`"effectiveDate"`: *opts.To})
	}

	return query
}

func buildListTransactionQuery(opts models.TransactionFilterOptions) (string, []interface{}, error) {
	query := buildFilteredTransactionQuery(transactionColumns, opts).
		OrderBy(`"effectiveDate" asc`, `"seq" asc`)

	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}

	return query.ToSql()
}

func buildCountTransactionQuery(opts models.TransactionFilterOptions) (string, []interface{}, error) {
	return buildFilteredTransactionQuery([]string{"COUNT(1)"}, opts).ToSql()
}
