package repositories

import (
	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	sq "github.com/Masterminds/squirrel"
)

// query to account database
var (
	queryAccountCreate = `
		INSERT INTO account(
			"accountNumber", "ownerId", "currency", "currencyScale", "status", "policy",
			"openingDate", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, now(), now()
		);
	`

	accountColumns = `
		a."id",
		a."accountNumber",
		COALESCE(a."ownerId", '') as "ownerId",
		COALESCE(a."currency", '') as "currency",
		a."currencyScale",
		COALESCE(a."status", '') as "status",
		a."policy",
		a."openingDate",
		a."activationDate",
		a."lastPostedDate",
		a."closedDate",
		a."createdAt",
		a."updatedAt"`

	queryAccountGetOneByAccountNumber = `
	SELECT ` + accountColumns + `
	FROM "account" a
	WHERE a."accountNumber" = $1
	LIMIT 1;`

	queryAccountGetOneForUpdate = `
	SELECT ` + accountColumns + `
	FROM "account" a
	WHERE a."accountNumber" = $1
	FOR UPDATE;`

	queryAccountUpdate = `
	UPDATE "account"
	SET
		"status" = $1,
		"activationDate" = $2,
		"lastPostedDate" = $3,
		"closedDate" = $4,
		"updatedAt" = now()
	WHERE "accountNumber" = $5;`

	// the WHERE guard makes a stale writer a no-op instead of a regression
	queryAccountUpdateLastPostedDate = `
	UPDATE "account"
	SET
		"lastPostedDate" = $1,
		"updatedAt" = now()
	WHERE "accountNumber" = $2
		AND ("lastPostedDate" IS NULL OR "lastPostedDate" <= $1);`

	queryAccountListActiveNumbers = `
	SELECT
		"accountNumber"
	FROM "account"
	WHERE "status" = 'active' AND "accountNumber" > $1
	ORDER BY "accountNumber"
	LIMIT $2;`
)

func buildFilteredAccountQuery(columns []string, opts models.AccountFilterOptions) sq.SelectBuilder {
	query := sq.
		Select(columns...).
		From(`"account" a`).
		PlaceholderFormat(sq.Dollar)

	if opts.OwnerDateOfBirth != nil {
		query = query.
			Join(`"owner" o ON o."ownerId" = a."ownerId"`).
			Where(sq.Eq{`o."dateOfBirth"`: *opts.OwnerDateOfBirth})
	}

	if opts.AccountNumber != "" {
		query = query.Where(sq.Eq{`a."accountNumber"`: opts.AccountNumber})
	}

	if opts.OwnerID != "" {
		query = query.Where(sq.Eq{`a."ownerId"`: opts.OwnerID})
	}

	if opts.Status != "" {
		query = query.Where(sq.Eq{`a."status"`: string(opts.Status)})
	}

	return query
}

func buildListAccountQuery(opts models.AccountFilterOptions) (string, []interface{}, error) {
	columns := []string{
		`a."id"`,
		`a."accountNumber"`,
		`COALESCE(a."ownerId", '') as "ownerId"`,
		`COALESCE(a."currency", '') as "currency"`,
		`a."currencyScale"`,
		`COALESCE(a."status", '') as "status"`,
		`a."policy"`,
		`a."openingDate"`,
		`a."activationDate"`,
		`a."lastPostedDate"`,
		`a."closedDate"`,
		`a."createdAt"`,
		`a."updatedAt"`,
	}

	query := buildFilteredAccountQuery(columns, opts)

	// key(input from user), val(column db)
	sortColumnMap := map[string]string{
		"createdAt":     `a."id"`,
		"updatedAt":     `a."updatedAt"`,
		"accountNumber": `a."accountNumber"`,
	}
	sortColumn := sortColumnMap[opts.SortBy]
	if sortColumn == "" {
		sortColumn = `a."id"`
	}

	sortDirection := opts.Sort
	if sortDirection != "desc" && sortDirection != "asc" {
		sortDirection = "asc"
	}

	query = query.OrderBy(sortColumn + " " + sortDirection)

	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}

	return query.ToSql()
}

func buildCountAccountQuery(opts models.AccountFilterOptions) (string, []interface{}, error) {
	return buildFilteredAccountQuery([]string{"COUNT(1)"}, opts).ToSql()
}
