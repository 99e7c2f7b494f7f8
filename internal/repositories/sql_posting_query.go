package repositories

// query to interest posting database
var (
	// the unique index on ("accountNumber", "periodEnd") is the
	// idempotency guarantee; a rerun trips 23505 instead of double-posting
	queryPostingCreate = `
		INSERT INTO interest_posting(
			"accountNumber", "periodStart", "periodEnd", "amount", "transactionId", "asOfDate", "createdAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, now()
		);
	`

	postingColumns = `
		"id",
		"accountNumber",
		"periodStart",
		"periodEnd",
		"amount",
		"transactionId",
		"asOfDate",
		"createdAt"`

	queryPostingGetOne = `
	SELECT ` + postingColumns + `
	FROM "interest_posting"
	WHERE "accountNumber" = $1 AND "periodEnd" = $2
	LIMIT 1;`

	queryPostingGetList = `
	SELECT ` + postingColumns + `
	FROM "interest_posting"
	WHERE "accountNumber" = $1
	ORDER BY "periodEnd" DESC
	LIMIT $2;`
)
