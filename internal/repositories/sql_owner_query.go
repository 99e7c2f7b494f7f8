package repositories

// query to owner database
var (
	queryOwnerUpsert = `
		INSERT INTO owner(
			"ownerId", "displayName", "dateOfBirth", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, now(), now()
		) ON CONFLICT ("ownerId") DO UPDATE SET
			"displayName" = EXCLUDED."displayName",
			"dateOfBirth" = EXCLUDED."dateOfBirth",
			"updatedAt" = now();
	`

	queryOwnerGetOne = `
	SELECT
		"ownerId",
		COALESCE("displayName", '') as "displayName",
		"dateOfBirth"
	FROM "owner"
	WHERE "ownerId" = $1
	LIMIT 1;`
)
