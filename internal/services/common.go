package services

import (
	"errors"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
)

const summaryCacheKeyPrefix = "summary:"

func summaryCacheKey(accountNumber string) string {
	return summaryCacheKeyPrefix + accountNumber
}

// checkDatabaseError normalizes storage not-found errors before they leave
// the service layer. Callers may override the sentinel reported for a miss;
// every other error passes through untouched.
func checkDatabaseError(err error, notFound ...error) error {
	if errors.Is(err, common.ErrNoRows) || errors.Is(err, common.ErrDataNotFound) {
		if len(notFound) > 0 {
			return notFound[0]
		}
		return common.ErrDataNotFound
	}

	return err
}
