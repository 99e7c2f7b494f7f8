package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"
)

type OwnerRepository interface {
	Upsert(ctx context.Context, in models.Owner) (err error)
	GetOne(ctx context.Context, ownerID string) (result models.Owner, err error)
}

type ownerRepository sqlRepo

var _ OwnerRepository = (*ownerRepository)(nil)

func (or *ownerRepository) Upsert(ctx context.Context, in models.Owner) (err error) {
	db := or.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryOwnerUpsert,
		in.OwnerID,
		in.DisplayName,
		in.DateOfBirth,
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

func (or *ownerRepository) GetOne(ctx context.Context, ownerID string) (result models.Owner, err error) {
	db := or.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryOwnerGetOne, ownerID).
		Scan(&result.OwnerID, &result.DisplayName, &result.DateOfBirth)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrDataNotFound
	}
	return
}
