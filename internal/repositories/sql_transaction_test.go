package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/config"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(transactionTestSuite))
}

type transactionTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	mock    sqlmock.Sqlmock
	repo    TransactionRepository
}

func (suite *transactionTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.t = suite.T()
	suite.repo = NewSQLRepository(suite.writeDB, suite.writeDB, cfg).GetTransactionRepository()
}

func (suite *transactionTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *transactionTestSuite) TestRepository_Append() {
	now := time.Now()
	en := &models.Transaction{
		TransactionID: "TRX-1",
		AccountNumber: "SA-0001",
		Type:          models.TransactionTypeDeposit,
		Amount:        decimal.RequireFromString("100.00"),
		EffectiveDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mock.ExpectQuery(regexp.QuoteMeta(appendTrxQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seq", "runningBalance", "createdAt"}).
			AddRow(7, 3, "350.00", now))

	err := suite.repo.Append(context.TODO(), en)
	assert.NoError(suite.t, err)
	assert.Equal(suite.t, uint64(7), en.ID)
	assert.Equal(suite.t, int64(3), en.Seq)
	assert.True(suite.t, en.RunningBalance.Equal(decimal.RequireFromString("350.00")))

	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

func (suite *transactionTestSuite) TestRepository_GetTail() {
	effective := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(regexp.QuoteMeta(getTailQuery)).
		WithArgs("SA-0001").
		WillReturnRows(sqlmock.NewRows([]string{"runningBalance", "effectiveDate"}).
			AddRow("250.75", effective))

	got, err := suite.repo.GetTail(context.TODO(), "SA-0001")
	assert.NoError(suite.t, err)
	assert.True(suite.t, got.Balance.Equal(decimal.RequireFromString("250.75")))
	require.NotNil(suite.t, got.EffectiveDate)
	assert.Equal(suite.t, effective, *got.EffectiveDate)

	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

func (suite *transactionTestSuite) TestRepository_GetTail_EmptyLedger() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(getTailQuery)).
		WithArgs("SA-0001").
		WillReturnRows(sqlmock.NewRows([]string{"runningBalance", "effectiveDate"}).
			AddRow("0", nil))

	got, err := suite.repo.GetTail(context.TODO(), "SA-0001")
	assert.NoError(suite.t, err)
	assert.True(suite.t, got.Balance.IsZero())
	assert.Nil(suite.t, got.EffectiveDate)

	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

// the as-of read must include rows effective on the query date itself
func (suite *transactionTestSuite) TestRepository_GetBalanceAsOf_IncludesQueryDate() {
	asOf := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`"effectiveDate" <= \$2`).
		WithArgs("SA-0001", asOf).
		WillReturnRows(sqlmock.NewRows([]string{"runningBalance"}).AddRow("920.00"))

	got, err := suite.repo.GetBalanceAsOf(context.TODO(), "SA-0001", asOf)
	assert.NoError(suite.t, err)
	assert.True(suite.t, got.Equal(decimal.RequireFromString("920.00")))

	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

func (suite *transactionTestSuite) TestRepository_GetBalanceAsOf_EmptyLedger() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(getBalanceAsOfQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"runningBalance"}).AddRow("0"))

	got, err := suite.repo.GetBalanceAsOf(context.TODO(), "SA-0001", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(suite.t, err)
	assert.True(suite.t, got.IsZero())

	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

func (suite *transactionTestSuite) TestRepository_GetBalancePoints() {
	from := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(regexp.QuoteMeta(getBalanceBeforeQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"runningBalance"}).AddRow("1000.00"))
	suite.mock.ExpectQuery(regexp.QuoteMeta(getBalancePointsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"effectiveDate", "runningBalance"}).
			AddRow(time.Date(2024, time.April, 11, 0, 0, 0, 0, time.UTC), "2000.00"))

	got, err := suite.repo.GetBalancePoints(context.TODO(), "SA-0001", from, to)
	assert.NoError(suite.t, err)

	want := []models.BalancePoint{
		{Date: from, Balance: decimal.RequireFromString("1000.00")},
		{Date: time.Date(2024, time.April, 11, 0, 0, 0, 0, time.UTC), Balance: decimal.RequireFromString("2000.00")},
	}
	assert.True(suite.t, cmp.Equal(want, got, decimalComparer()))

	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}

func (suite *transactionTestSuite) TestRepository_GetList() {
	now := time.Now()
	opts := models.TransactionFilterOptions{
		AccountNumber: "SA-0001",
		Type:          models.TransactionTypeInterestPosting,
		Limit:         20,
	}

	query, _, err := buildListTransactionQuery(opts)
	require.NoError(suite.t, err)

	suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "transactionId", "accountNumber", "type", "amount",
			"effectiveDate", "runningBalance", "seq", "description", "createdAt",
		}).AddRow(
			1, "TRX-INT-1", "SA-0001", "interest_posting", "4.11",
			time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), "1004.11", 4,
			models.InterestPostingDescription, now,
		))

	got, err := suite.repo.GetList(context.TODO(), opts)
	assert.NoError(suite.t, err)
	require.Len(suite.t, got, 1)
	assert.Equal(suite.t, models.TransactionTypeInterestPosting, got[0].Type)
	assert.True(suite.t, got[0].Amount.Equal(decimal.RequireFromString("4.11")))

	assert.NoError(suite.t, suite.mock.ExpectationsWereMet())
}
