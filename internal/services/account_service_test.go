package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"
	"bitbucket.org/Amartha/go-savings-engine/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountService_Create(t *testing.T) {
	validIn := models.CreateAccount{
		AccountNumber: "SA-0001",
		OwnerID:       "CLT-001",
		Currency:      "IDR",
		CurrencyScale: 2,
		OpeningDate:   time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
		Policy:        monthlyPolicy(),
	}

	tests := []struct {
		name    string
		in      models.CreateAccount
		doMock  func(h testServiceHelper)
		wantErr error
	}{
		{
			name: "success truncates the opening date",
			in:   validIn,
			doMock: func(h testServiceHelper) {
				h.mockAccountRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.CreateAccount) error {
						assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), in.OpeningDate)
						return nil
					})
			},
		},
		{
			name: "invalid policy never reaches storage",
			in: func() models.CreateAccount {
				in := validIn
				in.Policy.CompoundingPeriod = models.PERIOD_TYPE_ANNUAL
				return in
			}(),
			doMock:  func(h testServiceHelper) {},
			wantErr: common.ErrInvalidPolicy,
		},
		{
			name: "duplicate account number",
			in:   validIn,
			doMock: func(h testServiceHelper) {
				h.mockAccountRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(common.ErrAccountAlreadyExists)
			},
			wantErr: common.ErrAccountAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h)

			out, err := h.accountService.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.in.AccountNumber, out.AccountNumber)
		})
	}
}

func TestAccountService_RegisterOwner(t *testing.T) {
	h := serviceTestHelper(t)

	h.mockOwnerRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.Owner) error {
			assert.Equal(t, time.Date(1995, time.June, 1, 0, 0, 0, 0, time.UTC), in.DateOfBirth)
			return nil
		})

	err := h.accountService.RegisterOwner(context.Background(), models.Owner{
		OwnerID:     "CLT-001",
		DisplayName: "Siti Rahma",
		DateOfBirth: time.Date(1995, time.June, 1, 13, 45, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestAccountService_Activate(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectAtomic(1)

	approved := activeAccount("SA-0001", nil)
	approved.Status = models.AccountStatusApproved
	approved.ActivationDate = nil

	h.mockAccountRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), "SA-0001").
		Return(approved, nil)
	h.mockAccountRepository.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc models.Account) error {
			assert.Equal(t, models.AccountStatusActive, acc.Status)
			require.NotNil(t, acc.ActivationDate)
			assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), *acc.ActivationDate)
			return nil
		})

	result, err := h.accountService.Activate(context.Background(), "SA-0001",
		time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, result.Status)
}

func TestAccountService_Activate_InvalidTransition(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectAtomic(1)

	h.mockAccountRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), "SA-0001").
		Return(activeAccount("SA-0001", nil), nil)

	_, err := h.accountService.Activate(context.Background(), "SA-0001",
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, common.ErrInvalidLifecycleChange)
}

func TestAccountService_Approve_NotFound(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectAtomic(1)

	h.mockAccountRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), "SA-0404").
		Return(models.Account{}, common.ErrAccountNotExists)

	_, err := h.accountService.Approve(context.Background(), "SA-0404")
	assert.ErrorIs(t, err, common.ErrAccountNotExists)
}

// Closing mid-period posts one final pro-rated period in the same unit
// that records the closure.
func TestAccountService_Close(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectAtomic(1)

	acc := activeAccount("SA-0001", datePtr(2024, time.March, 1))
	closure := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	periodStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	// the closure day itself accrues, so the period runs through March 11
	periodEnd := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

	h.mockAccountRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), "SA-0001").
		Return(acc, nil)

	h.mockTrxRepository.EXPECT().
		GetBalancePoints(gomock.Any(), "SA-0001", periodStart, periodEnd).
		Return([]models.BalancePoint{
			{Date: periodStart, Balance: decimal.RequireFromString("1000")},
		}, nil)

	h.mockIDGenerator.EXPECT().
		Generate(models.InterestPostingIDPrefix).
		Return("TRX-INT-001")

	h.mockTrxRepository.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trx *models.Transaction) error {
			assert.Equal(t, models.TransactionTypeInterestPosting, trx.Type)
			assert.Equal(t, models.ClosurePostingDescription, trx.Description)
			assert.Equal(t, closure, trx.EffectiveDate)
			// 11 days at 0.0365/365 on 1000
			assert.True(t, trx.Amount.Equal(decimal.RequireFromString("1.10")), trx.Amount.String())
			return nil
		})

	h.mockPostingRepository.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.InterestPosting) error {
			assert.Equal(t, periodStart, in.PeriodStart)
			assert.Equal(t, periodEnd, in.PeriodEnd)
			assert.Equal(t, "TRX-INT-001", in.TransactionID)
			return nil
		})

	h.mockAccountRepository.EXPECT().
		UpdateLastPostedDate(gomock.Any(), "SA-0001", periodEnd).
		Return(nil)

	h.mockAccountRepository.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated models.Account) error {
			assert.Equal(t, models.AccountStatusClosed, updated.Status)
			require.NotNil(t, updated.ClosedDate)
			assert.Equal(t, closure, *updated.ClosedDate)
			require.NotNil(t, updated.LastPostedDate)
			assert.Equal(t, periodEnd, *updated.LastPostedDate)
			return nil
		})

	h.mockPostingPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	h.mockCacheRepository.EXPECT().
		Del(gomock.Any(), "summary:SA-0001").
		Return(nil)

	result, err := h.accountService.Close(context.Background(), "SA-0001", closure)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusClosed, result.Status)
}

func TestAccountService_Close_NotActive(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectAtomic(1)

	acc := activeAccount("SA-0001", nil)
	acc.Status = models.AccountStatusClosed

	h.mockAccountRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), "SA-0001").
		Return(acc, nil)

	_, err := h.accountService.Close(context.Background(), "SA-0001",
		time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, common.ErrInvalidLifecycleChange)
}

func TestAccountService_GetList(t *testing.T) {
	t.Run("returns rows with total", func(t *testing.T) {
		h := serviceTestHelper(t)

		opts := models.AccountFilterOptions{Status: models.AccountStatusActive}
		h.mockAccountRepository.EXPECT().
			GetList(gomock.Any(), opts).
			Return([]models.Account{activeAccount("SA-0001", nil)}, nil)
		h.mockAccountRepository.EXPECT().
			CountAll(gomock.Any(), opts).
			Return(7, nil)

		accounts, total, err := h.accountService.GetList(context.Background(), opts)
		require.NoError(t, err)
		assert.Len(t, accounts, 1)
		assert.Equal(t, 7, total)
	})

	t.Run("empty result skips the count", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockAccountRepository.EXPECT().
			GetList(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		accounts, total, err := h.accountService.GetList(context.Background(), models.AccountFilterOptions{})
		require.NoError(t, err)
		assert.Empty(t, accounts)
		assert.Zero(t, total)
	})
}

func TestAccountService_GetSummary(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		h := serviceTestHelper(t)

		cached, err := json.Marshal(models.AccountSummary{
			AccountNumber: "SA-0001",
			Status:        models.AccountStatusActive,
			Balance:       decimal.RequireFromString("1500.00"),
		})
		require.NoError(t, err)

		h.mockCacheRepository.EXPECT().
			Get(gomock.Any(), "summary:SA-0001").
			Return(string(cached), nil)

		result, err := h.accountService.GetSummary(context.Background(), "SA-0001")
		require.NoError(t, err)
		assert.True(t, result.Balance.Equal(decimal.RequireFromString("1500.00")))
	})

	t.Run("cache miss rebuilds from the ledger", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockCacheRepository.EXPECT().
			Get(gomock.Any(), "summary:SA-0001").
			Return("", common.ErrDataNotFound)
		h.mockAccountRepository.EXPECT().
			GetOneByAccountNumber(gomock.Any(), "SA-0001").
			Return(activeAccount("SA-0001", datePtr(2024, time.March, 1)), nil)
		h.mockTrxRepository.EXPECT().
			GetTail(gomock.Any(), "SA-0001").
			Return(models.LedgerTail{Balance: decimal.RequireFromString("250.50")}, nil)
		h.mockCacheRepository.EXPECT().
			Set(gomock.Any(), "summary:SA-0001", gomock.Any(), h.config.Posting.SummaryCacheTTL).
			Return(nil)

		result, err := h.accountService.GetSummary(context.Background(), "SA-0001")
		require.NoError(t, err)
		assert.Equal(t, models.AccountStatusActive, result.Status)
		assert.True(t, result.Balance.Equal(decimal.RequireFromString("250.50")))
		require.NotNil(t, result.LastPostedDate)
	})

	t.Run("unknown account", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockCacheRepository.EXPECT().
			Get(gomock.Any(), "summary:SA-0404").
			Return("", common.ErrDataNotFound)
		h.mockAccountRepository.EXPECT().
			GetOneByAccountNumber(gomock.Any(), "SA-0404").
			Return(models.Account{}, common.ErrAccountNotExists)

		_, err := h.accountService.GetSummary(context.Background(), "SA-0404")
		assert.ErrorIs(t, err, common.ErrAccountNotExists)
	})
}

func TestAccountService_Close_RollsBackOnUpdateFailure(t *testing.T) {
	h := serviceTestHelper(t)

	boom := errors.New("write failed")

	h.mockSQLRepository.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
			err := steps(ctx, h.mockSQLRepository)
			require.Error(t, err)
			return err
		})

	acc := activeAccount("SA-0001", datePtr(2024, time.April, 1))

	h.mockAccountRepository.EXPECT().
		GetOneForUpdate(gomock.Any(), "SA-0001").
		Return(acc, nil)
	h.mockAccountRepository.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(boom)

	// closure date before the accrual start: nothing accrues, no posting
	_, err := h.accountService.Close(context.Background(), "SA-0001",
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, boom)
}
