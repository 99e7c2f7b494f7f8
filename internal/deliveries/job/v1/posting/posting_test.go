package posting

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"
	"bitbucket.org/Amartha/go-savings-engine/internal/services/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func Test_Routes_RunDailyPosting(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockPostingService := mock.NewMockPostingService(mockCtrl)

	routes := Routes(mockPostingService)
	fn, ok := routes["RunDailyPosting"]
	require.True(t, ok)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockPostingService.EXPECT().
			RunPostingBatch(gomock.Any(), date).
			Return(models.PostingReport{AsOfDate: date, Posted: 3}, nil)

		require.NoError(t, fn(context.Background(), date))
	})

	t.Run("error ledger unreachable", func(t *testing.T) {
		mockPostingService.EXPECT().
			RunPostingBatch(gomock.Any(), date).
			Return(models.PostingReport{}, common.ErrLedgerUnreachable)

		err := fn(context.Background(), date)
		require.ErrorIs(t, err, common.ErrLedgerUnreachable)
	})

	t.Run("error passthrough", func(t *testing.T) {
		boom := errors.New("boom")
		mockPostingService.EXPECT().
			RunPostingBatch(gomock.Any(), date).
			Return(models.PostingReport{}, boom)

		require.ErrorIs(t, fn(context.Background(), date), boom)
	})
}
