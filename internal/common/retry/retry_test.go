package retry_test

import (
	"context"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/retry"
	"bitbucket.org/Amartha/go-savings-engine/internal/config"

	"github.com/stretchr/testify/assert"
)

func init() {
	log.InitForTest()
}

func Test_Retry_ExponentialBackoff(t *testing.T) {
	t.Run("success - operation runs once", func(t *testing.T) {
		var attempts int
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries:     2,
			MaxBackoffTime: 50 * time.Millisecond,
		})

		err := retryer.Retry(context.Background(), func() error {
			attempts++
			return nil
		})

		assert.Nil(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("failed - attempts exhausted", func(t *testing.T) {
		var attempts int
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries:     2,
			MaxBackoffTime: 50 * time.Millisecond,
		})

		err := retryer.Retry(context.Background(), func() error {
			attempts++
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 3, attempts)
	})

	t.Run("failed - short backoff window still spends every attempt", func(t *testing.T) {
		var attempts int
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries:     2,
			MaxBackoffTime: 10 * time.Millisecond,
		})

		err := retryer.Retry(context.Background(), func() error {
			attempts++
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 3, attempts)
	})

	t.Run("success - transient failure then recovery", func(t *testing.T) {
		var attempts int
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries:     3,
			MaxBackoffTime: 50 * time.Millisecond,
		})

		err := retryer.Retry(context.Background(), func() error {
			attempts++
			if attempts < 2 {
				return assert.AnError
			}
			return nil
		})

		assert.Nil(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("success - force stop retrying", func(t *testing.T) {
		var attempts int
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries:     5,
			MaxBackoffTime: 50 * time.Millisecond,
		})

		err := retryer.Retry(context.Background(), func() error {
			attempts++
			return retryer.StopRetryWithErr(assert.AnError)
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, attempts)
	})

	t.Run("failed - context cancelled", func(t *testing.T) {
		retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
			MaxRetries:     10,
			MaxBackoffTime: time.Second,
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := retryer.Retry(ctx, func() error {
			return assert.AnError
		})

		assert.NotNil(t, err)
	})
}
