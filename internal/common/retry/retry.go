package retry

import (
	"context"

	"bitbucket.org/Amartha/go-savings-engine/internal/config"

	"github.com/cenkalti/backoff/v4"
)

const DefaultMaxRetries uint64 = 3

// Retryer retries transient storage failures with exponential backoff.
// Permanent errors wrapped by StopRetryWithErr stop the loop immediately.
type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime < 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

// Retry runs operation until it succeeds, the attempt budget is spent, or
// the context is done. The last error is returned.
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	// a window shorter than the default first interval would stop the
	// loop before any retry, so keep the first interval well inside it
	if r.ebCfg.MaxBackoffTime > 0 && eb.InitialInterval > r.ebCfg.MaxBackoffTime/10 {
		eb.InitialInterval = r.ebCfg.MaxBackoffTime / 10
		eb.MaxInterval = r.ebCfg.MaxBackoffTime
	}

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
}

// StopRetryWithErr marks err permanent so the retry loop returns it at once.
// Call it inside the operation func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
