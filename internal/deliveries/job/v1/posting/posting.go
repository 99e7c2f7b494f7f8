package posting

import (
	"context"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/services"
)

type postingHandler struct {
	postingSrv services.PostingService
}

func Routes(ps services.PostingService) map[string]func(ctx context.Context, date time.Time) error {
	handler := postingHandler{postingSrv: ps}

	return map[string]func(ctx context.Context, date time.Time) error{
		"RunDailyPosting": handler.RunDailyPosting,
		// add more job here
	}
}

// RunDailyPosting posts every due interest period across all active
// accounts as of the given business date.
func (ph *postingHandler) RunDailyPosting(ctx context.Context, date time.Time) error {
	report, err := ph.postingSrv.RunPostingBatch(ctx, date)
	if err != nil {
		return err
	}

	log.Info(ctx, "RunDailyPosting",
		log.Int("posted", report.Posted),
		log.Int("skipped", report.Skipped),
		log.Int("failed", report.Failed))

	return nil
}
