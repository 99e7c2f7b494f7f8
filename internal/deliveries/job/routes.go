package job

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/config"
	v1posting "bitbucket.org/Amartha/go-savings-engine/internal/deliveries/job/v1/posting"
	"bitbucket.org/Amartha/go-savings-engine/internal/services"

	"github.com/google/uuid"
)

// Flags carries the worker invocation arguments: which job to run and the
// business date to run it for. An empty date means today.
type Flags struct {
	Version string
	JobName string
	Date    string
}

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: v1posting.Routes(srv.Posting),
		// add other version routes
	}

	return &Job{jobRoutes}
}

func (j *Job) Start(ctx context.Context, flags Flags) {
	fn, ok := j.Routes[flags.Version][flags.JobName]
	if !ok {
		log.Error(ctx, "[JOB] invalid version or job name",
			log.String("version", flags.Version),
			log.String("jobName", flags.JobName))
		return
	}

	ctx = log.SetCorrelationID(ctx, uuid.New().String())

	var (
		runningDate time.Time
		err         error
	)

	defer func() {
		if err != nil {
			log.Error(ctx, "[JOB] finished with error",
				log.String("jobName", flags.JobName),
				log.String("version", flags.Version),
				log.String("date", flags.Date),
				log.Err(err))
			return
		}
		log.Info(ctx, "[JOB] finished",
			log.String("jobName", flags.JobName),
			log.String("version", flags.Version),
			log.String("date", flags.Date))
	}()

	if flags.Date != "" {
		runningDate, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, flags.Date)
		if err != nil {
			err = errors.Join(common.ErrInvalidFormatDate, err)
			return
		}
	} else {
		runningDate = common.TruncateToDay(time.Now().UTC())
	}

	err = fn(ctx, runningDate)
}
