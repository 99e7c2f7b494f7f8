package services

import (
	"bitbucket.org/Amartha/go-savings-engine/internal/common/idgenerator"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/metrics"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/publisher"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/retry"
	"bitbucket.org/Amartha/go-savings-engine/internal/config"
	"bitbucket.org/Amartha/go-savings-engine/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	postingPub publisher.Publisher

	idgenerator idgenerator.Generator
	retryer     retry.Retryer
	metrics     metrics.Metrics

	common service

	Account     *account
	Transaction *transaction
	Posting     *posting
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	postingPub publisher.Publisher,
	idgenerator idgenerator.Generator,
	retryer retry.Retryer,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:        conf,
		sqlRepo:     sqlRepo,
		cacheRepo:   cacheRepo,
		postingPub:  postingPub,
		idgenerator: idgenerator,
		retryer:     retryer,
		metrics:     metrics,
	}
	srv.common.srv = srv
	srv.Account = (*account)(&srv.common)
	srv.Transaction = (*transaction)(&srv.common)
	srv.Posting = (*posting)(&srv.common)

	return srv
}
