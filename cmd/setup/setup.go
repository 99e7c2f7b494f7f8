package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common/graceful"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/idgenerator"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	cMetrics "bitbucket.org/Amartha/go-savings-engine/internal/common/metrics"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/publisher"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/retry"
	"bitbucket.org/Amartha/go-savings-engine/internal/config"
	"bitbucket.org/Amartha/go-savings-engine/internal/repositories"
	"bitbucket.org/Amartha/go-savings-engine/internal/services"

	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
)

const saramaMetricsFlushInterval = 5 * time.Second

type Setup struct {
	Config    config.Config
	WriteDB   *sql.DB
	ReadDB    *sql.DB
	Cache     *redis.Client
	RepoCache repositories.CacheRepository
	Service   *services.Services
	Metrics   cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	if err = log.Init(cfg.App.Name, cfg.App.Env, cfg.App.LogLevel); err != nil {
		err = fmt.Errorf("failed to init logger: %w", err)
		return
	}

	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	cache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = cache.Ping(ctx).Result()
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

	// register DB write stat prometheus metrics
	err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	// register DB read stat prometheus metrics
	err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	// register redis prometheus metrics
	err = mtc.RegisterRedis(cache, cfg.App.Name, command)
	if err != nil {
		err = fmt.Errorf("failed register redis prometheus: %w", err)
		return
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(cache)

	producer, err := publisher.NewKafkaSyncProducer(
		cfg.MessageBroker.Brokers,
		publisher.WithMetricRegistry(mtc.SaramaRegistry(cfg.App.Name+"-"+command, saramaMetricsFlushInterval)),
	)
	if err != nil {
		err = fmt.Errorf("unable to create kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

	postingPub := publisher.NewPublisher(producer, cfg.MessageBroker.TopicInterestPosted, mtc.GetPublisherPrometheus())

	idGenerator := idgenerator.New()
	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		postingPub,
		idGenerator,
		retryer,
		mtc,
	)

	return &Setup{
		Config:    cfg,
		WriteDB:   writeDB,
		ReadDB:    readDB,
		Cache:     cache,
		RepoCache: cacheRepo,
		Service:   srv,
		Metrics:   mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("postgres", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
