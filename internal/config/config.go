package config

import (
	"time"
)

type (
	Config struct {
		App       App      `json:"app" mapstructure:"app"`
		Postgres  Postgres `json:"postgres" mapstructure:"postgres"`
		Redis     Redis    `json:"redis" mapstructure:"redis"`
		SecretKey string   `json:"secret_key" mapstructure:"secret_key"`

		Posting            PostingConfig            `json:"posting" mapstructure:"posting"`
		MessageBroker      MessageBroker            `json:"message_broker" mapstructure:"message_broker"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		DbSchema          string `json:"db_schema" mapstructure:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"maxIdleConnections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime" mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
	}

	// PostingConfig bounds a single posting run. Worker concurrency caps
	// parallel per-account units; the account timeout marks one account
	// Failed without stalling the batch.
	PostingConfig struct {
		WorkerConcurrency int           `json:"worker_concurrency" mapstructure:"worker_concurrency"`
		AccountTimeout    time.Duration `json:"account_timeout" mapstructure:"account_timeout"`
		AccountLockTTL    time.Duration `json:"account_lock_ttl" mapstructure:"account_lock_ttl"`
		BatchSize         int           `json:"batch_size" mapstructure:"batch_size"`
		SummaryCacheTTL   time.Duration `json:"summary_cache_ttl" mapstructure:"summary_cache_ttl"`
	}

	MessageBroker struct {
		Brokers             []string `json:"brokers" mapstructure:"brokers"`
		TopicInterestPosted string   `json:"topic_interest_posted" mapstructure:"topic_interest_posted"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
	}
)
