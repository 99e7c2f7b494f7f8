package metrics

import (
	"database/sql"
	"fmt"
	"time"

	prometheusmetrics "github.com/deathowl/go-metrics-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	saramaMetrics "github.com/rcrowley/go-metrics"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	SaramaRegistry(name string, flushInterval time.Duration) saramaMetrics.Registry
	PrometheusRegisterer() prometheus.Registerer
	GetPublisherPrometheus() *PublisherPrometheusMetrics
	GetPostingPrometheus() *PostingPrometheusMetrics
	GetLedgerPrometheus() *LedgerPrometheusMetrics
}

type metrics struct {
	reg              prometheus.Registerer
	publisherMetrics *PublisherPrometheusMetrics
	postingMetrics   *PostingPrometheusMetrics
	ledgerMetrics    *LedgerPrometheusMetrics
}

func New() Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer wires the collectors into the given registerer. Tests
// pass a fresh registry so repeated construction never double-registers.
func NewWithRegisterer(reg prometheus.Registerer) Metrics {
	return &metrics{
		reg:              reg,
		publisherMetrics: newPublisherPrometheusMetrics(reg),
		postingMetrics:   newPostingPrometheusMetrics(reg),
		ledgerMetrics:    newLedgerPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) SaramaRegistry(name string, flushInterval time.Duration) saramaMetrics.Registry {
	appMetrics := saramaMetrics.NewPrefixedRegistry(name + "_")
	prometheusClient := prometheusmetrics.NewPrometheusProvider(
		appMetrics, "", "", m.reg, flushInterval,
	)
	go prometheusClient.UpdatePrometheusMetrics()

	return appMetrics
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetPublisherPrometheus() *PublisherPrometheusMetrics {
	return m.publisherMetrics
}

func (m *metrics) GetPostingPrometheus() *PostingPrometheusMetrics {
	return m.postingMetrics
}

func (m *metrics) GetLedgerPrometheus() *LedgerPrometheusMetrics {
	return m.ledgerMetrics
}
