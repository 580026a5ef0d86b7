package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/kafka"
	"max.ks1230/expense-tracker/internal/clients/tg"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

func main() {
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	traceCloser, err := tracing.Init("expense-tracker-bot")
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer traceCloser.Close()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	store := newStore(conf)
	repo := storage.NewRepository(store)
	generator := reports.NewGenerator(conf.App(), repo)

	var reportCache *cache.MemcacheClient
	if hosts := conf.Memcached().Hosts(); len(hosts) > 0 {
		reportCache, err = cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcached:", zap.Error(err))
		}
	}

	var producer *kafka.Producer
	if brokers := conf.Kafka().Brokers(); len(brokers) > 0 {
		producer, err = kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
	}

	msgService := newService(client, repo, generator, reportCache, producer, conf)

	if addr := conf.App().MetricsAddr(); addr != "" {
		go serveMetrics(addr)
	}

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client.ListenUpdates(ctx, msgService)
}

// newService keeps nil optional collaborators as untyped nils so the
// handler's nil checks hold.
func newService(client *tg.Client, repo *storage.Repository, generator *reports.Generator,
	reportCache *cache.MemcacheClient, producer *kafka.Producer, conf *config.Service) *messages.Service {
	var cacheArg messages.ReportCache
	if reportCache != nil {
		cacheArg = reportCache
	}
	var producerArg messages.ReportProducer
	if producer != nil {
		producerArg = producer
	}
	return messages.NewService(client, repo, generator, cacheArg, producerArg, conf.App())
}

func newStore(conf *config.Service) storage.KVStore {
	if conf.Postgres().Host() == "" {
		logger.Warn("no postgres configured, expenses will not survive a restart")
		return storage.NewInMemStore()
	}

	store, err := storage.NewPostgresStore(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres:", zap.Error(err))
	}
	return store
}

func serveMetrics(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
