package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/clients/kafka"
	"max.ks1230/expense-tracker/internal/clients/tg"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

func main() {
	logger.Info("Reporter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	traceCloser, err := tracing.Init("expense-tracker-reporter")
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer traceCloser.Close()

	db, err := storage.NewPostgresStore(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres:", zap.Error(err))
	}

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	generator := reports.NewGenerator(conf.App(), storage.NewRepository(db))

	consumer, err := kafka.NewConsumer(conf.Kafka(), generator, client)
	if err != nil {
		logger.Fatal("failed to init kafka consumer:", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Fatal("failed to start consuming", zap.Error(err))
	}
}
