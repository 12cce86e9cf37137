package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"pms/config"
	"pms/di"
	"pms/infras/kafka"
	"pms/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.InitLoggerFor(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()

	log.Info().
		Str("group", cfg.Kafka.ConsumerGroup).
		Strs("topics", []string{cfg.Kafka.Topics.Booking, cfg.Kafka.Topics.Notification}).
		Msg("Starting worker")

	err := worker.Run(ctx)

	if closeErr := worker.Close(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("Failed to close worker")
	}

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		log.Info().Msg("Worker stopped")
	case errors.Is(err, kafka.ErrDisabled):
		log.Warn().Msg("Kafka is disabled, nothing to consume")
	default:
		logger.ErrorWithStack(err)
		os.Exit(1)
	}
}
