package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"resort/config"
	"resort/di"
	"resort/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if !cfg.Kafka.Enable {
		log.Warn().Msg("Kafka is disabled, the booking worker has nothing to consume.")

		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeWorker()
	if err := consumer.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Booking worker failed.")
	}

	log.Info().Msg("Booking worker stopped.")
}
