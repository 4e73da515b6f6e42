package booking

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/kafka"
	"resort/infras/metrics"
	"resort/infras/otel"
	"resort/internal/domains/booking/model"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const directionConsume = "consume"

// Consumer keeps derived caches in line with booking events published by
// other instances of the API.
type Consumer struct {
	kafka kafka.Client
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(kafka kafka.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) *Consumer {
	return &Consumer{
		kafka: kafka,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Run blocks until ctx is done or the reader fails.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().Str("topic", c.cfg.Kafka.Topics.Booking).Msg("Consuming booking events.")

	return c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.Booking, c.Handle)
}

func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Consume")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[model.Event](message)
	if err != nil {
		metrics.ObserveBookingEvent("unknown", directionConsume, err)

		return fmt.Errorf("failed to decode booking event: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"booking.id":    event.BookingID,
		"booking.event": event.Type,
	})

	namespaces := []string{model.EntityName}
	if event.RoomID != constant.Empty {
		namespaces = append(namespaces, model.AvailabilityNamespace(event.RoomID))
	}

	shared.InvalidateCaches(ctx, c.cache, namespaces...)

	metrics.ObserveBookingEvent(event.Type, directionConsume, nil)

	log.Info().
		Str("booking", event.BookingID).
		Str("event", event.Type).
		Str("status", event.Status).
		Msg("booking event handled")

	return nil
}
