package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/infra/events"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

type closablePublisher interface {
	shared.EventPublisher
	Close() error
}

// NewEventPublisher writes to Kafka when brokers are configured and to the log otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	var publisher closablePublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		logger.Info("publishing booking events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
		publisher = kp
	} else {
		logger.Info("KAFKA_BROKERS is empty, booking events go to the log")
		publisher = events.NewLogPublisher(logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
