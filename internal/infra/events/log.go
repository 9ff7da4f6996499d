package events

import (
	"context"
	"log/slog"

	"room-booking/internal/usecase/shared"
)

// LogPublisher records events in the application log when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, ev shared.BookingEvent) error {
	p.logger.InfoContext(ctx, "booking event",
		slog.String("type", string(ev.Type)),
		slog.Int64("booking_id", ev.BookingID),
		slog.String("key", ev.Key()),
		slog.String("user_name", ev.UserName),
		slog.String("range", ev.Start+"-"+ev.End),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
