package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
)

const defaultPublishTimeout = 2 * time.Second

var ErrPublisherClosed = errors.New("publisher is closed")

// messageWriter is the subset of *kafka.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes booking events to one topic, keyed by calendar day so
// events for the same day stay ordered on a single partition.
//
// The writer is asynchronous: Publish hands the message over and returns, and
// delivery failures are logged from the writer's completion callback.
type KafkaPublisher struct {
	writer  messageWriter
	topic   string
	timeout time.Duration
	closed  bool
	mu      sync.RWMutex
}

func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  cfg.MaxAttempts,
		BatchTimeout: cfg.BatchTimeout,
		Async:        true,
		Completion:   logFailedDeliveries(cfg.Topic),
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			slog.Error("kafka writer error", "detail", fmt.Sprintf(msg, args...))
		}),
	}

	p := newKafkaPublisher(writer, cfg.Topic)
	if cfg.PublishTimeout > 0 {
		p.timeout = cfg.PublishTimeout
	}
	return p, nil
}

func newKafkaPublisher(w messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topic: topic, timeout: defaultPublishTimeout}
}

func logFailedDeliveries(topic string) func([]kafka.Message, error) {
	return func(msgs []kafka.Message, err error) {
		if err == nil {
			return
		}
		for _, m := range msgs {
			slog.Error("failed to deliver booking event",
				"topic", topic, "key", string(m.Key), "error", err.Error())
		}
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev shared.BookingEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	msg, err := buildMessage(ev)
	if err != nil {
		return err
	}
	// The booking is already committed; a canceled request must not drop its event.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", ev.Type, p.topic, err)
	}
	return nil
}

func buildMessage(ev shared.BookingEvent) (kafka.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(ev.Key()),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(uuid.NewString())},
			{Key: HeaderEventType, Value: []byte(ev.Type)},
		},
	}, nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}
