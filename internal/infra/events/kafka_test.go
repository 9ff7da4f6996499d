//go:build unit

package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs     []kafka.Message
	writeErr error
	closed   int

	ctxErr      error
	hasDeadline bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.ctxErr = ctx.Err()
	_, w.hasDeadline = ctx.Deadline()
	if w.writeErr != nil {
		return w.writeErr
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed++
	return nil
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func sampleEvent() shared.BookingEvent {
	return shared.BookingEvent{
		Type:       shared.EventBookingCreated,
		BookingID:  17,
		UserName:   "Ann",
		UserRoom:   "Room 12",
		Month:      "Ноябрь 2025",
		Day:        3,
		Start:      "09:00",
		End:        "11:00",
		OccurredAt: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w, "bookings")

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "Ноябрь 2025/3", string(msg.Key))
	assert.Equal(t, "booking.created", headerValue(msg, HeaderEventType))
	assert.NotEmpty(t, headerValue(msg, HeaderEventID))
	assert.True(t, msg.Time.Equal(sampleEvent().OccurredAt))

	var decoded shared.BookingEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, int64(17), decoded.BookingID)
	assert.Equal(t, "09:00", decoded.Start)
}

func TestKafkaPublisher_OutlivesRequestContext(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w, "bookings")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Publish(ctx, sampleEvent()))
	require.Len(t, w.msgs, 1)
	assert.NoError(t, w.ctxErr)
	assert.True(t, w.hasDeadline)
}

func TestNewKafkaPublisher_AsyncWriter(t *testing.T) {
	p, err := NewKafkaPublisher(config.KafkaConfig{
		Brokers:        []string{"localhost:9092"},
		Topic:          "bookings",
		MaxAttempts:    1,
		PublishTimeout: 500 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.True(t, w.Async)
	assert.NotNil(t, w.Completion)
	assert.Equal(t, 500*time.Millisecond, p.timeout)
}

func TestKafkaPublisher_EventIDsAreUnique(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w, "bookings")

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	require.NoError(t, p.Publish(context.Background(), sampleEvent()))

	assert.NotEqual(t, headerValue(w.msgs[0], HeaderEventID), headerValue(w.msgs[1], HeaderEventID))
}

func TestKafkaPublisher_CancelEventUsesFallbackKey(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w, "bookings")

	ev := shared.BookingEvent{Type: shared.EventBookingCanceled, BookingID: 4, OccurredAt: time.Now()}
	require.NoError(t, p.Publish(context.Background(), ev))

	assert.Equal(t, "booking", string(w.msgs[0].Key))
	assert.Equal(t, "booking.canceled", headerValue(w.msgs[0], HeaderEventType))
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &recordingWriter{writeErr: errors.New("broker unavailable")}
	p := newKafkaPublisher(w, "bookings")

	err := p.Publish(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
}

func TestKafkaPublisher_Close(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w, "bookings")

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, w.closed)

	err := p.Publish(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, ErrPublisherClosed)
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	_, err := NewKafkaPublisher(config.KafkaConfig{Topic: "bookings"})
	assert.Error(t, err)

	_, err = NewKafkaPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)

	p, err := NewKafkaPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "bookings", MaxAttempts: 1})
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))

	assert.Contains(t, buf.String(), `"type":"booking.created"`)
	assert.Contains(t, buf.String(), `"booking_id":17`)
}
