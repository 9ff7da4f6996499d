package shared

import (
	"context"
	"strconv"
	"time"

	"room-booking/internal/domain/booking"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

// BookingStore persists bookings and answers overlap queries.
//
// Add and IsBusy are independent statements: callers that need the no-overlap
// invariant under concurrent writers use Reserve, which performs both atomically.
type BookingStore interface {
	Add(ctx context.Context, b *booking.Booking) (int64, error)
	IsBusy(ctx context.Context, month booking.Month, day booking.Day, r booking.TimeRange) (bool, error)
	Reserve(ctx context.Context, b *booking.Booking) (int64, error)

	BookingsForUser(ctx context.Context, owner booking.Owner) ([]*booking.Booking, error)
	BookingsForDate(ctx context.Context, month booking.Month, day booking.Day) ([]*booking.Booking, error)
	AllBookings(ctx context.Context) ([]*booking.Booking, error)
	TopUsers(ctx context.Context, limit int) ([]booking.UserCount, error)

	Delete(ctx context.Context, id int64) (bool, error)
	DeleteOwned(ctx context.Context, id int64, owner booking.Owner) (bool, error)

	Close() error
}

type EventType string

const (
	EventBookingCreated  EventType = "booking.created"
	EventBookingCanceled EventType = "booking.canceled"
)

type BookingEvent struct {
	Type       EventType `json:"type"`
	BookingID  int64     `json:"booking_id"`
	UserName   string    `json:"user_name,omitempty"`
	UserRoom   string    `json:"user_room,omitempty"`
	Month      string    `json:"month,omitempty"`
	Day        int       `json:"day,omitempty"`
	Start      string    `json:"start,omitempty"`
	End        string    `json:"end,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Key groups events of the same calendar day onto one partition.
func (e BookingEvent) Key() string {
	if e.Month == "" {
		return "booking"
	}
	return e.Month + "/" + strconv.Itoa(e.Day)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev BookingEvent) error
}
