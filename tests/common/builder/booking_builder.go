//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra/repository"
	"room-booking/internal/pkg/clock"
)

type BookingBuilder struct {
	ID        int64
	UserName  string
	UserRoom  string
	Month     string
	Day       int
	Start     string
	End       string
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserName:  "Ann",
		UserRoom:  "Room 12",
		Month:     booking.DefaultMonths[0],
		Day:       3,
		Start:     "09:00",
		End:       "11:00",
		CreatedAt: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain returns an unsaved booking, or a stored one when ID is set.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	owner, err := booking.NewOwner(b.UserName, b.UserRoom)
	if err != nil {
		return nil, err
	}
	r, err := booking.ParseTimeRange(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	bk, err := booking.NewBooking(clock.NewMockClock(b.CreatedAt), owner, booking.Month(b.Month), booking.Day(b.Day), r)
	if err != nil {
		return nil, err
	}
	if b.ID != 0 {
		bk = bk.WithID(b.ID)
	}
	return bk, nil
}

// MustBuildDomain panics on invalid builder state; for table setup only.
func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildRow() repository.BookingRow {
	return repository.BookingRow{
		ID:        b.ID,
		UserName:  b.UserName,
		UserRoom:  b.UserRoom,
		Month:     b.Month,
		Day:       int32(b.Day),
		Start:     b.Start,
		End:       b.End,
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) Owner() booking.Owner {
	o, err := booking.NewOwner(b.UserName, b.UserRoom)
	if err != nil {
		panic(err)
	}
	return o
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUser(name, room string) *BookingBuilder {
	b.UserName = name
	b.UserRoom = room
	return b
}

func (b *BookingBuilder) WithDate(month string, day int) *BookingBuilder {
	b.Month = month
	b.Day = day
	return b
}

func (b *BookingBuilder) WithRange(start, end string) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.CreatedAt = createdAt
	return b
}
