package booking

import (
	"errors"
	"time"

	"room-booking/internal/pkg/clock"
)

var ErrSlotTaken = errors.New("time range overlaps an existing booking")

type Booking struct {
	id        int64
	owner     Owner
	month     Month
	day       Day
	slot      TimeRange
	createdAt time.Time
}

// NewBooking builds an unsaved booking; the store assigns the id.
func NewBooking(clk clock.Clock, owner Owner, month Month, day Day, slot TimeRange) (*Booking, error) {
	if owner.Name() == "" {
		return nil, ErrEmptyName
	}
	if owner.Room() == "" {
		return nil, ErrEmptyRoom
	}
	if _, err := NewDay(day.Int()); err != nil {
		return nil, err
	}
	if !AllowedRange(slot.Start(), slot.End()) {
		return nil, ErrOutsideWindow
	}

	return &Booking{
		owner:     owner,
		month:     month,
		day:       day,
		slot:      slot,
		createdAt: clk.Now(),
	}, nil
}

func ReconstructBooking(id int64, owner Owner, month Month, day Day, slot TimeRange, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		owner:     owner,
		month:     month,
		day:       day,
		slot:      slot,
		createdAt: createdAt,
	}
}

func (b *Booking) WithID(id int64) *Booking {
	cp := *b
	cp.id = id
	return &cp
}

func (b *Booking) IsOwnedBy(o Owner) bool {
	return b.owner == o
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) Owner() Owner         { return b.owner }
func (b *Booking) Month() Month         { return b.month }
func (b *Booking) Day() Day             { return b.day }
func (b *Booking) Slot() TimeRange      { return b.slot }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UserCount is one row of the most-frequent-users leaderboard.
type UserCount struct {
	UserName string
	Count    int
}
