package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidClockTime = errors.New("invalid clock time")
	ErrInvalidRange     = errors.New("start time must be before end time")
	ErrMalformedRange   = errors.New("range must look like HH:MM-HH:MM")
	ErrOutsideWindow    = errors.New("range is outside the booking window")
	ErrInvalidMonth     = errors.New("unknown month")
	ErrInvalidDay       = errors.New("day must be between 1 and 31")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyRoom        = errors.New("room is required")
)

const clockLayout = "15:04"

// ClockTime is a wall-clock time of day with minute granularity.
type ClockTime struct {
	minutes int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: hour*60 + minute}, nil
}

// ParseClockTime accepts "HH:MM" (a single-digit hour is tolerated).
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}, nil
}

func mustClockTime(hour, minute int) ClockTime {
	ct, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return ct
}

func (c ClockTime) Hour() int    { return c.minutes / 60 }
func (c ClockTime) Minute() int  { return c.minutes % 60 }
func (c ClockTime) Minutes() int { return c.minutes }

func (c ClockTime) Before(other ClockTime) bool { return c.minutes < other.minutes }
func (c ClockTime) After(other ClockTime) bool  { return c.minutes > other.minutes }
func (c ClockTime) Equal(other ClockTime) bool  { return c.minutes == other.minutes }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Global booking window: [07:00, 23:00].
var (
	WindowStart = mustClockTime(7, 0)
	WindowEnd   = mustClockTime(23, 0)
)

// AllowedRange reports whether 07:00 <= start < end <= 23:00.
func AllowedRange(start, end ClockTime) bool {
	return !start.Before(WindowStart) && start.Before(end) && !end.After(WindowEnd)
}

// TimeRange is the half-open interval [start, end).
type TimeRange struct {
	start ClockTime
	end   ClockTime
}

func NewTimeRange(start, end ClockTime) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{start: start, end: end}, nil
}

// ParseTimeRange builds a range from separate "HH:MM" strings.
func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}

// ParseRange parses a custom "HH:MM-HH:MM" range. Only the shape is checked here;
// ordering and window bounds are left to ValidateWindow.
func ParseRange(s string) (ClockTime, ClockTime, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return ClockTime{}, ClockTime{}, ErrMalformedRange
	}
	start, err := ParseClockTime(parts[0])
	if err != nil {
		return ClockTime{}, ClockTime{}, ErrMalformedRange
	}
	end, err := ParseClockTime(parts[1])
	if err != nil {
		return ClockTime{}, ClockTime{}, ErrMalformedRange
	}
	return start, end, nil
}

// ValidateWindow turns a (start, end) pair into a range inside the booking window.
func ValidateWindow(start, end ClockTime) (TimeRange, error) {
	if !AllowedRange(start, end) {
		return TimeRange{}, ErrOutsideWindow
	}
	return NewTimeRange(start, end)
}

func (r TimeRange) Start() ClockTime { return r.start }
func (r TimeRange) End() ClockTime   { return r.end }

func (r TimeRange) Duration() time.Duration {
	return time.Duration(r.end.minutes-r.start.minutes) * time.Minute
}

// Overlaps is true iff the half-open ranges intersect; touching ranges do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func (r TimeRange) String() string {
	return r.start.String() + "-" + r.end.String()
}

// AnyOverlap reports whether candidate intersects any of the existing ranges.
func AnyOverlap(existing []TimeRange, candidate TimeRange) bool {
	for _, r := range existing {
		if candidate.Overlaps(r) {
			return true
		}
	}
	return false
}

type Month string

func (m Month) String() string { return string(m) }

type Day int

func NewDay(d int) (Day, error) {
	if d < 1 || d > 31 {
		return 0, ErrInvalidDay
	}
	return Day(d), nil
}

func (d Day) Int() int { return int(d) }

// Owner identifies who made a booking: a free-text name and a room label.
type Owner struct {
	name string
	room string
}

func NewOwner(name, room string) (Owner, error) {
	name = strings.TrimSpace(name)
	room = strings.TrimSpace(room)
	if name == "" {
		return Owner{}, ErrEmptyName
	}
	if room == "" {
		return Owner{}, ErrEmptyRoom
	}
	return Owner{name: name, room: room}, nil
}

// RoomLabel formats a raw room number the way rooms are stored, e.g. "Room 12".
func RoomLabel(number string) string {
	return "Room " + strings.TrimSpace(number)
}

func (o Owner) Name() string { return o.name }
func (o Owner) Room() string { return o.room }

func (o Owner) WithRoom(room string) (Owner, error) {
	return NewOwner(o.name, room)
}
