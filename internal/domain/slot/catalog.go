package slot

import (
	"errors"

	"room-booking/internal/domain/booking"
)

var ErrInvalidDuration = errors.New("duration must be 1, 2 or 3 hours")

type Duration int

const (
	OneHour    Duration = 1
	TwoHours   Duration = 2
	ThreeHours Duration = 3
)

// Template is a bookable (start, end) pair offered by the catalog.
type Template = booking.TimeRange

var (
	twoHourTemplates = []Template{
		hours(7, 9), hours(9, 11), hours(11, 13), hours(13, 15),
		hours(15, 17), hours(17, 19), hours(19, 21), hours(21, 23),
	}

	// 22:00-23:00 is not covered by any three-hour template.
	threeHourTemplates = []Template{
		hours(7, 10), hours(10, 13), hours(13, 16), hours(16, 19), hours(19, 22),
	}
)

func hours(start, end int) Template {
	s, _ := booking.NewClockTime(start, 0)
	e, _ := booking.NewClockTime(end, 0)
	r, err := booking.NewTimeRange(s, e)
	if err != nil {
		panic(err)
	}
	return r
}

// ForDuration returns the catalog templates for a duration in hours.
func ForDuration(d Duration) ([]Template, error) {
	switch d {
	case OneHour:
		out := make([]Template, 0, 16)
		for h := booking.WindowStart.Hour(); h < booking.WindowEnd.Hour(); h++ {
			out = append(out, hours(h, h+1))
		}
		return out, nil
	case TwoHours:
		return clone(twoHourTemplates), nil
	case ThreeHours:
		return clone(threeHourTemplates), nil
	default:
		return nil, ErrInvalidDuration
	}
}

func clone(ts []Template) []Template {
	out := make([]Template, len(ts))
	copy(out, ts)
	return out
}

// FreeAgainst filters templates against an already loaded list of occupied ranges.
func FreeAgainst(templates []Template, occupied []booking.TimeRange) []Template {
	free := make([]Template, 0, len(templates))
	for _, t := range templates {
		if !booking.AnyOverlap(occupied, t) {
			free = append(free, t)
		}
	}
	return free
}
