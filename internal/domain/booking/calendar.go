package booking

import (
	"errors"
	"strings"
)

var ErrEmptyCalendar = errors.New("calendar must list at least one month")

// DefaultMonths are the booking periods offered when no calendar file is configured.
var DefaultMonths = []string{
	"Ноябрь 2025", "Декабрь 2025", "Январь 2026", "Февраль 2026",
	"Март 2026", "Апрель 2026", "Май 2026", "Июнь 2026",
}

// Calendar is the ordered list of month labels open for booking.
// Labels are free text; their order here is the chronological order.
type Calendar struct {
	months []Month
	index  map[Month]int
}

func NewCalendar(labels []string) (*Calendar, error) {
	c := &Calendar{index: make(map[Month]int, len(labels))}
	for _, l := range labels {
		m := Month(strings.TrimSpace(l))
		if m == "" {
			continue
		}
		if _, dup := c.index[m]; dup {
			continue
		}
		c.index[m] = len(c.months)
		c.months = append(c.months, m)
	}
	if len(c.months) == 0 {
		return nil, ErrEmptyCalendar
	}
	return c, nil
}

func (c *Calendar) Months() []Month {
	out := make([]Month, len(c.months))
	copy(out, c.months)
	return out
}

func (c *Calendar) Contains(m Month) bool {
	_, ok := c.index[m]
	return ok
}

// Position returns the chronological position of m, or -1 for unknown labels.
func (c *Calendar) Position(m Month) int {
	if i, ok := c.index[m]; ok {
		return i
	}
	return -1
}

func (c *Calendar) ParseMonth(label string) (Month, error) {
	m := Month(strings.TrimSpace(label))
	if !c.Contains(m) {
		return "", ErrInvalidMonth
	}
	return m, nil
}
