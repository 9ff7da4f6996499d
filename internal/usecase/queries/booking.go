package queries

import (
	"context"
	"sort"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/slot"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_queries.go -package=queriesmock

const DefaultTopUsersLimit = 5

var ErrInvalidDate = errs.New("no such month or day in the calendar")

type BookingView struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	UserRoom  string    `json:"user_room"`
	Month     string    `json:"month"`
	Day       int       `json:"day"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	CreatedAt time.Time `json:"created_at"`
}

type UserCountView struct {
	UserName string `json:"user_name"`
	Count    int    `json:"count"`
}

type SlotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BookingQueries interface {
	Months(ctx context.Context) []string
	MyBookings(ctx context.Context, owner booking.Owner) ([]*BookingView, error)
	DaySchedule(ctx context.Context, month string, day int) ([]*BookingView, error)
	TopUsers(ctx context.Context, limit int) ([]*UserCountView, error)
	FreeSlots(ctx context.Context, month string, day int, duration int) ([]*SlotView, error)
	AllBookings(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store    shared.BookingStore
	calendar *booking.Calendar
}

func NewBookingQueries(store shared.BookingStore, calendar *booking.Calendar) BookingQueries {
	return &bookingQueriesImpl{store: store, calendar: calendar}
}

func (q *bookingQueriesImpl) Months(ctx context.Context) []string {
	months := q.calendar.Months()
	out := make([]string, len(months))
	for i, m := range months {
		out[i] = m.String()
	}
	return out
}

// MyBookings lists the owner's bookings in calendar order: month position in the
// configured calendar, then day, then start time. The store returns month labels
// byte-ordered, which is not chronological for free-text labels.
func (q *bookingQueriesImpl) MyBookings(ctx context.Context, owner booking.Owner) ([]*BookingView, error) {
	bookings, err := q.store.BookingsForUser(ctx, owner)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if pa, pb := q.position(a.Month()), q.position(b.Month()); pa != pb {
			return pa < pb
		}
		if a.Day() != b.Day() {
			return a.Day() < b.Day()
		}
		if !a.Slot().Start().Equal(b.Slot().Start()) {
			return a.Slot().Start().Before(b.Slot().Start())
		}
		return a.ID() < b.ID()
	})

	return toViews(bookings), nil
}

// Unknown labels (e.g. a month removed from the calendar file) sort last.
func (q *bookingQueriesImpl) position(m booking.Month) int {
	if p := q.calendar.Position(m); p >= 0 {
		return p
	}
	return len(q.calendar.Months())
}

// DaySchedule lists the bookings of one day by start time. A month or day
// outside the calendar has nothing booked, so it yields an empty schedule.
func (q *bookingQueriesImpl) DaySchedule(ctx context.Context, month string, day int) ([]*BookingView, error) {
	m, d, err := q.parseDate(month, day)
	if err != nil {
		return []*BookingView{}, nil
	}
	bookings, err := q.store.BookingsForDate(ctx, m, d)
	if err != nil {
		return nil, err
	}
	return toViews(bookings), nil
}

func (q *bookingQueriesImpl) TopUsers(ctx context.Context, limit int) ([]*UserCountView, error) {
	if limit <= 0 {
		limit = DefaultTopUsersLimit
	}
	counts, err := q.store.TopUsers(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*UserCountView, len(counts))
	for i, c := range counts {
		out[i] = &UserCountView{UserName: c.UserName, Count: c.Count}
	}
	return out, nil
}

// FreeSlots returns the catalog templates for duration that do not intersect any
// booking on (month, day), in catalog order.
func (q *bookingQueriesImpl) FreeSlots(ctx context.Context, month string, day int, duration int) ([]*SlotView, error) {
	templates, err := slot.ForDuration(slot.Duration(duration))
	if err != nil {
		return nil, err
	}
	m, d, err := q.parseDate(month, day)
	if err != nil {
		return nil, err
	}
	bookings, err := q.store.BookingsForDate(ctx, m, d)
	if err != nil {
		return nil, err
	}

	occupied := make([]booking.TimeRange, len(bookings))
	for i, b := range bookings {
		occupied[i] = b.Slot()
	}

	free := slot.FreeAgainst(templates, occupied)
	out := make([]*SlotView, len(free))
	for i, t := range free {
		out[i] = &SlotView{Start: t.Start().String(), End: t.End().String()}
	}
	return out, nil
}

func (q *bookingQueriesImpl) AllBookings(ctx context.Context) ([]*BookingView, error) {
	bookings, err := q.store.AllBookings(ctx)
	if err != nil {
		return nil, err
	}
	return toViews(bookings), nil
}

func (q *bookingQueriesImpl) parseDate(month string, day int) (booking.Month, booking.Day, error) {
	m, err := q.calendar.ParseMonth(month)
	if err != nil {
		return "", 0, errs.Mark(err, ErrInvalidDate)
	}
	d, err := booking.NewDay(day)
	if err != nil {
		return "", 0, errs.Mark(err, ErrInvalidDate)
	}
	return m, d, nil
}

func toViews(bookings []*booking.Booking) []*BookingView {
	out := make([]*BookingView, len(bookings))
	for i, b := range bookings {
		out[i] = &BookingView{
			ID:        b.ID(),
			UserName:  b.Owner().Name(),
			UserRoom:  b.Owner().Room(),
			Month:     b.Month().String(),
			Day:       b.Day().Int(),
			Start:     b.Slot().Start().String(),
			End:       b.Slot().End().String(),
			CreatedAt: b.CreatedAt(),
		}
	}
	return out
}
