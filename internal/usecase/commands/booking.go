package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_commands.go -package=commandsmock

var (
	ErrIdentityRequired = errs.New("name and room are required")
	ErrInvalidDate      = errs.New("unknown month or day")
	ErrMalformedRange   = errs.New("time range must look like HH:MM-HH:MM")
	ErrRangeNotAllowed  = errs.New("time range must start before it ends and lie within 07:00-23:00")
	ErrSlotTaken        = errs.New("time range overlaps an existing booking")
)

// DateChoice is the workflow state after the month and day step.
type DateChoice struct {
	Owner booking.Owner
	Month booking.Month
	Day   booking.Day
}

type BookRangeRequest struct {
	Owner booking.Owner
	Month string
	Day   int
	Start string
	End   string
}

type BookCustomRequest struct {
	Owner booking.Owner
	Month string
	Day   int
	Range string
}

type BookingResult struct {
	Booking *booking.Booking
}

type BookingCommands interface {
	Identify(name, roomNumber string) (booking.Owner, error)
	ChooseDate(owner booking.Owner, month string, day int, roomNumber string) (DateChoice, error)
	BookSlot(ctx context.Context, req BookRangeRequest) (*BookingResult, error)
	BookCustomRange(ctx context.Context, req BookCustomRequest) (*BookingResult, error)
	Cancel(ctx context.Context, id int64, owner booking.Owner) error
	AdminDelete(ctx context.Context, id int64) error
}

type bookingUseCaseImpl struct {
	store     shared.BookingStore
	publisher shared.EventPublisher
	calendar  *booking.Calendar
	clock     clock.Clock
}

func NewBookingUseCase(store shared.BookingStore, publisher shared.EventPublisher, calendar *booking.Calendar, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		store:     store,
		publisher: publisher,
		calendar:  calendar,
		clock:     clk,
	}
}

// Identify turns the raw identity form into an owner; the room number is stored as "Room {n}".
func (uc *bookingUseCaseImpl) Identify(name, roomNumber string) (booking.Owner, error) {
	owner, err := newOwner(name, roomNumber)
	if err != nil {
		return booking.Owner{}, err
	}
	return owner, nil
}

// ChooseDate validates the date step. The room is asked again on this step and replaces the stored one.
func (uc *bookingUseCaseImpl) ChooseDate(owner booking.Owner, month string, day int, roomNumber string) (DateChoice, error) {
	m, d, err := uc.parseDate(month, day)
	if err != nil {
		return DateChoice{}, err
	}
	updated, err := newOwner(owner.Name(), roomNumber)
	if err != nil {
		return DateChoice{}, err
	}
	return DateChoice{Owner: updated, Month: m, Day: d}, nil
}

func (uc *bookingUseCaseImpl) BookSlot(ctx context.Context, req BookRangeRequest) (*BookingResult, error) {
	start, err := booking.ParseClockTime(req.Start)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedRange)
	}
	end, err := booking.ParseClockTime(req.End)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedRange)
	}
	return uc.book(ctx, req.Owner, req.Month, req.Day, start, end)
}

func (uc *bookingUseCaseImpl) BookCustomRange(ctx context.Context, req BookCustomRequest) (*BookingResult, error) {
	start, end, err := booking.ParseRange(req.Range)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedRange)
	}
	return uc.book(ctx, req.Owner, req.Month, req.Day, start, end)
}

func (uc *bookingUseCaseImpl) book(ctx context.Context, owner booking.Owner, month string, day int, start, end booking.ClockTime) (*BookingResult, error) {
	if owner.Name() == "" || owner.Room() == "" {
		return nil, ErrIdentityRequired
	}
	m, d, err := uc.parseDate(month, day)
	if err != nil {
		return nil, err
	}
	slot, err := booking.ValidateWindow(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrRangeNotAllowed)
	}

	b, err := booking.NewBooking(uc.clock, owner, m, d, slot)
	if err != nil {
		return nil, errs.Mark(err, ErrRangeNotAllowed)
	}

	id, err := uc.store.Reserve(ctx, b)
	if err != nil {
		if errs.Is(err, booking.ErrSlotTaken) {
			return nil, errs.Mark(err, ErrSlotTaken)
		}
		return nil, errs.Wrap(err, "reserve booking")
	}
	b = b.WithID(id)

	uc.publish(ctx, shared.BookingEvent{
		Type:       shared.EventBookingCreated,
		BookingID:  id,
		UserName:   owner.Name(),
		UserRoom:   owner.Room(),
		Month:      m.String(),
		Day:        d.Int(),
		Start:      slot.Start().String(),
		End:        slot.End().String(),
		OccurredAt: b.CreatedAt(),
	})

	return &BookingResult{Booking: b}, nil
}

// Cancel removes a booking only when it belongs to owner. Unknown or foreign ids are a no-op.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, id int64, owner booking.Owner) error {
	deleted, err := uc.store.DeleteOwned(ctx, id, owner)
	if err != nil {
		return errs.Wrap(err, "cancel booking")
	}
	if !deleted {
		slog.InfoContext(ctx, "cancel ignored: booking missing or not owned",
			"booking_id", id, "user_name", owner.Name(), "user_room", owner.Room())
		return nil
	}

	uc.publish(ctx, shared.BookingEvent{
		Type:       shared.EventBookingCanceled,
		BookingID:  id,
		UserName:   owner.Name(),
		UserRoom:   owner.Room(),
		OccurredAt: uc.clock.Now(),
	})
	return nil
}

// AdminDelete removes any booking by id. Unknown ids are a no-op.
func (uc *bookingUseCaseImpl) AdminDelete(ctx context.Context, id int64) error {
	deleted, err := uc.store.Delete(ctx, id)
	if err != nil {
		return errs.Wrap(err, "delete booking")
	}
	if !deleted {
		slog.InfoContext(ctx, "admin delete ignored: booking missing", "booking_id", id)
		return nil
	}
	uc.publish(ctx, shared.BookingEvent{
		Type:       shared.EventBookingCanceled,
		BookingID:  id,
		OccurredAt: uc.clock.Now(),
	})
	return nil
}

func (uc *bookingUseCaseImpl) parseDate(month string, day int) (booking.Month, booking.Day, error) {
	m, err := uc.calendar.ParseMonth(month)
	if err != nil {
		return "", 0, errs.Mark(err, ErrInvalidDate)
	}
	d, err := booking.NewDay(day)
	if err != nil {
		return "", 0, errs.Mark(err, ErrInvalidDate)
	}
	return m, d, nil
}

// publish never fails the request: the booking is already committed.
func (uc *bookingUseCaseImpl) publish(ctx context.Context, ev shared.BookingEvent) {
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		slog.WarnContext(ctx, "failed to publish booking event",
			"type", string(ev.Type), "booking_id", ev.BookingID, "error", err.Error())
	}
}

func newOwner(name, roomNumber string) (booking.Owner, error) {
	owner, err := booking.NewOwner(name, roomNumber)
	if err != nil {
		return booking.Owner{}, errs.Mark(err, ErrIdentityRequired)
	}
	return owner.WithRoom(booking.RoomLabel(roomNumber))
}
