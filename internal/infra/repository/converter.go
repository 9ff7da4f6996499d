package repository

import (
	"fmt"

	"room-booking/internal/domain/booking"
)

func bookingToInsertParams(b *booking.Booking) InsertBookingParams {
	return InsertBookingParams{
		UserName:  b.Owner().Name(),
		UserRoom:  b.Owner().Room(),
		Month:     b.Month().String(),
		Day:       int32(b.Day().Int()),
		Start:     b.Slot().Start().String(),
		End:       b.Slot().End().String(),
		CreatedAt: b.CreatedAt(),
	}
}

func rowToBooking(row BookingRow) (*booking.Booking, error) {
	slot, err := booking.ParseTimeRange(row.Start, row.End)
	if err != nil {
		return nil, fmt.Errorf("booking %d has a corrupt range %s-%s: %w", row.ID, row.Start, row.End, err)
	}
	// Rows are trusted as stored; names and rooms were validated on the way in.
	owner, err := booking.NewOwner(row.UserName, row.UserRoom)
	if err != nil {
		return nil, fmt.Errorf("booking %d has no owner: %w", row.ID, err)
	}
	return booking.ReconstructBooking(
		row.ID,
		owner,
		booking.Month(row.Month),
		booking.Day(row.Day),
		slot,
		row.CreatedAt,
	), nil
}

func rowsToBookings(rows []BookingRow) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := rowToBooking(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func rangesToDomain(rows []RangeRow) ([]booking.TimeRange, error) {
	out := make([]booking.TimeRange, 0, len(rows))
	for _, row := range rows {
		r, err := booking.ParseTimeRange(row.Start, row.End)
		if err != nil {
			return nil, fmt.Errorf("stored range %s-%s: %w", row.Start, row.End, err)
		}
		out = append(out, r)
	}
	return out, nil
}
