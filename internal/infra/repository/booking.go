package repository

import (
	"context"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"

	"github.com/jackc/pgx/v5"
)

// Pool is the part of *pgxpool.Pool the repository needs.
type Pool interface {
	DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Close()
}

// BookingRepository is the PostgreSQL booking store.
type BookingRepository struct {
	queries     BookingQueries
	pool        Pool
	maxRetries  int
	baseBackoff time.Duration
}

func NewBookingRepository(queries BookingQueries, pool Pool) *BookingRepository {
	return &BookingRepository{
		queries:     queries,
		pool:        pool,
		maxRetries:  3,
		baseBackoff: 100 * time.Millisecond,
	}
}

// WithRetryPolicy overrides the transaction retry policy (tests use a zero backoff).
func (r *BookingRepository) WithRetryPolicy(maxRetries int, base time.Duration) *BookingRepository {
	r.maxRetries = maxRetries
	r.baseBackoff = base
	return r
}

func (r *BookingRepository) Add(ctx context.Context, b *booking.Booking) (int64, error) {
	id, err := r.queries.InsertBooking(ctx, r.pool, bookingToInsertParams(b))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert booking", err)
	}
	return id, nil
}

func (r *BookingRepository) IsBusy(ctx context.Context, month booking.Month, day booking.Day, slot booking.TimeRange) (bool, error) {
	return r.isBusy(ctx, r.pool, month, day, slot)
}

func (r *BookingRepository) isBusy(ctx context.Context, db DBTX, month booking.Month, day booking.Day, slot booking.TimeRange) (bool, error) {
	rows, err := r.queries.ListRangesByDate(ctx, db, month.String(), int32(day.Int()))
	if err != nil {
		return false, infra.WrapRepoErr("failed to list booked ranges", err)
	}
	existing, err := rangesToDomain(rows)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decode booked ranges", err)
	}
	return booking.AnyOverlap(existing, slot), nil
}

// Reserve checks for overlap and inserts under one advisory lock per (month, day),
// so two writers racing for the same day are serialized.
func (r *BookingRepository) Reserve(ctx context.Context, b *booking.Booking) (int64, error) {
	var id int64
	err := r.withinTx(ctx, func(ctx context.Context, tx DBTX) error {
		month, day := b.Month().String(), int32(b.Day().Int())
		if err := r.queries.LockDate(ctx, tx, month, day); err != nil {
			return infra.WrapRepoErr("failed to lock booking date", err)
		}

		busy, err := r.isBusy(ctx, tx, b.Month(), b.Day(), b.Slot())
		if err != nil {
			return err
		}
		if busy {
			return booking.ErrSlotTaken
		}

		id, err = r.queries.InsertBooking(ctx, tx, bookingToInsertParams(b))
		if err != nil {
			return infra.WrapRepoErr("failed to insert booking", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *BookingRepository) BookingsForUser(ctx context.Context, owner booking.Owner) ([]*booking.Booking, error) {
	rows, err := r.queries.ListByUser(ctx, r.pool, owner.Name(), owner.Room())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	return r.decode(rows)
}

func (r *BookingRepository) BookingsForDate(ctx context.Context, month booking.Month, day booking.Day) ([]*booking.Booking, error) {
	rows, err := r.queries.ListByDate(ctx, r.pool, month.String(), int32(day.Int()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for date", err)
	}
	return r.decode(rows)
}

func (r *BookingRepository) AllBookings(ctx context.Context) ([]*booking.Booking, error) {
	rows, err := r.queries.ListAll(ctx, r.pool)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return r.decode(rows)
}

func (r *BookingRepository) TopUsers(ctx context.Context, limit int) ([]booking.UserCount, error) {
	rows, err := r.queries.CountByUser(ctx, r.pool, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings per user", err)
	}
	out := make([]booking.UserCount, len(rows))
	for i, row := range rows {
		out[i] = booking.UserCount{UserName: row.UserName, Count: int(row.Count)}
	}
	return out, nil
}

// Delete is unconditional and reports whether a row was removed; a missing id is not an error.
func (r *BookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteByID(ctx, r.pool, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return n > 0, nil
}

func (r *BookingRepository) DeleteOwned(ctx context.Context, id int64, owner booking.Owner) (bool, error) {
	n, err := r.queries.DeleteOwned(ctx, r.pool, id, owner.Name(), owner.Room())
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return n > 0, nil
}

func (r *BookingRepository) Close() error {
	r.pool.Close()
	return nil
}

func (r *BookingRepository) decode(rows []BookingRow) ([]*booking.Booking, error) {
	out, err := rowsToBookings(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err)
	}
	return out, nil
}
