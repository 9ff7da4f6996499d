package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type BookingRow struct {
	ID        int64
	UserName  string
	UserRoom  string
	Month     string
	Day       int32
	Start     string
	End       string
	CreatedAt time.Time
}

type RangeRow struct {
	Start string
	End   string
}

type UserCountRow struct {
	UserName string
	Count    int64
}

type InsertBookingParams struct {
	UserName  string
	UserRoom  string
	Month     string
	Day       int32
	Start     string
	End       string
	CreatedAt time.Time
}

//go:generate mockgen -source=queries.go -destination=../../../tests/mock/repository/booking_queries.go -package=repositorymock

// BookingQueries is the SQL surface of the bookings table.
type BookingQueries interface {
	InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (int64, error)
	LockDate(ctx context.Context, db DBTX, month string, day int32) error
	ListRangesByDate(ctx context.Context, db DBTX, month string, day int32) ([]RangeRow, error)
	ListByUser(ctx context.Context, db DBTX, userName, userRoom string) ([]BookingRow, error)
	ListByDate(ctx context.Context, db DBTX, month string, day int32) ([]BookingRow, error)
	ListAll(ctx context.Context, db DBTX) ([]BookingRow, error)
	CountByUser(ctx context.Context, db DBTX, limit int32) ([]UserCountRow, error)
	DeleteByID(ctx context.Context, db DBTX, id int64) (int64, error)
	DeleteOwned(ctx context.Context, db DBTX, id int64, userName, userRoom string) (int64, error)
}

type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

const bookingColumns = `id, user_name, user_room, month, day, start, "end", created_at`

const insertBooking = `
INSERT INTO bookings (user_name, user_room, month, day, start, "end", created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, insertBooking,
		arg.UserName, arg.UserRoom, arg.Month, arg.Day, arg.Start, arg.End, arg.CreatedAt,
	).Scan(&id)
	return id, err
}

// Transaction-scoped advisory lock on one (month, day); released at commit or rollback.
const lockDate = `SELECT pg_advisory_xact_lock(hashtext($1), $2)`

func (q *Queries) LockDate(ctx context.Context, db DBTX, month string, day int32) error {
	_, err := db.Exec(ctx, lockDate, month, day)
	return err
}

const listRangesByDate = `SELECT start, "end" FROM bookings WHERE month = $1 AND day = $2`

func (q *Queries) ListRangesByDate(ctx context.Context, db DBTX, month string, day int32) ([]RangeRow, error) {
	rows, err := db.Query(ctx, listRangesByDate, month, day)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[RangeRow])
}

// COLLATE "C" keeps the month ordering byte-wise, the same as SQLite's BINARY collation.
const listByUser = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE user_name = $1 AND user_room = $2
ORDER BY month COLLATE "C", day, start, id`

func (q *Queries) ListByUser(ctx context.Context, db DBTX, userName, userRoom string) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listByUser, userName, userRoom)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[BookingRow])
}

const listByDate = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE month = $1 AND day = $2
ORDER BY start, id`

func (q *Queries) ListByDate(ctx context.Context, db DBTX, month string, day int32) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listByDate, month, day)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[BookingRow])
}

const listAll = `
SELECT ` + bookingColumns + `
FROM bookings
ORDER BY month COLLATE "C", day, start, id`

func (q *Queries) ListAll(ctx context.Context, db DBTX) ([]BookingRow, error) {
	rows, err := db.Query(ctx, listAll)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[BookingRow])
}

const countByUser = `
SELECT user_name, COUNT(*) AS cnt
FROM bookings
GROUP BY user_name
ORDER BY cnt DESC, user_name
LIMIT $1`

func (q *Queries) CountByUser(ctx context.Context, db DBTX, limit int32) ([]UserCountRow, error) {
	rows, err := db.Query(ctx, countByUser, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[UserCountRow])
}

const deleteByID = `DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteByID(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, deleteByID, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteOwned = `DELETE FROM bookings WHERE id = $1 AND user_name = $2 AND user_room = $3`

func (q *Queries) DeleteOwned(ctx context.Context, db DBTX, id int64, userName, userRoom string) (int64, error) {
	tag, err := db.Exec(ctx, deleteOwned, id, userName, userRoom)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
