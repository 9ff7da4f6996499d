// Package sqlitestore is the embedded single-file booking store.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"

	_ "modernc.org/sqlite"
)

const MemoryPath = ":memory:"

// Store keeps bookings in SQLite. Reserve is serialized by mu, so concurrent
// handlers in one process can never interleave a check with an insert.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

func Open(path string) (*Store, error) {
	dsn, err := buildDSN(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every connection to ":memory:" is a separate database.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(db); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, errors.Join(err, cerr)
		}
		return nil, err
	}

	return &Store{db: db}, nil
}

func buildDSN(path string) (string, error) {
	if path == MemoryPath {
		return "file::memory:?_pragma=busy_timeout(5000)", nil
	}
	abs := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return "", err
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", abs), nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_name TEXT NOT NULL,
			user_room TEXT NOT NULL,
			month TEXT NOT NULL,
			day INTEGER NOT NULL,
			start TEXT NOT NULL,
			"end" TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(month, day);",
		"CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings(user_name, user_room);",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const bookingColumns = `id, user_name, user_room, month, day, start, "end", created_at`

func (s *Store) Add(ctx context.Context, b *booking.Booking) (int64, error) {
	id, err := insert(ctx, s.db, b)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert booking", err)
	}
	return id, nil
}

func insert(ctx context.Context, q querier, b *booking.Booking) (int64, error) {
	res, err := q.ExecContext(ctx,
		`INSERT INTO bookings (user_name, user_room, month, day, start, "end", created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.Owner().Name(), b.Owner().Room(), b.Month().String(), b.Day().Int(),
		b.Slot().Start().String(), b.Slot().End().String(),
		b.CreatedAt().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) IsBusy(ctx context.Context, month booking.Month, day booking.Day, r booking.TimeRange) (bool, error) {
	busy, err := isBusy(ctx, s.db, month, day, r)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlap", err)
	}
	return busy, nil
}

func isBusy(ctx context.Context, q querier, month booking.Month, day booking.Day, r booking.TimeRange) (bool, error) {
	rows, err := q.QueryContext(ctx, `SELECT start, "end" FROM bookings WHERE month = ? AND day = ?`, month.String(), day.Int())
	if err != nil {
		return false, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var existing []booking.TimeRange
	for rows.Next() {
		var start, end string
		if err := rows.Scan(&start, &end); err != nil {
			return false, err
		}
		tr, err := booking.ParseTimeRange(start, end)
		if err != nil {
			return false, fmt.Errorf("stored range %s-%s: %w", start, end, err)
		}
		existing = append(existing, tr)
	}
	if err := rows.Err(); err != nil {
		return false, err
	}
	return booking.AnyOverlap(existing, r), nil
}

func (s *Store) Reserve(ctx context.Context, b *booking.Booking) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	busy, err := isBusy(ctx, tx, b.Month(), b.Day(), b.Slot())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to check overlap", err)
	}
	if busy {
		return 0, booking.ErrSlotTaken
	}

	id, err := insert(ctx, tx, b)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert booking", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, infra.WrapRepoErr("failed to commit booking", err)
	}
	return id, nil
}

func (s *Store) BookingsForUser(ctx context.Context, owner booking.Owner) ([]*booking.Booking, error) {
	return s.list(ctx, "failed to list user bookings",
		`SELECT `+bookingColumns+` FROM bookings WHERE user_name = ? AND user_room = ? ORDER BY month, day, start, id`,
		owner.Name(), owner.Room())
}

func (s *Store) BookingsForDate(ctx context.Context, month booking.Month, day booking.Day) ([]*booking.Booking, error) {
	return s.list(ctx, "failed to list bookings for date",
		`SELECT `+bookingColumns+` FROM bookings WHERE month = ? AND day = ? ORDER BY start, id`,
		month.String(), day.Int())
}

func (s *Store) AllBookings(ctx context.Context) ([]*booking.Booking, error) {
	return s.list(ctx, "failed to list bookings",
		`SELECT `+bookingColumns+` FROM bookings ORDER BY month, day, start, id`)
}

func (s *Store) list(ctx context.Context, msg, query string, args ...any) ([]*booking.Booking, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return out, nil
}

func scanBooking(rows *sql.Rows) (*booking.Booking, error) {
	var (
		id                          int64
		name, room, month           string
		day                         int
		start, end, createdAtString string
	)
	if err := rows.Scan(&id, &name, &room, &month, &day, &start, &end, &createdAtString); err != nil {
		return nil, err
	}
	slot, err := booking.ParseTimeRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("booking %d has a corrupt range %s-%s: %w", id, start, end, err)
	}
	owner, err := booking.NewOwner(name, room)
	if err != nil {
		return nil, fmt.Errorf("booking %d has no owner: %w", id, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtString)
	if err != nil {
		return nil, fmt.Errorf("booking %d created_at: %w", id, err)
	}
	return booking.ReconstructBooking(id, owner, booking.Month(month), booking.Day(day), slot, createdAt), nil
}

func (s *Store) TopUsers(ctx context.Context, limit int) ([]booking.UserCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_name, COUNT(*) AS cnt FROM bookings GROUP BY user_name ORDER BY cnt DESC, user_name LIMIT ?`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings per user", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []booking.UserCount
	for rows.Next() {
		var uc booking.UserCount
		if err := rows.Scan(&uc.UserName, &uc.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to count bookings per user", err)
		}
		out = append(out, uc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings per user", err)
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return n > 0, nil
}

func (s *Store) DeleteOwned(ctx context.Context, id int64, owner booking.Owner) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM bookings WHERE id = ? AND user_name = ? AND user_room = ?`, id, owner.Name(), owner.Room())
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return n > 0, nil
}
