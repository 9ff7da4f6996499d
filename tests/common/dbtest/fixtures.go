//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB empties the bookings table and restarts its id sequence.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := pool.Exec(ctx, "TRUNCATE TABLE bookings RESTART IDENTITY")
	return err
}

func CreateTestBooking(t *testing.T, pool *pgxpool.Pool, userName, userRoom, month string, day int, start, end string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO bookings (user_name, user_room, month, day, start, "end")
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		userName, userRoom, month, day, start, end,
	).Scan(&id)
	require.NoError(t, err, "Failed to insert test booking")
	return id
}

func CountBookings(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM bookings").Scan(&n)
	require.NoError(t, err, "Failed to count bookings")
	return n
}
