package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		user_name TEXT NOT NULL,
		user_room TEXT NOT NULL,
		month TEXT NOT NULL,
		day INTEGER NOT NULL CHECK (day BETWEEN 1 AND 31),
		start TEXT NOT NULL,
		"end" TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings (month, day)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_name, user_room)`,
}

// EnsureSchema creates the bookings table on first start. It is safe to run
// against an already initialized database.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
