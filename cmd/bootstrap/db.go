package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository"
	"room-booking/internal/infra/sqlitestore"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewBookingStore,
	),
)

// NewBookingStore opens the store selected by DB_DRIVER and closes it on shutdown.
func NewBookingStore(lc fx.Lifecycle, cfg config.Config, queries repository.BookingQueries) (shared.BookingStore, error) {
	var (
		store   shared.BookingStore
		cleanup func()
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		pool, closePool, err := db.Connect(context.Background(), cfg.DB)
		if err != nil {
			return nil, err
		}
		store = repository.NewBookingRepository(queries, pool)
		cleanup = closePool
	case config.DriverSQLite:
		s, err := sqlitestore.Open(cfg.DB.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = s
		cleanup = func() {
			if err := s.Close(); err != nil {
				slog.Error("failed to close sqlite store", "error", err.Error())
			}
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	slog.Info("booking store ready", "driver", cfg.DB.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return store, nil
}
