package components

import (
	"room-booking/internal/infra/repository"

	"go.uber.org/fx"
)

// The store itself is chosen by DB_DRIVER in the db module; this provides the
// SQL layer the PostgreSQL store runs on.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewQueries,
			fx.As(new(repository.BookingQueries)),
		),
	),
)
