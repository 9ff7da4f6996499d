package bootstrap

import (
	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewCalendar,
	),
)

func NewCalendar(cfg config.Config) (*booking.Calendar, error) {
	return booking.NewCalendar(cfg.Calendar.Months)
}
