package components

import (
	"room-booking/internal/handler"
	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/session"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewBookingHandler,
		api.NewScheduleHandler,
		api.NewAdminHandler,
		newSessionMiddleware,
		newAdminMiddleware,
		func(s *api.SessionHandler, b *api.BookingHandler, sc *api.ScheduleHandler, a *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Session: s, Booking: b, Schedule: sc, Admin: a}
		},
		func(s *middleware.SessionMiddleware, a *middleware.AdminMiddleware) handler.Middlewares {
			return handler.Middlewares{Session: s, Admin: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func newSessionMiddleware(sessions *session.Service, cfg config.Config) *middleware.SessionMiddleware {
	return middleware.NewSessionMiddleware(sessions, cfg.Session)
}

func newAdminMiddleware(cfg config.Config) *middleware.AdminMiddleware {
	return middleware.NewAdminMiddleware(cfg.Admin)
}
