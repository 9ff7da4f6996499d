package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-booking/internal/handler/api"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Session  *api.SessionHandler
	Booking  *api.BookingHandler
	Schedule *api.ScheduleHandler
	Admin    *api.AdminHandler
}

type Middlewares struct {
	Session *middleware.SessionMiddleware
	Admin   *middleware.AdminMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	if err := reqdto.RegisterValidators(); err != nil {
		slog.Error("failed to register request validators", "error", err.Error())
	}
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(slog.Default()))
	engine.Use(middleware.ErrorHandler())
	engine.Use(mw.Session.Load())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	identified := mw.Session.RequireIdentity()
	dated := mw.Session.RequireDate()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/session", Handler: h.Session.Identify},
			{Method: http.MethodGet, Path: "/session", Handler: h.Session.Current, Mw: []gin.HandlerFunc{identified}},
			{Method: http.MethodDelete, Path: "/session", Handler: h.Session.Logout},
			{Method: http.MethodGet, Path: "/months", Handler: h.Booking.Months, Mw: []gin.HandlerFunc{identified}},
		})

		bookingGroup := apiGroup.Group("/booking")
		{
			addRoutes(bookingGroup, []route{
				{Method: http.MethodPost, Path: "/date", Handler: h.Booking.ChooseDate, Mw: []gin.HandlerFunc{identified}},
				{Method: http.MethodGet, Path: "/slots", Handler: h.Booking.FreeSlots, Mw: []gin.HandlerFunc{dated}},
				{Method: http.MethodPost, Path: "/slot", Handler: h.Booking.BookSlot, Mw: []gin.HandlerFunc{dated}},
				{Method: http.MethodPost, Path: "/custom", Handler: h.Booking.BookCustom, Mw: []gin.HandlerFunc{dated}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(identified)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: h.Schedule.MyBookings},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Schedule.Cancel},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/schedule", Handler: h.Schedule.Months},
			{Method: http.MethodGet, Path: "/schedule/:month/:day", Handler: h.Schedule.DaySchedule},
			{Method: http.MethodGet, Path: "/top", Handler: h.Schedule.TopUsers},
			{Method: http.MethodGet, Path: "/support", Handler: h.Schedule.Support},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(mw.Admin.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.ListBookings},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Admin.DeleteBooking},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
