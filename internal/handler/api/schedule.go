package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingID = errors.New("booking id must be a positive integer")

// ScheduleHandler serves the read views and the owner's cancellation.
type ScheduleHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
	support  config.SupportConfig
}

func NewScheduleHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, cfg config.Config) *ScheduleHandler {
	return &ScheduleHandler{
		commands: bookingCommands,
		queries:  bookingQueries,
		support:  cfg.Support,
	}
}

// @Summary My bookings
// @Description Bookings of the current visitor in calendar order
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/mine [get]
func (h *ScheduleHandler) MyBookings(c *gin.Context) {
	owner, ok := middleware.GetOwner(c)
	if !ok {
		httperr.AbortWithStep(c, http.StatusBadRequest, commands.ErrIdentityRequired, "Enter your name and room number", httperr.StepIdentify)
		return
	}

	views, err := h.queries.MyBookings(c.Request.Context(), owner)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	h.respondBookings(c, views)
}

// @Summary Cancel booking
// @Description Removes the booking if it belongs to the current visitor. Unknown ids are ignored.
// @Tags bookings
// @Param id path int true "Booking ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	owner, ok := middleware.GetOwner(c)
	if !ok {
		httperr.AbortWithStep(c, http.StatusBadRequest, commands.ErrIdentityRequired, "Enter your name and room number", httperr.StepIdentify)
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), id, owner); err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Schedule months
// @Tags schedule
// @Produce json
// @Success 200 {object} resdto.MonthsResponse
// @Router /schedule [get]
func (h *ScheduleHandler) Months(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MonthsResponse{Months: h.queries.Months(c.Request.Context())})
}

// @Summary Day schedule
// @Tags schedule
// @Produce json
// @Param month path string true "Month label"
// @Param day path int true "Day of month"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /schedule/{month}/{day} [get]
func (h *ScheduleHandler) DaySchedule(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		httperr.AbortWithStep(c, http.StatusBadRequest, err, "Invalid month or day", httperr.StepDate)
		return
	}

	views, err := h.queries.DaySchedule(c.Request.Context(), c.Param("month"), day)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	h.respondBookings(c, views)
}

// @Summary Top users
// @Description Users with the most bookings
// @Tags schedule
// @Produce json
// @Param limit query int false "Number of users (default 5)"
// @Success 200 {array} resdto.UserCountResponse
// @Failure 400 {object} httperr.Response
// @Router /top [get]
func (h *ScheduleHandler) TopUsers(c *gin.Context) {
	var q reqdto.TopUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}

	views, err := h.queries.TopUsers(c.Request.Context(), q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	out, err := resdto.FromUserCountViews(views)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Support contact
// @Tags schedule
// @Produce json
// @Success 200 {object} resdto.SupportResponse
// @Router /support [get]
func (h *ScheduleHandler) Support(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.SupportResponse{
		Contact: h.support.Contact,
		Hours:   h.support.Hours,
	})
}

func (h *ScheduleHandler) respondBookings(c *gin.Context, views []*queries.BookingView) {
	out, err := resdto.FromBookingViews(views)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func parseBookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidBookingID, "Invalid booking ID", nil)
		return 0, false
	}
	return id, true
}
