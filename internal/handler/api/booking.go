package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/session"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// BookingHandler drives the booking steps after identification:
// date, then a catalog slot or a custom range.
type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
	sessions *middleware.SessionMiddleware
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	sessions *middleware.SessionMiddleware,
) *BookingHandler {
	return &BookingHandler{
		commands: bookingCommands,
		queries:  bookingQueries,
		sessions: sessions,
	}
}

// @Summary List bookable months
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.MonthsResponse
// @Failure 400 {object} httperr.Response
// @Router /months [get]
func (h *BookingHandler) Months(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MonthsResponse{Months: h.queries.Months(c.Request.Context())})
}

// @Summary Choose date
// @Description Select month and day. The room number is asked again and replaces the session room.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ChooseDateRequest true "Date"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /booking/date [post]
func (h *BookingHandler) ChooseDate(c *gin.Context) {
	var req reqdto.ChooseDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithStep(c, http.StatusBadRequest, err, "Choose a month, a day and your room number", httperr.StepDate)
		return
	}

	owner, ok := middleware.GetOwner(c)
	if !ok {
		httperr.AbortWithStep(c, http.StatusBadRequest, commands.ErrIdentityRequired, "Enter your name and room number", httperr.StepIdentify)
		return
	}

	choice, err := h.commands.ChooseDate(owner, req.Month, req.Day, req.Room)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	current, _ := middleware.GetIdentity(c)
	id, err := h.sessions.Issue(c, session.Identity{
		ID:    current.ID,
		Name:  choice.Owner.Name(),
		Room:  choice.Owner.Room(),
		Month: choice.Month.String(),
		Day:   choice.Day.Int(),
	})
	if err != nil {
		abortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIdentity(id))
}

// @Summary Free slots
// @Description Catalog slots of the given length that are still free on the chosen date
// @Tags booking
// @Produce json
// @Param duration query int true "Slot length in hours (1, 2 or 3)"
// @Success 200 {object} resdto.FreeSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /booking/slots [get]
func (h *BookingHandler) FreeSlots(c *gin.Context) {
	var q reqdto.FreeSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithStep(c, http.StatusBadRequest, err, "Invalid duration", httperr.StepSlot)
		return
	}

	id, _ := middleware.GetIdentity(c)
	views, err := h.queries.FreeSlots(c.Request.Context(), id.Month, id.Day, q.Duration)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	slots, err := resdto.FromSlotViews(views)
	if err != nil {
		abortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FreeSlotsResponse{
		Month:    id.Month,
		Day:      id.Day,
		Duration: q.Duration,
		Slots:    slots,
	})
}

// @Summary Book a catalog slot
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.BookSlotRequest true "Slot"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /booking/slot [post]
func (h *BookingHandler) BookSlot(c *gin.Context) {
	var req reqdto.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithStep(c, http.StatusBadRequest, err, "Invalid format. Example: 12:00", httperr.StepSlot)
		return
	}

	owner, _ := middleware.GetOwner(c)
	id, _ := middleware.GetIdentity(c)

	result, err := h.commands.BookSlot(c.Request.Context(), req.ToCommand(owner, id.Month, id.Day))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(result.Booking))
}

// @Summary Book a custom range
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.BookCustomRequest true "Range such as 12:00-15:00"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /booking/custom [post]
func (h *BookingHandler) BookCustom(c *gin.Context) {
	var req reqdto.BookCustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithStep(c, http.StatusBadRequest, err, "Invalid format. Example: 12:00-15:00", httperr.StepSlot)
		return
	}

	owner, _ := middleware.GetOwner(c)
	id, _ := middleware.GetIdentity(c)

	result, err := h.commands.BookCustomRange(c.Request.Context(), req.ToCommand(owner, id.Month, id.Day))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(result.Booking))
}
