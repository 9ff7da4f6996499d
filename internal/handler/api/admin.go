package api

import (
	"net/http"

	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewAdminHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *AdminHandler {
	return &AdminHandler{
		commands: bookingCommands,
		queries:  bookingQueries,
	}
}

// @Summary All bookings
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	views, err := h.queries.AllBookings(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	out, err := resdto.FromBookingViews(views)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Delete any booking
// @Tags admin
// @Security BasicAuth
// @Param id path int true "Booking ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	if err := h.commands.AdminDelete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
