package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/session"
	"room-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	commands commands.BookingCommands
	sessions *middleware.SessionMiddleware
}

func NewSessionHandler(bookingCommands commands.BookingCommands, sessions *middleware.SessionMiddleware) *SessionHandler {
	return &SessionHandler{
		commands: bookingCommands,
		sessions: sessions,
	}
}

// @Summary Identify visitor
// @Description Start a booking session with a name and room number. Any chosen date is dropped.
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.IdentifyRequest true "Identity"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /session [post]
func (h *SessionHandler) Identify(c *gin.Context) {
	var req reqdto.IdentifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithStep(c, http.StatusBadRequest, err, "Enter your name and room number", httperr.StepIdentify)
		return
	}

	owner, err := h.commands.Identify(req.Name, req.Room)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	id, err := h.sessions.Issue(c, session.Identity{Name: owner.Name(), Room: owner.Room()})
	if err != nil {
		abortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIdentity(id))
}

// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /session [get]
func (h *SessionHandler) Current(c *gin.Context) {
	id, _ := middleware.GetIdentity(c)
	c.JSON(http.StatusOK, resdto.FromIdentity(id))
}

// @Summary End session
// @Tags session
// @Success 204
// @Router /session [delete]
func (h *SessionHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Status(http.StatusNoContent)
}
