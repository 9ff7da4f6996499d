package api

import (
	"log/slog"
	"net/http"

	"room-booking/internal/domain/slot"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps booking workflow errors onto the error envelope.
// Errors it does not recognise become a 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrIdentityRequired):
		httperr.AbortWithStep(c, http.StatusBadRequest, err, "Enter your name and room number", httperr.StepIdentify)
	case errs.Is(err, commands.ErrInvalidDate), errs.Is(err, queries.ErrInvalidDate):
		httperr.AbortWithStep(c, http.StatusBadRequest, err, "Invalid month or day", httperr.StepDate)
	case errs.Is(err, commands.ErrMalformedRange):
		httperr.AbortWithStep(c, http.StatusBadRequest, err, "Invalid format. Example: 12:00-15:00", httperr.StepSlot)
	case errs.Is(err, slot.ErrInvalidDuration):
		httperr.AbortWithStep(c, http.StatusBadRequest, err, "Invalid duration", httperr.StepSlot)
	case errs.Is(err, commands.ErrRangeNotAllowed):
		httperr.AbortWithStep(c, http.StatusUnprocessableEntity, err, "Bookings are only allowed between 07:00 and 23:00", httperr.StepSlot)
	case errs.Is(err, commands.ErrSlotTaken):
		httperr.AbortWithStep(c, http.StatusConflict, err, "This time range is already taken", httperr.StepSlot)
	default:
		slog.ErrorContext(c.Request.Context(), "booking request failed",
			"path", c.FullPath(), "error", err.Error(), "stack", errs.ExtractStackLines(err, 5))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortInternal(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "unexpected handler failure", "path", c.FullPath(), "error", err.Error())
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
