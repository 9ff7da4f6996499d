package request

import (
	"strings"
	"sync"

	"room-booking/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const TagClockTime = "hhmm"

var registerOnce sync.Once

// RegisterValidators adds the booking tags to gin's binding engine. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation(TagClockTime, validateClockTime)
	})
	return err
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := booking.ParseClockTime(strings.TrimSpace(fl.Field().String()))
	return err == nil
}
