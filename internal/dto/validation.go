package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for all dates (day precision).
const DateLayout = "2006-01-02"

// dateOnly validates a "YYYY-MM-DD" string.
func dateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// RegisterCustomValidators installs request validation rules on gin's
// binding validator. Called once at startup.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", dateOnly)
	}
}

// ParseDate parses a wire-format date. Inputs are expected to have passed the
// dateonly rule already.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
