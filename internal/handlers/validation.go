package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/dailywell/backend/internal/models"
)

// RegisterValidators adds the custom binding tags used by request models
// to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("calendar_date", validateCalendarDate)
}

// validateCalendarDate accepts YYYY-MM-DD strings that name a real day
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}
