package handlers

import (
	"time"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the binding validators this API uses
// beyond the built-in ones. Must be called once before routes are served.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("brdate", brDate)
	}
}

// brDate validates that a string field is a DD/MM/YYYY date.
func brDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DisplayDateLayout, fl.Field().String())
	return err == nil
}
