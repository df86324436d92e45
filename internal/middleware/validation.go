package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/cankurt/commune/internal/pkg/validation"
)

// RegisterValidators installs custom binding rules on Gin's validator
// engine. Called once during bootstrap, before any routes are served.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return validation.IsValidUsername(fl.Field().String())
	})
	_ = v.RegisterValidation("userpassword", func(fl validator.FieldLevel) bool {
		return validation.IsValidPassword(fl.Field().String())
	})
}
