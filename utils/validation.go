package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding rules on gin's validator
// engine. Call once before building the router.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// phone10: exactly ten digits once separators are stripped. Matches the
	// booking form's sanitize-then-validate behavior.
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return IsTenDigitPhone(fl.Field().String())
	})
}
