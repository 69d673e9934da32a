package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Account codes are dotted digit groups, e.g. "1", "1.1", "1.1.01".
var accountCodePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("codigoconta", validateAccountCode)
	}
}

func validateAccountCode(fl validator.FieldLevel) bool {
	return accountCodePattern.MatchString(fl.Field().String())
}
