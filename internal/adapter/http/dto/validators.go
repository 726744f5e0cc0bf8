package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Payment ids are opaque gateway tokens; anything that could break out of a
// path segment is refused before it reaches the gateway URL.
var safeIDRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
	}
}

func validateSafeID(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "." && s != ".." && safeIDRe.MatchString(s)
}
