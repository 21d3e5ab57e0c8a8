package panels

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Accepted parent-phone shapes: 10 bare digits, 91 + 10 digits, or
// +91 + 10 digits. Everything else is rejected before any network call.
var parentPhonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[0-9]{10}$`),
	regexp.MustCompile(`^91[0-9]{10}$`),
	regexp.MustCompile(`^\+91[0-9]{10}$`),
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("parentphone", parentPhoneValidation)
	return v
}

func parentPhoneValidation(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	for _, pattern := range parentPhonePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}
