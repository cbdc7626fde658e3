package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	phoneRegex = regexp.MustCompile(`^(\+1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`)
	zipRegex   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func init() {
	validate = validator.New()

	// Form-level validations shared with the frontend forms
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	_ = validate.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return IsValidZipCode(fl.Field().String())
	})
	_ = validate.RegisterValidation("dateymd", func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
}

// Validate - struct validation against `validate` tags
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - access to the underlying validator for custom configuration
func GetValidator() *validator.Validate {
	return validate
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhone accepts 10-digit US numbers with optional +1 prefix and
// common separators.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsValidZipCode accepts 5-digit and ZIP+4 codes.
func IsValidZipCode(s string) bool {
	return zipRegex.MatchString(s)
}

// IsValidDate accepts calendar dates in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
