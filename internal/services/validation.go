package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// messages maps "<StructField>.<tag>" to the text returned to clients.
var messages = map[string]string{
	"Name.notblank":           "Produktnamnet får inte vara tomt",
	"Price.gt":                "Priset måste vara större än 0",
	"ManufacturerID.required": "Manufacturer ID is required",
	"StockQuantity.gte":       "Stock quantity cannot be negative",
	"Email.shopemail":         "Invalid email",
	"Address.required":        "Address is required.",
}

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NewValidator returns a validator with the shop's custom rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("shopemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	return v
}

// validate checks s and converts the first failing field into a
// *ValidationError. Fields are checked in declaration order.
func validate(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	msg, ok := messages[fe.StructField()+"."+fe.Tag()]
	if !ok {
		msg = "Field '" + fe.Field() + "' failed on the '" + fe.Tag() + "' tag"
	}
	return &ValidationError{Field: fe.Field(), Message: msg}
}
