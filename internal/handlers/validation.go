package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateRequest runs struct-tag validation and flattens the failures
// into a single human-readable message for the error envelope.
func validateRequest(obj any) string {
	err := validate.Struct(obj)
	if err == nil {
		return ""
	}

	var parts []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		parts = append(parts, fieldErrorMessage(fieldErr))
	}
	return strings.Join(parts, "; ")
}

func fieldErrorMessage(err validator.FieldError) string {
	field := strings.ToLower(err.Field())
	switch err.Tag() {
	case "required":
		return field + " is required"
	default:
		return field + " is invalid"
	}
}
