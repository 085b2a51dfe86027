package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sangkips/autocare-api/pkg/apperror"
)

// bindingFieldErrors converts a binding failure into per-field errors keyed by the
// query parameter name
func bindingFieldErrors(err error) []apperror.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []apperror.FieldError{{Field: "query", Message: err.Error()}}
	}

	fieldErrors := make([]apperror.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   queryName(fe.Field()),
			Message: tagMessage(fe),
		})
	}
	return fieldErrors
}

func queryName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
