package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"library-service/internal/pkg/errors"
	"library-service/internal/pkg/httputil"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// Validate validates a struct and returns validation errors if any
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// ValidateStruct validates a struct and writes error response if validation fails
func (v *Validator) ValidateStruct(w http.ResponseWriter, data interface{}) bool {
	if err := v.Validate(data); err != nil {
		validationErrors := v.parseValidationErrors(err)

		w.Header().Set(httputil.HeaderContentType, httputil.ContentTypeJSON)
		w.WriteHeader(http.StatusBadRequest)

		response := errors.NewValidationErrorResponse(validationErrors)
		json.NewEncoder(w).Encode(response)

		return false
	}
	return true
}

// parseValidationErrors converts validator errors to error-package validation errors
func (v *Validator) parseValidationErrors(err error) []errors.ValidationError {
	var validationErrors []errors.ValidationError

	if validatorErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validatorErrs {
			validationErrors = append(validationErrors, errors.ValidationError{
				Field:   e.Field(),
				Message: v.getErrorMessage(e),
			})
		}
	}

	return validationErrors
}

// getErrorMessage returns a human-readable error message for a validation error
func (v *Validator) getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too small"
	case "max":
		return "Value is too large"
	case "uuid4":
		return "Invalid UUID format"
	default:
		return "Invalid value"
	}
}
