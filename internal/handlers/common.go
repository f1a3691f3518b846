package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// bindingDetails extracts field-level detail from a binding error so
// validation failures name the offending fields.
func bindingDetails(err error) interface{} {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, map[string]string{
			"field": fieldErr.Field(),
			"rule":  fieldErr.Tag(),
		})
	}
	return details
}
