package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be at least {param}",
		"email":    "{field} must be a valid email address",
		"eqfield":  "{field} must match {param}",
		"phone":    "{field} must be a valid phone number",
		"numeric":  "{field} must be numeric",
	}

	// length tags read differently on text fields.
	textMessages = map[string]string{
		"max": "{field} must be at most {param} characters",
		"min": "{field} must be at least {param} characters",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if errStr := template(valErr); errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
				errStr = strings.ReplaceAll(errStr, "{param}", strings.ReplaceAll(valErr.Param(), " ", ", "))

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

func template(valErr val.FieldError) string {
	if valErr.Kind() == reflect.String {
		if msg, ok := textMessages[valErr.Tag()]; ok {
			return msg
		}
	}

	return messages[valErr.Tag()]
}
