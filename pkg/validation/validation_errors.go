package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts binding errors to short client-facing messages.
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxErr):
			return []string{"request body is not valid JSON"}
		case errors.As(err, &typeErr):
			return []string{fmt.Sprintf("%s: must be %s", typeErr.Field, typeErr.Type.String())}
		}
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// FormatValidationError joins FormatValidationErrors into one message.
func FormatValidationError(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	field := fieldPath(e)

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", field)
	case "email":
		return fmt.Sprintf("%s: must be a valid email address", field)
	case "user_role":
		return fmt.Sprintf("%s: must be one of admin, host or empty", field)
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, e.Param())
	default:
		return fmt.Sprintf("%s: failed %s validation", field, e.Tag())
	}
}

// fieldPath drops the struct name from the namespace so nested JSON keys read naturally (jobOwner.email).
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}
