package utils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors turns validator errors into the field-keyed shape
// the API returns with 422 responses: {"field": ["message", ...]}.
func FormatValidationErrors(err error) map[string][]string {
	out := make(map[string][]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["request"] = []string{err.Error()}
		return out
	}

	for _, fe := range validationErrs {
		field := snakeCase(fe.Field())
		out[field] = append(out[field], messageFor(field, fe))
	}
	return out
}

func messageFor(field string, fe validator.FieldError) string {
	if field == "rating" && (fe.Tag() == "min" || fe.Tag() == "max") {
		return "Rating must be between 1 and 5"
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", field)
	case "email":
		return "The email must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("The %s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("The %s must not exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("The %s must not exceed %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid", field)
	case "eqfield":
		if field == "password_confirmation" {
			return "Passwords do not match"
		}
		return fmt.Sprintf("The %s must match %s", field, snakeCase(fe.Param()))
	case "gte":
		return fmt.Sprintf("The %s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("The %s must not exceed %s", field, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid", field)
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	// Collapse runs produced by acronyms, e.g. "ID" -> "i_d".
	out := b.String()
	out = strings.ReplaceAll(out, "i_d", "id")
	out = strings.ReplaceAll(out, "u_r_l", "url")
	return out
}
